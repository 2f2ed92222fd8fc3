package pgsql

import (
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
