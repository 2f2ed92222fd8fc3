package services

import (
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, rates *domain.RateTable, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(rates)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.DocumentRepo,
		container.Currency,
		WithReportLocation(cfg.ReportLocation),
		WithQueryTimeout(cfg.QueryTimeout),
	)
	container.Document = NewDocumentService(repos.DocumentRepo)
	container.Health = NewHealthService(repos.DocumentRepo)

	return container
}
