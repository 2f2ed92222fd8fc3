package services

import (
	"context"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
)

type healthService struct {
	store portsrepo.HealthChecker
}

// NewHealthService reports the document store's reachability.
func NewHealthService(store portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{store: store}
}

func (s *healthService) Check(ctx context.Context) error {
	return apperrors.DataAccess("ping document store", s.store.Ping(ctx))
}
