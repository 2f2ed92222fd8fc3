package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	Reporting ReportingService
	Document  DocumentSvc
	Health    HealthSvc
}

// HealthSvc reports readiness of the service's dependencies.
type HealthSvc interface {
	Check(ctx context.Context) error
}
