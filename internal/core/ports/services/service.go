package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
// A binary fills only the services it serves.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Movement     MovementSvcFacade
	Reporting    ReportingService
	Provisioning AccountProvisionerSvc
	Customer     CustomerSvcFacade
}
