// Package service implements the business logic layer for the peña API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// The voting and merchandise services depend on filestore collections
// instead of database repositories; the same interface-per-service rule
// applies.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrMatchNotFound = errors.New("match not found")
//	    ErrAlreadyVoted  = errors.New("vote already cast for this round")
//	)
//
// # Example Usage
//
//	service := NewRSVPService(RSVPServiceConfig{
//	    RSVPRepo:  rsvpRepository,
//	    MatchRepo: matchRepository,
//	    Notifier:  notifyService,
//	})
//	resp, err := service.Submit(ctx, &model.SubmitRSVPRequest{
//	    Name:      "Juan",
//	    Email:     "juan@example.com",
//	    Attendees: 2,
//	})
package service
