// Package handler provides HTTP request handlers for the peña API.
//
// Each handler struct encapsulates the service needed to serve requests for
// a specific feature area (matches, RSVPs, voting, merchandise, trivia,
// news, auth).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the domain service
//   - Methods handle specific HTTP endpoints, one per route
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: resource wrapped in a data envelope with optional links
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// The public RSVP endpoints are the exception: they keep the flat JSON
// bodies of the original site so existing clients keep working.
//
// # Authentication
//
// Board routes require a JWT with the board role. The auth middleware
// extracts user identity and makes it available via middleware.GetUserID.
package handler
