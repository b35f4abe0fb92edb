// Package model defines domain entities and data structures for the peña API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across
// all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Match: A Betis fixture the peña gathers to watch
//   - RSVP: A confirmation to attend a match gathering
//   - ContactSubmission: A message sent through the contact form
//   - Design, DesignVote, PreOrder: The shirt-design vote
//   - Product, Order: The merchandise catalog and its reservations
//   - TriviaQuestion, DailyScore: The daily trivia game
//   - NewsItem: The transfer news and rumours feed
//
// # JSON Serialization
//
// Database-backed entities use snake_case json tags, while entities stored
// in the flat JSON documents (voting, merchandise) use camelCase to match
// the document format served to the public site.
//
// # Validation
//
// Request types expose Validate() []FieldError; handlers translate a
// non-empty slice into an RFC 9457 validation problem (errors.go).
package model
