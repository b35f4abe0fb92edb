// Package jobs implements background job processing for the peña API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - VotingStatusJob: closes the shirt voting round at its deadline
//   - FeedCleanupJob: deletes expired transfer news items
//
// # Lifecycle
//
// Each job exposes Start and Stop. Start launches a ticker goroutine that
// also runs once immediately; Stop closes the job's stop channel and waits
// for the goroutine to finish. Jobs log errors but never crash the
// application.
package jobs
