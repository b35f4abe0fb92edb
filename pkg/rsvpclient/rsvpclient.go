// Package rsvpclient is a state-holding client for the peña's RSVP
// endpoints. It mirrors what the website's confirmation widget needs: the
// aggregate attendee count, the caller's existing confirmation, and a
// submit operation with bounded retry on transport failures.
//
// The client never returns raw errors from Submit; every failure path
// resolves to a SubmissionResult, with the message also recorded in a
// dedicated submit-error field kept separate from the load error.
package rsvpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// maxSubmitAttempts bounds the sequential retry loop in Submit. Only
// transport-level failures are retried; application rejections terminate
// the loop immediately.
const maxSubmitAttempts = 3

// loadErrorMessage is the generic message recorded when the attendee
// count cannot be loaded.
const loadErrorMessage = "failed to load confirmation data"

// StatusConfirmed is the only status the server persists.
const StatusConfirmed = "confirmed"

// Event describes the match the client is scoped to. A zero ID is the
// supported unscoped mode: the server resolves the next upcoming match.
type Event struct {
	ID    string
	Title string
}

// Options configures a Client.
type Options struct {
	// Enabled defaults to true; set to a false pointer to construct a
	// dormant client that performs no network activity.
	Enabled *bool

	// UserID enables the status fetch and is included in submissions.
	UserID string

	// AuthToken, when set, is sent as a bearer token on the status fetch.
	AuthToken string

	// BaseURL is the API origin, e.g. "https://api.pbescocia.com".
	BaseURL string

	// HTTPClient defaults to a client with a 15 second timeout.
	HTTPClient *http.Client
}

// RSVP is the client-side view of an existing confirmation.
type RSVP struct {
	Status    string
	Attendees int
	Message   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// SubmissionRequest carries the confirmation form fields.
type SubmissionRequest struct {
	Name             string
	Email            string
	Attendees        int
	Message          string
	WhatsappInterest bool

	// MatchID overrides the event's id for this submission only.
	MatchID string
}

// SubmissionResult is the only thing Submit ever returns.
type SubmissionResult struct {
	Success bool
	Message string
}

// Client tracks RSVP state for one event. All exported methods are safe
// for concurrent use.
type Client struct {
	event     Event
	enabled   bool
	userID    string
	authToken string
	baseURL   string
	http      *http.Client

	mu            sync.Mutex
	loading       bool
	attendeeCount int
	current       *RSVP
	loadError     string
	submitError   string
}

// New creates a Client for the given event. No network activity happens
// until Load is called.
func New(event Event, opts Options) *Client {
	enabled := true
	if opts.Enabled != nil {
		enabled = *opts.Enabled
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		event:     event,
		enabled:   enabled,
		userID:    opts.UserID,
		authToken: opts.AuthToken,
		baseURL:   opts.BaseURL,
		http:      httpClient,
	}
}

// Load fetches the attendee count and, for identified users, the existing
// confirmation. The two fetches run concurrently and fail independently:
// a count failure records the load error and defaults the count to zero,
// a status miss or failure just leaves the current RSVP nil.
func (c *Client) Load(ctx context.Context) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var wg sync.WaitGroup

	var count int
	var countErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		count, countErr = c.fetchAttendeeCount(ctx)
	}()

	var status *RSVP
	if c.userID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Failures here are silent: a missing record and a broken
			// fetch both present as "no existing RSVP"
			status, _ = c.fetchStatus(ctx)
		}()
	}

	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if countErr != nil {
		c.attendeeCount = 0
		c.loadError = loadErrorMessage
	} else {
		c.attendeeCount = count
		c.loadError = ""
	}
	c.current = status
}

// Refresh re-runs both fetches, e.g. after a submission elsewhere.
func (c *Client) Refresh(ctx context.Context) {
	c.Load(ctx)
}

// Submit sends a confirmation, retrying transport failures up to the
// attempt bound. Application-level rejections are returned immediately
// with the server's message verbatim.
func (c *Client) Submit(ctx context.Context, req SubmissionRequest) SubmissionResult {
	if !c.enabled {
		return SubmissionResult{Success: false, Message: "confirmations are disabled"}
	}

	var lastMessage string
	for attempt := 1; attempt <= maxSubmitAttempts; attempt++ {
		outcome := c.postSubmission(ctx, req)
		switch outcome.kind {
		case outcomeAccepted:
			c.applySubmission(req, outcome.totalAttendees)
			return SubmissionResult{Success: true, Message: outcome.message}
		case outcomeRejected:
			c.setSubmitError(outcome.message)
			return SubmissionResult{Success: false, Message: outcome.message}
		case outcomeTransport:
			lastMessage = outcome.message
		}
	}

	c.setSubmitError(lastMessage)
	return SubmissionResult{Success: false, Message: lastMessage}
}

// ClearErrors resets both error fields without touching the loaded data.
func (c *Client) ClearErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadError = ""
	c.submitError = ""
}

// Loading reports whether a Load or Refresh is in flight.
func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// AttendeeCount returns the last loaded aggregate count.
func (c *Client) AttendeeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attendeeCount
}

// CurrentRSVP returns a copy of the caller's existing confirmation, or
// nil when none is known.
func (c *Client) CurrentRSVP() *RSVP {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	rsvp := *c.current
	return &rsvp
}

// LoadError returns the recorded load failure message, if any.
func (c *Client) LoadError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadError
}

// SubmitError returns the recorded submission failure message, if any.
func (c *Client) SubmitError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitError
}

// HasExistingRSVP reports whether a prior status fetch found a confirmed
// record.
func (c *Client) HasExistingRSVP() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil && c.current.Status == StatusConfirmed
}

// CanSubmit reports whether submissions are allowed. Anonymous submission
// is permitted; only the enabled flag gates it.
func (c *Client) CanSubmit() bool {
	return c.enabled
}

// ============================================================================
// Wire plumbing
// ============================================================================

type attendeesResponse struct {
	Count int `json:"count"`
}

type statusResponse struct {
	Success   bool    `json:"success"`
	Status    string  `json:"status"`
	Attendees int     `json:"attendees"`
	Message   *string `json:"message,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type submitBody struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Attendees        int     `json:"attendees"`
	Message          *string `json:"message,omitempty"`
	WhatsappInterest bool    `json:"whatsappInterest"`
	MatchID          *string `json:"matchId,omitempty"`
	UserID           *string `json:"userId,omitempty"`
}

type submitResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TotalAttendees int    `json:"totalAttendees"`
	ConfirmedCount int    `json:"confirmedCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// submitOutcome classifies one attempt. The retryable/terminal distinction
// is structural so the retry bound cannot be bypassed by convention.
type submitOutcomeKind int

const (
	outcomeAccepted submitOutcomeKind = iota
	outcomeRejected
	outcomeTransport
)

type submitOutcome struct {
	kind           submitOutcomeKind
	message        string
	totalAttendees int
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) matchQuery() string {
	if c.event.ID == "" {
		return ""
	}
	return "?match=" + url.QueryEscape(c.event.ID)
}

func (c *Client) fetchAttendeeCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/rsvp/attendees")+c.matchQuery(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("attendees fetch returned %d", resp.StatusCode)
	}

	var body attendeesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Count, nil
}

func (c *Client) fetchStatus(ctx context.Context) (*RSVP, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/rsvp/status")+c.matchQuery(), nil)
	if err != nil {
		return nil, err
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	// Any non-OK status means "no existing RSVP"; 404 is the normal case
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	rsvp := &RSVP{
		Status:    body.Status,
		Attendees: body.Attendees,
	}
	if body.Message != nil {
		rsvp.Message = *body.Message
	}
	if created, err := time.Parse(time.RFC3339, body.CreatedAt); err == nil {
		rsvp.CreatedAt = created
	}
	if body.UpdatedAt != nil {
		if updated, err := time.Parse(time.RFC3339, *body.UpdatedAt); err == nil {
			rsvp.UpdatedAt = &updated
		}
	}
	return rsvp, nil
}

func (c *Client) postSubmission(ctx context.Context, req SubmissionRequest) submitOutcome {
	body := submitBody{
		Name:             req.Name,
		Email:            req.Email,
		Attendees:        req.Attendees,
		WhatsappInterest: req.WhatsappInterest,
	}
	if req.Message != "" {
		body.Message = &req.Message
	}
	matchID := req.MatchID
	if matchID == "" {
		matchID = c.event.ID
	}
	if matchID != "" {
		body.MatchID = &matchID
	}
	if c.userID != "" {
		body.UserID = &c.userID
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return submitOutcome{kind: outcomeTransport, message: "failed to encode confirmation"}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/rsvp")+c.matchQuery(), bytes.NewReader(payload))
	if err != nil {
		return submitOutcome{kind: outcomeTransport, message: "failed to build request"}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return submitOutcome{kind: outcomeTransport, message: "failed to submit confirmation"}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Application-level rejection: surface the server's message
		// verbatim and do not retry
		var rejection errorResponse
		msg := "confirmation rejected"
		if err := json.NewDecoder(resp.Body).Decode(&rejection); err == nil && rejection.Error != "" {
			msg = rejection.Error
		}
		return submitOutcome{kind: outcomeRejected, message: msg}
	}

	var accepted submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return submitOutcome{kind: outcomeTransport, message: "failed to submit confirmation"}
	}
	return submitOutcome{
		kind:           outcomeAccepted,
		message:        accepted.Message,
		totalAttendees: accepted.TotalAttendees,
	}
}

// applySubmission folds an accepted submission into the local state so the
// UI reflects it without waiting for a refresh.
func (c *Client) applySubmission(req SubmissionRequest, totalAttendees int) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	rsvp := &RSVP{
		Status:    StatusConfirmed,
		Attendees: req.Attendees,
		Message:   req.Message,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if c.current != nil && !c.current.CreatedAt.IsZero() {
		rsvp.CreatedAt = c.current.CreatedAt
	}
	c.current = rsvp
	if totalAttendees > 0 {
		c.attendeeCount = totalAttendees
	}
	c.submitError = ""
}

func (c *Client) setSubmitError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitError = msg
}
