package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Match Errors =====
var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrNoUpcomingMatch = errors.New("no upcoming match scheduled")
)

// ===== RSVP Errors =====
var (
	ErrRSVPNotFound = errors.New("RSVP not found")
	ErrRSVPClosed   = errors.New("RSVPs are closed for this match")
)

// ===== Contact Errors =====
var (
	ErrContactNotFound = errors.New("contact submission not found")
)

// ===== Voting Errors =====
var (
	ErrVotingClosed    = errors.New("voting is closed")
	ErrDesignNotFound  = errors.New("design not found")
	ErrAlreadyVoted    = errors.New("vote already cast for this round")
	ErrVoterIDRequired = errors.New("email is required to vote")
)

// ===== Merchandise Errors =====
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductOutOfStock = errors.New("product is out of stock")
	ErrOrderNotFound     = errors.New("order not found")
)

// ===== Trivia Errors =====
var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrScoreAlreadyRecorded = errors.New("score already recorded for today")
	ErrNoQuestionsAvailable = errors.New("no trivia questions available")
)

// ===== News Errors =====
var (
	ErrNewsNotFound = errors.New("news item not found")
)

// ===== Feature Errors =====
var (
	ErrFeatureDisabled = errors.New("feature is disabled")
)
