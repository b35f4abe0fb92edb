package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pena-betica-escocesa/api/internal/handler"
	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/repository"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/internal/testing/fixtures"
	"github.com/pena-betica-escocesa/api/internal/testing/helpers"
	"github.com/pena-betica-escocesa/api/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: RSVP Wire Contract
DOMAIN: Fixtures & Watch Parties

The embedded web client and pkg/rsvpclient depend on the exact shape of
the public RSVP endpoints: flat JSON bodies, rejections as a non-200
{"error": "..."} surfaced verbatim. These tests drive the handlers over
HTTP instead of calling the services directly.

ACCEPTANCE CRITERIA:
===================

AC-WIRE-001: Attendee Count Is A Flat JSON Body
AC-WIRE-002: Accepted Submission Returns The Legacy Success Body
AC-WIRE-003: Invalid Submission Is Rejected With An Error Body
AC-WIRE-004: Unknown Match Is Rejected With An Error Body
AC-WIRE-005: Query Parameter Alone Scopes A Submission
AC-WIRE-006: Status Reflects The Authenticated Session
AC-WIRE-007: Status Without Identity Is Rejected
AC-WIRE-008: Board Endpoints Enforce Token And Role
AC-WIRE-009: Board Validation Errors Carry Field Details
*/

// legacyError is the rejection body of the public RSVP endpoints.
type legacyError struct {
	Error string `json:"error"`
}

func newWireMux(tdb *testdb.TestDB, jwtHelper *helpers.JWTHelper) *http.ServeMux {
	rsvpHandler := handler.NewRSVPHandler(createRSVPService(tdb))
	matchHandler := handler.NewMatchHandler(service.NewMatchService(service.MatchServiceConfig{
		MatchRepo: repository.NewMatchRepository(tdb.DB),
	}))

	authOptional := middleware.OptionalAuth(jwtHelper.Service())
	boardOnly := func(h http.Handler) http.Handler {
		return middleware.Auth(jwtHelper.Service())(middleware.RequireBoard(h))
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/rsvp", authOptional(http.HandlerFunc(rsvpHandler.Submit)))
	mux.Handle("GET /api/rsvp/attendees", http.HandlerFunc(rsvpHandler.Attendees))
	mux.Handle("GET /api/rsvp/status", authOptional(http.HandlerFunc(rsvpHandler.Status)))
	mux.Handle("POST /api/board/matches", boardOnly(http.HandlerFunc(matchHandler.Create)))
	mux.Handle("GET /api/board/rsvps", boardOnly(http.HandlerFunc(rsvpHandler.List)))
	return mux
}

func serveWire(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRSVPWire_AttendeeCount(t *testing.T) {
	// AC-WIRE-001: Attendee Count Is A Flat JSON Body
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, helpers.NewJWTHelper(t))

	match := f.CreateMatch(t)
	f.CreateRSVP(t, match, func(o *fixtures.RSVPOpts) { o.Attendees = 4 })
	f.CreateRSVP(t, match, func(o *fixtures.RSVPOpts) { o.Attendees = 3 })

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/rsvp/attendees?match="+match.ID).Build())

	helpers.AssertStatus(t, rec, http.StatusOK)
	helpers.AssertJSONContains(t, rec, map[string]interface{}{"count": 7})
}

func TestRSVPWire_SubmitSuccessBody(t *testing.T) {
	// AC-WIRE-002: Accepted Submission Returns The Legacy Success Body
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, helpers.NewJWTHelper(t))

	match := f.CreateMatch(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/rsvp").
		WithBody(model.SubmitRSVPRequest{
			Name:             "Carmen Ruiz",
			Email:            "carmen@test.local",
			Attendees:        3,
			WhatsappInterest: true,
			MatchID:          &match.ID,
		}).
		Build())

	helpers.AssertStatus(t, rec, http.StatusOK)
	helpers.AssertJSONContains(t, rec, map[string]interface{}{
		"success":        true,
		"message":        model.MsgRSVPReceived,
		"totalAttendees": 3,
		"confirmedCount": 1,
	})
}

func TestRSVPWire_SubmitValidationRejection(t *testing.T) {
	// AC-WIRE-003: Invalid Submission Is Rejected With An Error Body
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, helpers.NewJWTHelper(t))

	f.CreateMatch(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/rsvp").
		WithBody(model.SubmitRSVPRequest{Email: "carmen@test.local", Attendees: 3}).
		Build())

	helpers.AssertStatus(t, rec, http.StatusUnprocessableEntity)

	var body legacyError
	helpers.DecodeResponse(t, rec, &body)
	assert.NotEmpty(t, body.Error, "rejection must carry a flat error message")
}

func TestRSVPWire_SubmitUnknownMatch(t *testing.T) {
	// AC-WIRE-004: Unknown Match Is Rejected With An Error Body
	tdb := testdb.New(t)
	defer tdb.Close()

	mux := newWireMux(tdb, helpers.NewJWTHelper(t))

	unknown := "match:nope"
	rec := serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/rsvp").
		WithBody(model.SubmitRSVPRequest{
			Name:      "Carmen Ruiz",
			Email:     "carmen@test.local",
			Attendees: 1,
			MatchID:   &unknown,
		}).
		Build())

	helpers.AssertStatus(t, rec, http.StatusNotFound)

	var body legacyError
	helpers.DecodeResponse(t, rec, &body)
	assert.Equal(t, "partido no encontrado", body.Error)
}

func TestRSVPWire_QueryParameterScopesSubmission(t *testing.T) {
	// AC-WIRE-005: Query Parameter Alone Scopes A Submission
	tdb := testdb.New(t)
	defer tdb.Close()

	jwtHelper := helpers.NewJWTHelper(t)
	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, jwtHelper)

	board := f.CreateBoardUser(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/board/matches").
		WithAuth(jwtHelper, board).
		WithBody(model.CreateMatchRequest{
			Opponent:    "Real Sociedad",
			Competition: model.CompetitionLaLiga,
			KickoffAt:   time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
			HomeAway:    model.MatchHome,
			Venue:       "Malone's, Edinburgh",
		}).
		Build())
	helpers.AssertStatus(t, rec, http.StatusCreated)

	data := helpers.GetDataFromResponse(t, rec)
	matchID, ok := data["id"].(string)
	require.True(t, ok, "created match must carry an id")

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/rsvp?match="+matchID).
		WithBody(model.SubmitRSVPRequest{Name: "Carmen Ruiz", Email: "carmen@test.local", Attendees: 2}).
		Build())
	helpers.AssertStatus(t, rec, http.StatusOK)

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/rsvp/attendees?match="+matchID).Build())
	helpers.AssertStatus(t, rec, http.StatusOK)
	helpers.AssertJSONContains(t, rec, map[string]interface{}{"count": 2})
}

func TestRSVPWire_StatusForAuthenticatedUser(t *testing.T) {
	// AC-WIRE-006: Status Reflects The Authenticated Session
	tdb := testdb.New(t)
	defer tdb.Close()

	jwtHelper := helpers.NewJWTHelper(t)
	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, jwtHelper)

	user := f.CreateUser(t)
	match := f.CreateMatch(t)
	f.CreateRSVP(t, match, func(o *fixtures.RSVPOpts) {
		o.UserID = &user.ID
		o.Attendees = 5
	})

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/rsvp/status?match="+match.ID).
		WithAuth(jwtHelper, user).
		Build())

	helpers.AssertStatus(t, rec, http.StatusOK)

	var status model.RSVPStatusResponse
	helpers.DecodeResponse(t, rec, &status)
	assert.True(t, status.Success)
	assert.Equal(t, model.RSVPStatusConfirmed, status.Status)
	assert.Equal(t, 5, status.Attendees)

	created := helpers.MustParseTime(t, time.RFC3339, status.CreatedAt)
	assert.WithinDuration(t, time.Now(), created, time.Minute)
}

func TestRSVPWire_StatusWithoutIdentity(t *testing.T) {
	// AC-WIRE-007: Status Without Identity Is Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, helpers.NewJWTHelper(t))

	f.CreateMatch(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/rsvp/status").Build())

	helpers.AssertStatus(t, rec, http.StatusBadRequest)

	var body legacyError
	helpers.DecodeResponse(t, rec, &body)
	assert.NotEmpty(t, body.Error)
}

func TestRSVPWire_BoardEndpointsEnforceRole(t *testing.T) {
	// AC-WIRE-008: Board Endpoints Enforce Token And Role
	tdb := testdb.New(t)
	defer tdb.Close()

	jwtHelper := helpers.NewJWTHelper(t)
	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, jwtHelper)

	member := f.CreateUser(t)
	board := f.CreateBoardUser(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/board/rsvps").Build())
	helpers.AssertProblemDetails(t, rec, http.StatusUnauthorized, model.ErrCodeUnauthorized)

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/board/rsvps").
		WithHeader("Authorization", "Bearer not-a-token").
		Build())
	helpers.AssertProblemDetails(t, rec, http.StatusUnauthorized, model.ErrCodeUnauthorized)

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/board/rsvps").
		WithHeader("Authorization", "Bearer "+jwtHelper.GenerateExpiredToken(board)).
		Build())
	helpers.AssertProblemDetails(t, rec, http.StatusUnauthorized, model.ErrCodeUnauthorized)

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/board/rsvps").
		WithAuth(jwtHelper, member).
		Build())
	helpers.AssertProblemDetails(t, rec, http.StatusForbidden, model.ErrCodeForbidden)

	rec = serveWire(mux, helpers.NewRequest(t, http.MethodGet, "/api/board/rsvps").
		WithAuth(jwtHelper, board).
		Build())
	helpers.AssertStatus(t, rec, http.StatusOK)
}

func TestRSVPWire_BoardValidationCarriesFields(t *testing.T) {
	// AC-WIRE-009: Board Validation Errors Carry Field Details
	tdb := testdb.New(t)
	defer tdb.Close()

	jwtHelper := helpers.NewJWTHelper(t)
	f := fixtures.New(tdb.DB)
	mux := newWireMux(tdb, jwtHelper)

	board := f.CreateBoardUser(t)

	rec := serveWire(mux, helpers.NewRequest(t, http.MethodPost, "/api/board/matches").
		WithAuth(jwtHelper, board).
		WithBody(model.CreateMatchRequest{
			Competition: model.CompetitionLaLiga,
			KickoffAt:   time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
			HomeAway:    model.MatchHome,
			Venue:       "Malone's, Edinburgh",
		}).
		Build())

	helpers.AssertValidationError(t, rec, "opponent")
}
