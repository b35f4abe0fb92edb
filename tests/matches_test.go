package tests

import (
	"context"
	"testing"
	"time"

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
FEATURE: Match Listings
DOMAIN: Fixtures & Watch Parties

ACCEPTANCE CRITERIA:
===================

AC-MATCH-001: Create Match
AC-MATCH-002: Create Match Validates Input
AC-MATCH-003: Next Match Is The Earliest Upcoming
AC-MATCH-004: Next With No Upcoming Match
AC-MATCH-005: List Upcoming Only Excludes Past Matches
AC-MATCH-006: Update Match Fields
AC-MATCH-007: Delete Match
AC-MATCH-008: Get Unknown Match
*/

func createMatchService(tdb *testdb.TestDB) *service.MatchService {
	return service.NewMatchService(service.MatchServiceConfig{
		MatchRepo: repository.NewMatchRepository(tdb.DB),
	})
}

func TestMatches_Create(t *testing.T) {
	// AC-MATCH-001: Create Match
	tdb := testdb.New(t)
	defer tdb.Close()

	matchService := createMatchService(tdb)
	ctx := context.Background()

	kickoff := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)
	match, err := matchService.Create(ctx, &model.CreateMatchRequest{
		Opponent:    "Real Madrid",
		Competition: model.CompetitionLaLiga,
		KickoffAt:   kickoff.Format(time.RFC3339),
		HomeAway:    model.MatchAway,
		Venue:       "The Auld Hoose, Edinburgh",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)
	assert.Equal(t, "Real Madrid", match.Opponent)
	assert.Equal(t, model.MatchAway, match.HomeAway)
	helpers.AssertRecordExists(t, tdb.DB, "match", match.ID)
}

func TestMatches_CreateValidatesInput(t *testing.T) {
	// AC-MATCH-002: Create Match Validates Input
	tdb := testdb.New(t)
	defer tdb.Close()

	matchService := createMatchService(tdb)
	ctx := context.Background()

	_, err := matchService.Create(ctx, &model.CreateMatchRequest{
		Opponent:    "",
		Competition: "champions", // not a known competition
		KickoffAt:   "not-a-date",
		HomeAway:    "neutral",
	})

	require.Error(t, err)
	var problem *model.ProblemDetails
	require.ErrorAs(t, err, &problem)
	assert.NotEmpty(t, problem.Errors)
}

func TestMatches_NextIsEarliestUpcoming(t *testing.T) {
	// AC-MATCH-003: Next Match Is The Earliest Upcoming
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	matchService := createMatchService(tdb)
	ctx := context.Background()

	f.CreatePastMatch(t)
	f.CreateMatch(t, func(o *fixtures.MatchOpts) {
		o.Opponent = "Valencia CF"
		o.KickoffAt = time.Now().Add(240 * time.Hour).UTC().Truncate(time.Second)
	})
	soonest := f.CreateMatch(t, func(o *fixtures.MatchOpts) {
		o.Opponent = "Girona FC"
		o.KickoffAt = time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	})

	next, err := matchService.Next(ctx)

	require.NoError(t, err)
	assert.Equal(t, soonest.ID, next.ID)
	assert.Equal(t, "Girona FC", next.Opponent)
}

func TestMatches_NextWithNoUpcomingMatch(t *testing.T) {
	// AC-MATCH-004: Next With No Upcoming Match
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	matchService := createMatchService(tdb)
	ctx := context.Background()

	f.CreatePastMatch(t)

	_, err := matchService.Next(ctx)

	assert.ErrorIs(t, err, service.ErrNoUpcomingMatch)
}

func TestMatches_ListUpcomingOnly(t *testing.T) {
	// AC-MATCH-005: List Upcoming Only Excludes Past Matches
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	matchService := createMatchService(tdb)
	ctx := context.Background()

	f.CreatePastMatch(t)
	upcoming := f.CreateMatch(t)

	matches, err := matchService.List(ctx, true, 20)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, upcoming.ID, matches[0].ID)

	all, err := matchService.List(ctx, false, 20)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMatches_UpdateFields(t *testing.T) {
	// AC-MATCH-006: Update Match Fields
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	matchService := createMatchService(tdb)
	ctx := context.Background()

	match := f.CreateMatch(t)

	updated, err := matchService.Update(ctx, match.ID, &model.UpdateMatchRequest{
		Venue:     helpers.StringPtr("The Tron, Edinburgh"),
		TVChannel: helpers.StringPtr("Premier Sports"),
	})

	require.NoError(t, err)
	assert.Equal(t, "The Tron, Edinburgh", updated.Venue)
	require.NotNil(t, updated.TVChannel)
	assert.Equal(t, "Premier Sports", *updated.TVChannel)
	// Untouched fields survive
	assert.Equal(t, match.Opponent, updated.Opponent)
}

func TestMatches_Delete(t *testing.T) {
	// AC-MATCH-007: Delete Match
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	matchService := createMatchService(tdb)
	ctx := context.Background()

	match := f.CreateMatch(t)

	err := matchService.Delete(ctx, match.ID)

	require.NoError(t, err)
	helpers.AssertRecordNotExists(t, tdb.DB, "match", match.ID)
}

func TestMatches_GetUnknown(t *testing.T) {
	// AC-MATCH-008: Get Unknown Match
	tdb := testdb.New(t)
	defer tdb.Close()

	matchService := createMatchService(tdb)
	ctx := context.Background()

	_, err := matchService.Get(ctx, "match:doesnotexist")

	assert.ErrorIs(t, err, service.ErrMatchNotFound)
}
