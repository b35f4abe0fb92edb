package tests

import (
	"context"
	"testing"
	"time"

	"github.com/pena-betica-escocesa/api/internal/filestore"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/internal/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Shirt Design Voting
DOMAIN: Club Merchandise

The voting round lives in a flat JSON document rather than SurrealDB, so
these tests run against a real file in a temp dir instead of a test
database.

ACCEPTANCE CRITERIA:
===================

AC-SHIRT-001: Board Adds A Candidate Design
AC-SHIRT-002: Cast Vote Tallies Against The Design
AC-SHIRT-003: One Vote Per Voter Per Round
AC-SHIRT-004: Anonymous Votes Require An Email
AC-SHIRT-005: Votes Rejected When Round Closed
AC-SHIRT-006: Pre-Orders Stay Open After The Vote Closes
AC-SHIRT-007: Round Auto-Closes Past Its Deadline
AC-SHIRT-008: Voter's Own Ballot Appears In The View
AC-SHIRT-009: State Survives A Restart
*/

func createVotingService(t *testing.T, now func() time.Time) (*service.VotingService, string) {
	t.Helper()
	dir := t.TempDir()
	store := filestore.NewCollection(dir, "voting", filestore.NewVotingDocument)
	return service.NewVotingService(service.VotingServiceConfig{
		Store: store,
		Now:   now,
	}), dir
}

func TestShirtVoting_BoardAddsDesign(t *testing.T) {
	// AC-SHIRT-001: Board Adds A Candidate Design
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Verdiblanca 2026",
		ImageURL: "https://cdn.test.local/designs/verdiblanca.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, design.ID)
	assert.True(t, design.Active)

	view, err := votingService.View(ctx, "")
	require.NoError(t, err)
	require.Len(t, view.Designs, 1)
	assert.Equal(t, design.ID, view.Designs[0].Design.ID)
	assert.Equal(t, 0, view.Designs[0].Votes)
}

func TestShirtVoting_CastVoteTallies(t *testing.T) {
	// AC-SHIRT-002: Cast Vote Tallies Against The Design
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Tartan Trim",
		ImageURL: "https://cdn.test.local/designs/tartan.png",
	})
	require.NoError(t, err)

	_, err = votingService.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
		Email:    helpers.StringPtr("Voter@Test.Local"),
	})
	require.NoError(t, err)

	view, err := votingService.View(ctx, "")
	require.NoError(t, err)
	require.Len(t, view.Designs, 1)
	assert.Equal(t, 1, view.Designs[0].Votes)
}

func TestShirtVoting_OneVotePerVoter(t *testing.T) {
	// AC-SHIRT-003: One Vote Per Voter Per Round
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Tartan Trim",
		ImageURL: "https://cdn.test.local/designs/tartan.png",
	})
	require.NoError(t, err)

	_, err = votingService.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
		Email:    helpers.StringPtr("voter@test.local"),
	})
	require.NoError(t, err)

	// Same voter, different casing
	_, err = votingService.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
		Email:    helpers.StringPtr("VOTER@test.local"),
	})
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)
}

func TestShirtVoting_AnonymousVoteRequiresEmail(t *testing.T) {
	// AC-SHIRT-004: Anonymous Votes Require An Email
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Tartan Trim",
		ImageURL: "https://cdn.test.local/designs/tartan.png",
	})
	require.NoError(t, err)

	_, err = votingService.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
	})
	assert.ErrorIs(t, err, service.ErrVoterIDRequired)
}

func TestShirtVoting_VotesRejectedWhenClosed(t *testing.T) {
	// AC-SHIRT-005: Votes Rejected When Round Closed
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Tartan Trim",
		ImageURL: "https://cdn.test.local/designs/tartan.png",
	})
	require.NoError(t, err)

	require.NoError(t, votingService.SetRound(ctx, false, nil))

	_, err = votingService.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
		Email:    helpers.StringPtr("late@test.local"),
	})
	assert.ErrorIs(t, err, service.ErrVotingClosed)
}

func TestShirtVoting_PreOrdersStayOpenAfterClose(t *testing.T) {
	// AC-SHIRT-006: Pre-Orders Stay Open After The Vote Closes
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Verdiblanca 2026",
		ImageURL: "https://cdn.test.local/designs/verdiblanca.png",
	})
	require.NoError(t, err)

	require.NoError(t, votingService.SetRound(ctx, false, nil))

	order, err := votingService.CreatePreOrder(ctx, &model.CreatePreOrderRequest{
		DesignID: design.ID,
		Name:     "Iain Murray",
		Email:    "iain@test.local",
		Size:     "L",
		Quantity: 2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	view, err := votingService.View(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.PreOrders)
}

func TestShirtVoting_RoundAutoClosesPastDeadline(t *testing.T) {
	// AC-SHIRT-007: Round Auto-Closes Past Its Deadline
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	votingService, _ := createVotingService(t, func() time.Time { return current })
	ctx := context.Background()

	deadline := current.Add(time.Hour)
	require.NoError(t, votingService.SetRound(ctx, true, &deadline))

	// Before the deadline nothing happens
	closed, err := votingService.CloseIfExpired(ctx)
	require.NoError(t, err)
	assert.False(t, closed)

	// Past the deadline the round is closed exactly once
	current = current.Add(2 * time.Hour)
	closed, err = votingService.CloseIfExpired(ctx)
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = votingService.CloseIfExpired(ctx)
	require.NoError(t, err)
	assert.False(t, closed)

	view, err := votingService.View(ctx, "")
	require.NoError(t, err)
	assert.False(t, view.Open)
}

func TestShirtVoting_OwnBallotInView(t *testing.T) {
	// AC-SHIRT-008: Voter's Own Ballot Appears In The View
	votingService, _ := createVotingService(t, nil)
	ctx := context.Background()

	design, err := votingService.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Tartan Trim",
		ImageURL: "https://cdn.test.local/designs/tartan.png",
	})
	require.NoError(t, err)

	userID := "user:abc123"
	_, err = votingService.CastVote(ctx, &userID, &model.CastVoteRequest{
		DesignID: design.ID,
	})
	require.NoError(t, err)

	view, err := votingService.View(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, view.UserVote)
	assert.Equal(t, design.ID, view.UserVote.DesignID)

	// Someone else sees no ballot of their own
	other, err := votingService.View(ctx, "user:other")
	require.NoError(t, err)
	assert.Nil(t, other.UserVote)
}

func TestShirtVoting_StateSurvivesRestart(t *testing.T) {
	// AC-SHIRT-009: State Survives A Restart
	dir := t.TempDir()
	ctx := context.Background()

	first := service.NewVotingService(service.VotingServiceConfig{
		Store: filestore.NewCollection(dir, "voting", filestore.NewVotingDocument),
	})
	design, err := first.AddDesign(ctx, &model.AddDesignRequest{
		Name:     "Verdiblanca 2026",
		ImageURL: "https://cdn.test.local/designs/verdiblanca.png",
	})
	require.NoError(t, err)
	_, err = first.CastVote(ctx, nil, &model.CastVoteRequest{
		DesignID: design.ID,
		Email:    helpers.StringPtr("voter@test.local"),
	})
	require.NoError(t, err)

	// A fresh collection over the same dir simulates a process restart
	second := service.NewVotingService(service.VotingServiceConfig{
		Store: filestore.NewCollection(dir, "voting", filestore.NewVotingDocument),
	})
	view, err := second.View(ctx, "")
	require.NoError(t, err)
	require.Len(t, view.Designs, 1)
	assert.Equal(t, 1, view.Designs[0].Votes)
}
