package tests

import (
	"context"
	"testing"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/repository"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/internal/testing/fixtures"
	"github.com/pena-betica-escocesa/api/internal/testing/helpers"
	"github.com/pena-betica-escocesa/api/internal/testing/testdb"
	"github.com/pena-betica-escocesa/api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Authentication
DOMAIN: Accounts & Access

ACCEPTANCE CRITERIA:
===================

AC-AUTH-001: Login With Valid Credentials
AC-AUTH-002: Login With Wrong Password
AC-AUTH-003: Login With Unknown Email
AC-AUTH-004: Token Carries Role
AC-AUTH-005: Create User Defaults To Member
AC-AUTH-006: Create User Rejects Duplicate Email
AC-AUTH-007: Create User Rejects Short Password
*/

func createAuthService(t *testing.T, tdb *testdb.TestDB) *service.AuthService {
	t.Helper()
	return service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   repository.NewUserRepository(tdb.DB),
		JWTService: helpers.NewTestJWTService(t),
	})
}

func TestAuth_LoginWithValidCredentials(t *testing.T) {
	// AC-AUTH-001: Login With Valid Credentials
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	authService := createAuthService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t, func(o *fixtures.UserOpts) {
		o.Email = "manue@test.local"
		o.Password = "musho-betis-123"
	})

	resp, err := authService.Login(ctx, &model.LoginRequest{
		Email:    "manue@test.local",
		Password: "musho-betis-123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.True(t, resp.ExpiresAt.Unix() > 0)
}

func TestAuth_LoginWithWrongPassword(t *testing.T) {
	// AC-AUTH-002: Login With Wrong Password
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	authService := createAuthService(t, tdb)
	ctx := context.Background()

	f.CreateUser(t, func(o *fixtures.UserOpts) {
		o.Email = "manue@test.local"
		o.Password = "musho-betis-123"
	})

	_, err := authService.Login(ctx, &model.LoginRequest{
		Email:    "manue@test.local",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuth_LoginWithUnknownEmail(t *testing.T) {
	// AC-AUTH-003: Login With Unknown Email
	tdb := testdb.New(t)
	defer tdb.Close()

	authService := createAuthService(t, tdb)
	ctx := context.Background()

	_, err := authService.Login(ctx, &model.LoginRequest{
		Email:    "nobody@test.local",
		Password: "whatever123",
	})

	// Unknown email and wrong password are indistinguishable
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuth_TokenCarriesRole(t *testing.T) {
	// AC-AUTH-004: Token Carries Role
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	jwtService := helpers.NewTestJWTService(t)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   repository.NewUserRepository(tdb.DB),
		JWTService: jwtService,
	})
	ctx := context.Background()

	board := f.CreateBoardUser(t)

	resp, err := authService.Login(ctx, &model.LoginRequest{
		Email:    board.Email,
		Password: "testpass123",
	})
	require.NoError(t, err)

	claims, err := jwtService.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleBoard, claims.Role)
	assert.True(t, claims.IsBoard())
	assert.Equal(t, board.ID, claims.UserID)
}

func TestAuth_CreateUserDefaultsToMember(t *testing.T) {
	// AC-AUTH-005: Create User Defaults To Member
	tdb := testdb.New(t)
	defer tdb.Close()

	authService := createAuthService(t, tdb)
	ctx := context.Background()

	user, err := authService.CreateUser(ctx, "nuevo@test.local", "Nuevo Socio", "abcd1234", "")

	require.NoError(t, err)
	assert.Equal(t, jwt.RoleMember, user.Role)
	helpers.AssertRecordExists(t, tdb.DB, "user", user.ID)
}

func TestAuth_CreateUserRejectsDuplicateEmail(t *testing.T) {
	// AC-AUTH-006: Create User Rejects Duplicate Email
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	authService := createAuthService(t, tdb)
	ctx := context.Background()

	f.CreateUser(t, func(o *fixtures.UserOpts) {
		o.Email = "taken@test.local"
	})

	_, err := authService.CreateUser(ctx, "taken@test.local", "Otra Persona", "abcd1234", "")

	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
}

func TestAuth_CreateUserRejectsShortPassword(t *testing.T) {
	// AC-AUTH-007: Create User Rejects Short Password
	tdb := testdb.New(t)
	defer tdb.Close()

	authService := createAuthService(t, tdb)
	ctx := context.Background()

	_, err := authService.CreateUser(ctx, "corto@test.local", "Corto", "short", "")

	require.Error(t, err)
	var problem *model.ProblemDetails
	require.ErrorAs(t, err, &problem)
	assert.Equal(t, 400, problem.Status)
}
