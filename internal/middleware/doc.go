// Package middleware provides HTTP middleware for the peña API.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth / OptionalAuth: JWT token validation and user extraction
//   - RequireBoard: board-role authorization for admin routes
//   - Feature: configuration-flag gating of whole feature areas
//   - RateLimit: request rate limiting per user/IP
//   - Idempotency: replay protection for retried POST/PATCH requests
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	handler = middleware.Chain(mux, middleware.Auth(jwtService))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//	claims := middleware.GetClaims(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetClaims(ctx): Returns full JWT claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
