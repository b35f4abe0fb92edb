// Package jwt provides JSON Web Token utilities for the peña backend.
//
// The jwt package handles RS256 token generation, validation, and claims
// extraction for authentication. Board members carry role "board"; regular
// supporters carry role "member".
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    PublicKeyPath:  "./keys/public.pem",
//	    Issuer:         "pbescocia.com",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{UserID: userID, Role: jwt.RoleMember})
//
// # Token Validation
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
package jwt
