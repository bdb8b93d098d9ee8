package session

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// signToken wraps a session id in a signed HS256 token for the cookie.
// The token only proves the cookie was issued by this server; the session
// itself lives in Redis and can be revoked independently.
func signToken(sessionID, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,                                // Session id carried as the subject
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),  // Token expires with the session
		IssuedAt:  jwt.NewNumericDate(time.Now()),           // Issued at current time
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// parseToken validates a signed cookie value and returns the session id
func parseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return "", err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid {
		return claims.Subject, nil // Return the session id if valid
	}
	// Return error if token is invalid
	return "", jwt.ErrSignatureInvalid
}
