package token

import "time"

// Maker is an interface for managing access tokens.
type Maker interface {
	// CreateToken creates a signed token for the given username, valid for
	// the given duration.
	CreateToken(username string, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks the token signature and expiration and returns its
	// payload.
	VerifyToken(token string) (*Payload, error)
}
