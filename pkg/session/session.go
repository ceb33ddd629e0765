package session

import (
	"errors"
	"time"
)

// TokenTTL is how long a minted token stays valid. There is no refresh
// and no revocation list: expiry comes purely from the signed exp claim,
// and an expired caller logs in again.
const TokenTTL = 48 * time.Hour

var (
	// ErrInvalidToken covers malformed tokens, bad signatures and
	// unexpected signing methods.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired means the signature checked out but exp is in
	// the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenIssuance means signing failed while minting.
	ErrTokenIssuance = errors.New("token issuance failed")
)
