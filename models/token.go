package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by every session token issued by
// the server. It extends the registered JWT claims with the principal's
// role so that the authorization gate can enforce role predicates
// without re-reading the identity store.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the role the principal was created with ("admin" or
	// "resident").
	Role Role `json:"role"`
}

// Token wraps a session token together with the identity it resolves to.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the
// Authorization header.
type Token struct {
	// Token is the underlying JWT used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the principal identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Role is the principal role extracted from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
