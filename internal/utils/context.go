// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JSON
// response writing, JWT token generation and validation, and UUID
// generation.
package utils

import (
	"context"

	"github.com/society360/backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authorization gate stores
// the resolved acting principal in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, principal)
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the acting principal from the context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and implements models.Principal
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // handle missing principal in context
//	}
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
