package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a live principal via [service.AuthService.Authorize], and —
// on success — stores the principal in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, invalid, or no longer maps to an active account.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeErrorMessage(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeErrorMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Authorize(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeError(w, err)
			return
		}

		// Store the resolved principal in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates a route to principals with the admin role. It must
// be installed after auth, which places the principal in the context.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, found := utils.GetPrincipalFromContext(r.Context())
		if !found {
			log.Error().Msg("no principal in context")
			writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if principal.PrincipalRole() != models.RoleAdmin {
			log.Warn().Str("username", principal.PrincipalUsername()).Msg("admin-only route rejected")
			writeErrorMessage(w, "Access denied. Admin only.", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireResident gates a route to principals with the resident role.
func (h *Handler) requireResident(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, found := utils.GetPrincipalFromContext(r.Context())
		if !found {
			log.Error().Msg("no principal in context")
			writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if principal.PrincipalRole() != models.RoleResident {
			log.Warn().Str("username", principal.PrincipalUsername()).Msg("resident-only route rejected")
			writeErrorMessage(w, "Access denied. Residents only.", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
