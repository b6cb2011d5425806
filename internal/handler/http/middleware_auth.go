// Package http implements the HTTP transport layer of the application:
// the GraphQL endpoint, middleware, and static serving of the client bundle.
// Tracing, logging, and identity extraction are all handled at this layer
// before requests are forwarded to the resolver layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/utils"
)

// withAuthContext is an HTTP middleware that extracts the caller's identity
// from the "Authorization" header and stores it in the request context under
// [utils.IdentityCtxKey].
//
// Unlike a conventional auth guard it never rejects a request: an absent
// header, a malformed header, or an invalid/expired token all produce an
// anonymous request context. Authorization is enforced per operation in the
// resolver layer, because a single GraphQL request may mix public and
// protected operations.
func (h *Handler) withAuthContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header, continuing as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("invalid token, continuing as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
