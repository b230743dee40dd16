package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
	"github.com/inventry-dev/inventry/pkg/usecase"
	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// authMiddleware verifies the Authorization bearer credential and embeds
// the resulting identity into the request context. Requests without a
// verifiable identity are rejected before any store access.
func authMiddleware(authn usecase.Authn) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := bearerToken(r)
			if credential == "" && !authn.IsNoAuthn() {
				respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token, err := authn.Verify(r.Context(), credential)
			if err != nil {
				logging.From(r.Context()).Warn("identity verification failed", "error", err.Error())
				respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := auth.ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// accessLogger emits one structured log line per request
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.From(r.Context()).Info("access",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
