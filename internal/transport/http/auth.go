package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/app"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
)

// LoginService is the minimal interface needed to authenticate staff.
type LoginService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenVerifier validates bearer tokens issued by the login endpoint.
type TokenVerifier interface {
	VerifyToken(token string) (*app.Claims, error)
}

type contextKey string

const claimsContextKey contextKey = "staff-claims"

// ClaimsFromContext returns the staff claims set by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*app.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*app.Claims)
	return claims, ok
}

// HandleLogin returns an HTTP handler for staff login.
func HandleLogin(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, codeInvalidCredentials, "email and password are required")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, codeInvalidCredentials, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: token})
	}
}

// RequireAuth rejects requests without a valid staff bearer token and
// stores the claims in the request context.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "authorization header required")
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid authorization format")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}
