package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/pkg/utils"
)

type ContextKey string

const UserKey ContextKey = "user"

type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// IdentitySource resolves a verified subject to a local user.
type IdentitySource interface {
	Identify(ctx context.Context, subjectID, email string) (*domain.User, error)
}

// Middleware authenticates the bearer credential. A missing credential and an
// invalid one produce distinct signals.
func Middleware(verifier TokenVerifier, identity IdentitySource) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing authorization token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := verifier.Verify(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := identity.Identify(r.Context(), claims.Subject, claims.Email)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin distinguishes unauthenticated callers from authenticated ones
// lacking the role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !user.IsAdmin() {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)
	return user
}
