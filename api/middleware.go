package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shaj13/go-guardian/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/models"
)

// TokenCookie is the cookie the token is mirrored into
const TokenCookie = "token"

var errNotAuthorized = NewErrorResponse("Not authorized to access this route", http.StatusUnauthorized)

// MiddlewareDB holds what the auth middleware needs to resolve a caller
type MiddlewareDB struct {
	DB      databases.UserDatabase
	Tokens  *TokenIssuer
	Revoked store.Cache
}

// NewMiddleware returns a MiddlewareDB whose revoked tokens are remembered for
// as long as a token can live
func NewMiddleware(ctx context.Context, db databases.UserDatabase, tokens *TokenIssuer) MiddlewareDB {
	return MiddlewareDB{
		DB:      db,
		Tokens:  tokens,
		Revoked: store.NewFIFO(ctx, tokens.Expire()),
	}
}

type userContextKey struct{}

// WithUser stores the authenticated user on ctx
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by Protect
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}

// TokenFromRequest returns the bearer token, falling back to the token cookie
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "none" {
		return c.Value
	}
	return ""
}

// Protect rejects requests without a valid token and stores the caller on the
// request context
func (m MiddlewareDB) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.authenticate(r)
		if err != nil {
			zap.S().Debugw("unauthorized", "url", r.URL.Path, "error", err)
			ErrorStatus(w, errNotAuthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (m MiddlewareDB) authenticate(r *http.Request) (*models.User, error) {
	token := TokenFromRequest(r)
	if token == "" {
		return nil, fmt.Errorf("no token")
	}
	if _, revoked, _ := m.Revoked.Load(token, r); revoked {
		return nil, fmt.Errorf("token revoked")
	}
	claims, err := m.Tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := WithQueryTimeout(r.Context())
	defer cancel()

	return m.DB.FindOne(ctx, bson.M{"_id": id})
}

// Revoke stops the token of r from being accepted again. Tokens that would be
// rejected anyway are not remembered.
func (m MiddlewareDB) Revoke(r *http.Request) {
	token := TokenFromRequest(r)
	if token == "" {
		return
	}
	if _, err := m.Tokens.Parse(token); err != nil {
		return
	}
	if err := m.Revoked.Store(token, time.Now(), r); err != nil {
		zap.S().Errorw("failed to revoke token", "error", err)
	}
}

// Authorize only lets callers holding one of roles through. It must run after
// Protect.
func Authorize(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				ErrorStatus(w, errNotAuthorized)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			ErrorStatus(w, NewErrorResponse(
				fmt.Sprintf("User role %s is not authorized to access this route", user.Role),
				http.StatusForbidden,
			))
		})
	}
}
