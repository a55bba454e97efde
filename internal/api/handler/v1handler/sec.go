package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"privacymon/internal/config"
	"privacymon/pkg/controller"
	"privacymon/pkg/logger"
	"privacymon/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

// OperatorKey is the context key holding the authenticated token subject.
const OperatorKey ctxKey = "operator"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("JWT public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// GetOperatorFromContext returns the subject of the token that authenticated
// the request.
func GetOperatorFromContext(ctx context.Context) string {
	op, _ := ctx.Value(OperatorKey).(string)

	return op
}

// Authenticate validates token and stores its subject in the returned context.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, OperatorKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("operator", claims.Subject)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			controller.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(r.Context(), token)
		if err != nil {
			controller.WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
