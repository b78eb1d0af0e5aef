// Package identity validates the signed claims issued by the external identity
// provider and turns them into a domain.Actor.
package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// Claims is the identity token body: sub is the user id, user_role the optional role.
type Claims struct {
	UserRole string `json:"user_role,omitempty"`
	jwt.RegisteredClaims
}

// JWTService validates HS256 identity tokens and mints development tokens.
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	clock      func() time.Time
}

// Option configures a JWTService.
type Option func(*JWTService)

// WithClock overrides time.Now for token timestamps and expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(s *JWTService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewJWTService(signingKey string, issuer string, audience string, opts ...Option) *JWTService {
	s := &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken signs a token for userID with the given role. RoleNone omits the
// role claim. Only the token CLI and tests use it; production tokens come from the
// identity provider.
func (s *JWTService) GenerateToken(userID domain.UserID, role domain.Role, expiresIn time.Duration) (string, error) {
	now := s.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserRole: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// ParseClaims verifies signature, algorithm, issuer, audience and expiry.
func (s *JWTService) ParseClaims(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// ValidateToken returns the actor named by a valid token. An unknown role claim is
// rejected rather than downgraded so a misconfigured provider fails loudly.
func (s *JWTService) ValidateToken(tokenString string) (domain.Actor, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return domain.Anonymous, err
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.Anonymous, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}
	role, err := domain.ParseRole(claims.UserRole)
	if err != nil {
		return domain.Anonymous, dErrors.New(dErrors.CodeUnauthorized, "invalid token role")
	}
	return domain.Actor{ID: userID, Role: role}, nil
}
