package cryptography

import (
	"errors"
	"fmt"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the payload of an access token
type accessClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret     []byte
	method     jwt.SigningMethod
	subject    string
	expiration time.Duration
	now        func() time.Time
}

// NewJWTManager creates a TokenManager signing with the configured HMAC algorithm
func NewJWTManager(settings *config.SecuritySettings) (auth.TokenManager, error) {
	return newJWTManager(settings)
}

func newJWTManager(settings *config.SecuritySettings) (*jwtManager, error) {
	method := jwt.GetSigningMethod(settings.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", settings.JWTAlgorithm)
	}
	if settings.JWTSecretKey == "" {
		return nil, errors.New("JWT secret key must not be empty")
	}

	return &jwtManager{
		secret:     []byte(settings.JWTSecretKey),
		method:     method,
		subject:    settings.JWTSubject,
		expiration: settings.JWTExpiration(),
		now:        time.Now,
	}, nil
}

func (m *jwtManager) GenerateJWT(identity *auth.Identity) (string, error) {
	if identity == nil {
		return "", errors.New("cannot generate JWT token without an account")
	}

	issuedAt := m.now()
	claims := accessClaims{
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) RetrieveDetailsFromJWT(token string) (*auth.Identity, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithSubject(m.subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, auth.ErrInvalidToken
	}

	if claims.Username == "" || claims.Email == "" {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Identity{Username: claims.Username, Email: claims.Email}, nil
}
