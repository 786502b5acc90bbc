package auth

import "time"

// HashingAlgorithm produces self-verifying hashes: the encoded output carries
// its own random salt and cost parameters.
type HashingAlgorithm interface {
	// GenerateHash hashes salt when secret is nil, otherwise salt followed by secret.
	GenerateHash(salt string, secret *string) (string, error)

	// IsHashVerified reports whether secret produces hashedSecret.
	IsHashVerified(secret, hashedSecret string) (bool, error)

	// String returns the display name of the algorithm
	String() string
}

// PasswordManager hashes passwords in two layers: a hashed server-side salt
// and a hash of that salt concatenated with the password.
type PasswordManager interface {
	// GenerateDoubleLayeredPassword returns the hashed salt and hashed password to persist.
	GenerateDoubleLayeredPassword(password string) (hashedSalt, hashedPassword string, err error)

	// IsHashedPasswordVerified checks a raw password against the persisted pair.
	IsHashedPasswordVerified(hashedSalt, password, hashedPassword string) bool
}

// Identity is what an access token asserts about its bearer
type Identity struct {
	Username string
	Email    string
}

// TokenManager issues and decodes access tokens
type TokenManager interface {
	// GenerateJWT signs a token for identity valid for the configured lifetime.
	GenerateJWT(identity *Identity) (string, error)

	// RetrieveDetailsFromJWT verifies token and returns the identity it carries.
	// Any failure is reported as ErrInvalidToken.
	RetrieveDetailsFromJWT(token string) (*Identity, error)
}

// OTPManager generates and checks TOTP secrets
type OTPManager interface {
	// GenerateOTP creates a new secret and its provisioning URI for accountName.
	GenerateOTP(accountName string) (secret, authURL string, err error)

	// ValidateOTP checks token against secret at the current time.
	ValidateOTP(token, secret string) bool

	// ValidateOTPAt checks token against secret at t.
	ValidateOTPAt(token, secret string, t time.Time) bool
}
