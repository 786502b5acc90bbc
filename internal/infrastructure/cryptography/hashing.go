package cryptography

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const saltLength = 16

var b64 = base64.RawStdEncoding

// NewHashingAlgorithm returns the algorithm registered under id (a2, bc, 256 or 512)
func NewHashingAlgorithm(id string) (auth.HashingAlgorithm, error) {
	switch id {
	case config.HashingAlgorithmArgon2:
		return &argon2Algorithm{time: 3, memory: 64 * 1024, threads: 2, keyLen: 32}, nil
	case config.HashingAlgorithmBcrypt:
		return &bcryptAlgorithm{cost: bcrypt.DefaultCost}, nil
	case config.HashingAlgorithmSHA256:
		return &pbkdf2Algorithm{name: "SHA 256", ident: "pbkdf2-sha256", newHash: sha256.New, iterations: 29000, keyLen: 32}, nil
	case config.HashingAlgorithmSHA512:
		return &pbkdf2Algorithm{name: "SHA 512", ident: "pbkdf2-sha512", newHash: sha512.New, iterations: 25000, keyLen: 64}, nil
	default:
		return nil, fmt.Errorf("%w: %q", auth.ErrUnsupportedAlgorithm, id)
	}
}

func hashInput(salt string, secret *string) string {
	if secret == nil || *secret == "" {
		return salt
	}
	return salt + *secret
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

var errMalformedHash = errors.New("malformed hash")

// argon2Algorithm encodes as $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>
type argon2Algorithm struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func (a *argon2Algorithm) GenerateHash(salt string, secret *string) (string, error) {
	s, err := randomSalt()
	if err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(hashInput(salt, secret)), s, a.time, a.memory, a.threads, a.keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memory, a.time, a.threads, b64.EncodeToString(s), b64.EncodeToString(key)), nil
}

func (a *argon2Algorithm) IsHashVerified(secret, hashedSecret string) (bool, error) {
	parts := strings.Split(hashedSecret, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, errMalformedHash
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, errMalformedHash
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, errMalformedHash
	}
	expected, err := b64.DecodeString(parts[5])
	if err != nil {
		return false, errMalformedHash
	}

	actual := argon2.IDKey([]byte(secret), salt, iterations, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func (a *argon2Algorithm) String() string {
	return "Argon 2"
}

// bcryptAlgorithm pre-hashes its input with SHA-256 since bcrypt truncates after 72 bytes
// and layered inputs (hashed salt + password) are always longer than that.
type bcryptAlgorithm struct {
	cost int
}

func prehash(input string) []byte {
	sum := sha256.Sum256([]byte(input))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func (b *bcryptAlgorithm) GenerateHash(salt string, secret *string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(hashInput(salt, secret)), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate bcrypt hash: %w", err)
	}
	return string(hashed), nil
}

func (b *bcryptAlgorithm) IsHashVerified(secret, hashedSecret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), prehash(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", errMalformedHash, err)
	}
}

func (b *bcryptAlgorithm) String() string {
	return "BCrypt"
}

// pbkdf2Algorithm encodes as $<ident>$<iterations>$<salt>$<key>
type pbkdf2Algorithm struct {
	name       string
	ident      string
	newHash    func() hash.Hash
	iterations int
	keyLen     int
}

func (p *pbkdf2Algorithm) GenerateHash(salt string, secret *string) (string, error) {
	s, err := randomSalt()
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(hashInput(salt, secret)), s, p.iterations, p.keyLen, p.newHash)
	return fmt.Sprintf("$%s$%d$%s$%s", p.ident, p.iterations, b64.EncodeToString(s), b64.EncodeToString(key)), nil
}

func (p *pbkdf2Algorithm) IsHashVerified(secret, hashedSecret string) (bool, error) {
	parts := strings.Split(hashedSecret, "$")
	if len(parts) != 5 || parts[1] != p.ident {
		return false, errMalformedHash
	}

	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations < 1 {
		return false, errMalformedHash
	}
	salt, err := b64.DecodeString(parts[3])
	if err != nil {
		return false, errMalformedHash
	}
	expected, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, errMalformedHash
	}

	actual := pbkdf2.Key([]byte(secret), salt, iterations, len(expected), p.newHash)
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func (p *pbkdf2Algorithm) String() string {
	return p.name
}
