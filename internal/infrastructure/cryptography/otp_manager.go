package cryptography

import (
	"fmt"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/strutil"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const otpPeriod = 30

type otpManager struct {
	issuer string
}

// NewOTPManager creates an OTPManager issuing secrets under issuer
func NewOTPManager(issuer string) auth.OTPManager {
	return &otpManager{issuer: issuer}
}

func (m *otpManager) GenerateOTP(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      m.issuer,
		AccountName: accountName,
		Period:      otpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate OTP secret: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

func (m *otpManager) ValidateOTP(token, secret string) bool {
	return m.ValidateOTPAt(token, secret, time.Now())
}

func (m *otpManager) ValidateOTPAt(token, secret string, t time.Time) bool {
	if secret == "" || len(token) != auth.OTPLength || !strutil.IsDigits(token) {
		return false
	}

	ok, err := totp.ValidateCustom(token, secret, t.UTC(), totp.ValidateOpts{
		Period:    otpPeriod,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// GenerateOTPCode returns the current code for secret
func GenerateOTPCode(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t.UTC(), totp.ValidateOpts{
		Period:    otpPeriod,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}
