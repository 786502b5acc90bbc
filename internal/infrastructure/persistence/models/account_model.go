package models

import (
	"fmt"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
)

// AccountModel is the GORM database model for accounts
type AccountModel struct {
	ID                     uint   `gorm:"primaryKey"`
	Username               string `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Email                  string `gorm:"not null;uniqueIndex;type:varchar(64)"`
	HashedPassword         string `gorm:"not null;type:varchar(1024)"`
	HashedSalt             string `gorm:"not null;type:varchar(1024)"`
	IsAdmin                bool   `gorm:"not null;default:false"`
	IsLoggedIn             bool   `gorm:"not null;default:false"`
	IsVerified             bool   `gorm:"not null;default:false"`
	VerificationCode       string `gorm:"type:varchar(6)"`
	OTPSecret              string `gorm:"column:otp_secret;type:varchar(64)"`
	OTPAuthURL             string `gorm:"column:otp_auth_url;type:varchar(1024)"`
	IsOTPEnabled           bool   `gorm:"column:is_otp_enabled;not null;default:false"`
	IsOTPVerified          bool   `gorm:"column:is_otp_verified;not null;default:false"`
	CredentialsValidatedAt *time.Time
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time
	Profile                *ProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "account"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *accounts.Account {
	return &accounts.Account{
		ID:                     m.ID,
		Username:               m.Username,
		Email:                  m.Email,
		HashedPassword:         m.HashedPassword,
		HashedSalt:             m.HashedSalt,
		IsAdmin:                m.IsAdmin,
		IsLoggedIn:             m.IsLoggedIn,
		IsVerified:             m.IsVerified,
		VerificationCode:       m.VerificationCode,
		OTPSecret:              m.OTPSecret,
		OTPAuthURL:             m.OTPAuthURL,
		IsOTPEnabled:           m.IsOTPEnabled,
		IsOTPVerified:          m.IsOTPVerified,
		CredentialsValidatedAt: m.CredentialsValidatedAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *accounts.Account) {
	m.ID = a.ID
	m.Username = a.Username
	m.Email = a.Email
	m.HashedPassword = a.HashedPassword
	m.HashedSalt = a.HashedSalt
	m.IsAdmin = a.IsAdmin
	m.IsLoggedIn = a.IsLoggedIn
	m.IsVerified = a.IsVerified
	m.VerificationCode = a.VerificationCode
	m.OTPSecret = a.OTPSecret
	m.OTPAuthURL = a.OTPAuthURL
	m.IsOTPEnabled = a.IsOTPEnabled
	m.IsOTPVerified = a.IsOTPVerified
	m.CredentialsValidatedAt = a.CredentialsValidatedAt
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// Columns returns the column values of the requested field groups, keyed by column name
func (m *AccountModel) Columns(fields ...accounts.AccountField) (map[string]interface{}, error) {
	columns := make(map[string]interface{})
	for _, field := range fields {
		switch field {
		case accounts.FieldUsername:
			columns["username"] = m.Username
		case accounts.FieldEmail:
			columns["email"] = m.Email
		case accounts.FieldPassword:
			columns["hashed_password"] = m.HashedPassword
			columns["hashed_salt"] = m.HashedSalt
		case accounts.FieldVerification:
			columns["is_verified"] = m.IsVerified
		case accounts.FieldLoginState:
			columns["is_logged_in"] = m.IsLoggedIn
			columns["credentials_validated_at"] = m.CredentialsValidatedAt
		case accounts.FieldOTP:
			columns["otp_secret"] = m.OTPSecret
			columns["otp_auth_url"] = m.OTPAuthURL
			columns["is_otp_enabled"] = m.IsOTPEnabled
			columns["is_otp_verified"] = m.IsOTPVerified
		default:
			return nil, fmt.Errorf("unknown account field %q", field)
		}
	}
	return columns, nil
}
