package profiles

import (
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// DefaultMMR is the match-making rating a new profile starts with
const DefaultMMR = 80

// Profile entity
type Profile struct {
	ID        uint
	FirstName string `validate:"max=64"`
	LastName  string `validate:"max=64"`
	Photo     string `validate:"max=1024"`
	Win       int    `validate:"gte=0"`
	Loss      int    `validate:"gte=0"`
	MMR       int    `validate:"gte=0"`
	AccountID uint   `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile returns the empty profile created alongside an account
func NewProfile(accountID uint) *Profile {
	return &Profile{AccountID: accountID, MMR: DefaultMMR}
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	return validators.ValidateStruct(p)
}

// ProfileUpdate carries optional profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string `validate:"omitempty,max=64"`
	LastName  *string `validate:"omitempty,max=64"`
	Win       *int    `validate:"omitempty,gte=0"`
	Loss      *int    `validate:"omitempty,gte=0"`
	MMR       *int    `validate:"omitempty,gte=0"`
}

// Validate for validating ProfileUpdate struct
func (u *ProfileUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// Apply copies every set field onto p
func (u *ProfileUpdate) Apply(p *Profile) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Win != nil {
		p.Win = *u.Win
	}
	if u.Loss != nil {
		p.Loss = *u.Loss
	}
	if u.MMR != nil {
		p.MMR = *u.MMR
	}
}

// ProfileQuery filters and pages profile listings
type ProfileQuery struct {
	FirstName string `validate:"omitempty,max=64"`
	LastName  string `validate:"omitempty,max=64"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=id mmr win loss created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// Validate for validating ProfileQuery struct
func (q *ProfileQuery) Validate() error {
	return validators.ValidateStruct(q)
}
