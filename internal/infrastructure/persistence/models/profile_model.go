package models

import (
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
)

// ProfileModel is the GORM database model for profiles
type ProfileModel struct {
	ID            uint   `gorm:"primaryKey"`
	FirstName     string `gorm:"type:varchar(64)"`
	LastName      string `gorm:"type:varchar(64)"`
	Photo         string `gorm:"type:varchar(1024)"`
	Win           int    `gorm:"not null;default:0"`
	Loss          int    `gorm:"not null;default:0"`
	MMR           int    `gorm:"column:mmr;not null;default:80"`
	AccountID     uint   `gorm:"not null;uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PokemonImages []PokemonImageModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profile"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *profiles.Profile {
	return &profiles.Profile{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Photo:     m.Photo,
		Win:       m.Win,
		Loss:      m.Loss,
		MMR:       m.MMR,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *profiles.Profile) {
	m.ID = p.ID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Photo = p.Photo
	m.Win = p.Win
	m.Loss = p.Loss
	m.MMR = p.MMR
	m.AccountID = p.AccountID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
