package models

import (
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
)

// PokemonImageModel is the GORM database model for pokemon images
type PokemonImageModel struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	FileName         string `gorm:"not null;uniqueIndex;type:varchar(36)"`
	Name             string `gorm:"not null;index;type:varchar(64)"`
	Nickname         string `gorm:"not null;type:varchar(64)"`
	ContentType      string `gorm:"type:varchar(100)"`
	Size             int64  `gorm:"not null;default:0"`
	CorrectPredicted int    `gorm:"not null;default:0"`
	WrongPredicted   int    `gorm:"not null;default:0"`
	Win              int    `gorm:"not null;default:0"`
	Loss             int    `gorm:"not null;default:0"`
	ProfileID        uint   `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (PokemonImageModel) TableName() string {
	return "pokemon_image"
}

// ToDomain converts GORM model to domain entity
func (m *PokemonImageModel) ToDomain() *pokemonimages.PokemonImage {
	return &pokemonimages.PokemonImage{
		ID:               m.ID,
		FileName:         m.FileName,
		Name:             m.Name,
		Nickname:         m.Nickname,
		ContentType:      m.ContentType,
		Size:             m.Size,
		CorrectPredicted: m.CorrectPredicted,
		WrongPredicted:   m.WrongPredicted,
		Win:              m.Win,
		Loss:             m.Loss,
		ProfileID:        m.ProfileID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PokemonImageModel) FromDomain(p *pokemonimages.PokemonImage) {
	m.ID = p.ID
	m.FileName = p.FileName
	m.Name = p.Name
	m.Nickname = p.Nickname
	m.ContentType = p.ContentType
	m.Size = p.Size
	m.CorrectPredicted = p.CorrectPredicted
	m.WrongPredicted = p.WrongPredicted
	m.Win = p.Win
	m.Loss = p.Loss
	m.ProfileID = p.ProfileID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{&AccountModel{}, &ProfileModel{}, &PokemonImageModel{}}
}
