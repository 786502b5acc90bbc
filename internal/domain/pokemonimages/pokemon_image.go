package pokemonimages

import (
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// PokemonImage entity
type PokemonImage struct {
	ID               string `validate:"required,uuid4"`
	FileName         string `validate:"required,uuid4"`
	Name             string `validate:"required,min=1,max=64"`
	Nickname         string `validate:"required,min=1,max=64"`
	ContentType      string `validate:"omitempty,max=100"`
	Size             int64  `validate:"gte=0"`
	CorrectPredicted int    `validate:"gte=0"`
	WrongPredicted   int    `validate:"gte=0"`
	Win              int    `validate:"gte=0"`
	Loss             int    `validate:"gte=0"`
	ProfileID        uint   `validate:"required"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate for validating PokemonImage struct
func (p *PokemonImage) Validate() error {
	return validators.ValidateStruct(p)
}

// HasFile reports whether image bytes were uploaded for the record
func (p *PokemonImage) HasFile() bool {
	return p.Size > 0
}

// ImageUpload is a file received with a create request
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// PokemonImageCreate carries the input of a create request
type PokemonImageCreate struct {
	Name     string `validate:"required,min=1,max=64"`
	Nickname string `validate:"omitempty,max=64"`
	Image    *ImageUpload
}

// Validate for validating PokemonImageCreate struct
func (c *PokemonImageCreate) Validate() error {
	return validators.ValidateStruct(c)
}

// Prediction outcomes
const (
	PredictionCorrect = "correct"
	PredictionWrong   = "wrong"
)

// PokemonImageQuery filters and pages pokemon image listings
type PokemonImageQuery struct {
	ProfileID uint
	Name      string `validate:"omitempty,max=64"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=name nickname correct_predicted wrong_predicted win loss created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// Validate for validating PokemonImageQuery struct
func (q *PokemonImageQuery) Validate() error {
	return validators.ValidateStruct(q)
}
