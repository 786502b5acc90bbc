package pokemonimages

import "errors"

var (
	ErrPokemonImageNotFound = errors.New("pokemon image not found")
	ErrNotOwner             = errors.New("pokemon image belongs to another profile")
	ErrNoImageFile          = errors.New("no image file stored for pokemon image")
	ErrInvalidPrediction    = errors.New("prediction must be correct or wrong")
)
