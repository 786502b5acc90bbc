package pokemonimages

import "context"

// PokemonImageService manages the images players upload for the guessing game
type PokemonImageService interface {
	// List returns the images matching query.
	List(ctx context.Context, query *PokemonImageQuery) ([]*PokemonImage, error)

	// GetByID returns a single image record or ErrPokemonImageNotFound.
	GetByID(ctx context.Context, id string) (*PokemonImage, error)

	// Create adds an image record to the profile of accountID and stores the optional file.
	Create(ctx context.Context, accountID uint, input *PokemonImageCreate) (*PokemonImage, error)

	// Download returns the record together with the stored file.
	Download(ctx context.Context, id string) (*PokemonImage, []byte, error)

	// UpdateNickname renames an image owned by accountID.
	UpdateNickname(ctx context.Context, accountID uint, id, nickname string) (*PokemonImage, error)

	// RecordPrediction counts a guess: correct raises correct_predicted and win,
	// wrong raises wrong_predicted and loss.
	RecordPrediction(ctx context.Context, id, outcome string) (*PokemonImage, error)

	// Delete removes an image owned by accountID and its stored file.
	Delete(ctx context.Context, accountID uint, id string) error
}

// PokemonImageRepository defines the interface for PokemonImage-related operations
type PokemonImageRepository interface {
	Create(ctx context.Context, image *PokemonImage) error
	List(ctx context.Context, query *PokemonImageQuery) ([]*PokemonImage, error)
	GetByID(ctx context.Context, id string) (*PokemonImage, error)
	// UpdateNickname changes the nickname column and nothing else
	UpdateNickname(ctx context.Context, id, nickname string) error
	// IncrementPrediction atomically bumps the counters for outcome
	IncrementPrediction(ctx context.Context, id, outcome string) error
	Delete(ctx context.Context, id string) error
}
