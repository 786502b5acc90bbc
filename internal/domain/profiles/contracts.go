package profiles

import "context"

// ProfileService exposes profiles to players
type ProfileService interface {
	// List returns profiles matching query, all of them when query is nil.
	List(ctx context.Context, query *ProfileQuery) ([]*Profile, error)

	// GetByID returns a single profile or ErrProfileNotFound.
	GetByID(ctx context.Context, id uint) (*Profile, error)

	// UpdateByID applies update to the profile owned by accountID.
	UpdateByID(ctx context.Context, accountID, id uint, update *ProfileUpdate) (*Profile, error)

	// UploadPhoto stores a new profile photo and records its object key.
	UploadPhoto(ctx context.Context, accountID, id uint, fileName string, data []byte) (*Profile, error)
}

// ProfileRepository defines the interface for Profile-related operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	List(ctx context.Context, query *ProfileQuery) ([]*Profile, error)
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByAccountID(ctx context.Context, accountID uint) (*Profile, error)
	GetByFirstName(ctx context.Context, firstName string) ([]*Profile, error)
	GetByLastName(ctx context.Context, lastName string) ([]*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}
