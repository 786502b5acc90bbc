package app

import (
	"context"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/google/uuid"
)

// pokemonImageService implements the PokemonImageService interface
type pokemonImageService struct {
	pokemonImageRepo pokemonimages.PokemonImageRepository
	profileRepo      profiles.ProfileRepository
	blobConnector    blobs.BlobConnector
	pokemonImageDir  string
	logger           logger.Logger
}

// NewPokemonImageService creates a new instance of PokemonImageService
func NewPokemonImageService(
	pokemonImageRepo pokemonimages.PokemonImageRepository,
	profileRepo profiles.ProfileRepository,
	blobConnector blobs.BlobConnector,
	pokemonImageDir string,
	logger logger.Logger,
) (pokemonimages.PokemonImageService, error) {
	return &pokemonImageService{
		pokemonImageRepo: pokemonImageRepo,
		profileRepo:      profileRepo,
		blobConnector:    blobConnector,
		pokemonImageDir:  pokemonImageDir,
		logger:           logger,
	}, nil
}

func (s *pokemonImageService) List(ctx context.Context, query *pokemonimages.PokemonImageQuery) ([]*pokemonimages.PokemonImage, error) {
	return s.pokemonImageRepo.List(ctx, query)
}

func (s *pokemonImageService) GetByID(ctx context.Context, id string) (*pokemonimages.PokemonImage, error) {
	return s.pokemonImageRepo.GetByID(ctx, id)
}

func (s *pokemonImageService) objectKey(image *pokemonimages.PokemonImage) string {
	return blobs.ObjectKey(s.pokemonImageDir, image.FileName)
}

func (s *pokemonImageService) Create(ctx context.Context, accountID uint, input *pokemonimages.PokemonImageCreate) (*pokemonimages.PokemonImage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	image := &pokemonimages.PokemonImage{
		ID:        uuid.New().String(),
		FileName:  uuid.New().String(),
		Name:      input.Name,
		Nickname:  input.Nickname,
		ProfileID: profile.ID,
	}
	if image.Nickname == "" {
		image.Nickname = image.Name
	}

	if input.Image != nil {
		contentType, err := blobs.DetectImageContentType(input.Image.Data)
		if err != nil {
			return nil, err
		}
		blob, err := s.blobConnector.Upload(ctx, s.objectKey(image), input.Image.Data, contentType)
		if err != nil {
			return nil, err
		}
		image.ContentType = blob.ContentType
		image.Size = blob.Size
	}

	if err := s.pokemonImageRepo.Create(ctx, image); err != nil {
		if image.HasFile() {
			if delErr := s.blobConnector.Delete(ctx, s.objectKey(image)); delErr != nil {
				s.logger.Warn("Failed to delete object ", s.objectKey(image), ": ", delErr)
			}
		}
		return nil, err
	}
	return image, nil
}

func (s *pokemonImageService) Download(ctx context.Context, id string) (*pokemonimages.PokemonImage, []byte, error) {
	image, err := s.pokemonImageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !image.HasFile() {
		return nil, nil, pokemonimages.ErrNoImageFile
	}

	data, err := s.blobConnector.Download(ctx, s.objectKey(image))
	if err != nil {
		return nil, nil, err
	}
	return image, data, nil
}

// ownedImage loads an image and checks that it belongs to the profile of accountID
func (s *pokemonImageService) ownedImage(ctx context.Context, accountID uint, id string) (*pokemonimages.PokemonImage, error) {
	image, err := s.pokemonImageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if image.ProfileID != profile.ID {
		return nil, pokemonimages.ErrNotOwner
	}
	return image, nil
}

func (s *pokemonImageService) UpdateNickname(ctx context.Context, accountID uint, id, nickname string) (*pokemonimages.PokemonImage, error) {
	image, err := s.ownedImage(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	image.Nickname = nickname
	if err := image.Validate(); err != nil {
		return nil, err
	}

	if err := s.pokemonImageRepo.UpdateNickname(ctx, id, nickname); err != nil {
		return nil, err
	}
	return s.pokemonImageRepo.GetByID(ctx, id)
}

func (s *pokemonImageService) RecordPrediction(ctx context.Context, id, outcome string) (*pokemonimages.PokemonImage, error) {
	if err := s.pokemonImageRepo.IncrementPrediction(ctx, id, outcome); err != nil {
		return nil, err
	}
	return s.pokemonImageRepo.GetByID(ctx, id)
}

func (s *pokemonImageService) Delete(ctx context.Context, accountID uint, id string) error {
	image, err := s.ownedImage(ctx, accountID, id)
	if err != nil {
		return err
	}

	if err := s.pokemonImageRepo.Delete(ctx, id); err != nil {
		return err
	}

	if image.HasFile() {
		if err := s.blobConnector.Delete(ctx, s.objectKey(image)); err != nil {
			s.logger.Warn("Failed to delete object ", s.objectKey(image), ": ", err)
		}
	}
	return nil
}
