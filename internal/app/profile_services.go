package app

import (
	"context"
	"path"
	"strings"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/google/uuid"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo     profiles.ProfileRepository
	blobConnector   blobs.BlobConnector
	profilePhotoDir string
	logger          logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo profiles.ProfileRepository, blobConnector blobs.BlobConnector, profilePhotoDir string, logger logger.Logger) (profiles.ProfileService, error) {
	return &profileService{
		profileRepo:     profileRepo,
		blobConnector:   blobConnector,
		profilePhotoDir: profilePhotoDir,
		logger:          logger,
	}, nil
}

func (s *profileService) List(ctx context.Context, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	return s.profileRepo.List(ctx, query)
}

func (s *profileService) GetByID(ctx context.Context, id uint) (*profiles.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// ownedProfile loads a profile and checks that accountID owns it
func (s *profileService) ownedProfile(ctx context.Context, accountID, id uint) (*profiles.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.AccountID != accountID {
		return nil, profiles.ErrNotOwner
	}
	return profile, nil
}

func (s *profileService) UpdateByID(ctx context.Context, accountID, id uint, update *profiles.ProfileUpdate) (*profiles.Profile, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.ownedProfile(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	update.Apply(profile)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UploadPhoto(ctx context.Context, accountID, id uint, fileName string, data []byte) (*profiles.Profile, error) {
	contentType, err := blobs.DetectImageContentType(data)
	if err != nil {
		return nil, err
	}

	profile, err := s.ownedProfile(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	key := blobs.ObjectKey(s.profilePhotoDir, uuid.New().String()+strings.ToLower(path.Ext(fileName)))
	if _, err := s.blobConnector.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	previous := profile.Photo
	profile.Photo = key
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if delErr := s.blobConnector.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Failed to delete object ", key, ": ", delErr)
		}
		return nil, err
	}

	if previous != "" {
		if err := s.blobConnector.Delete(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete previous photo ", previous, ": ", err)
		}
	}

	s.logger.Info("Uploaded photo for profile with id ", profile.ID)
	return profile, nil
}
