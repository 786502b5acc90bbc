package app

import (
	"context"
	"errors"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/strutil"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// accountService implements the AccountService interface
type accountService struct {
	accountRepo      accounts.AccountRepository
	profileRepo      profiles.ProfileRepository
	pokemonImageRepo pokemonimages.PokemonImageRepository
	blobConnector    blobs.BlobConnector
	passwordManager  auth.PasswordManager
	tokenManager     auth.TokenManager
	pokemonImageDir  string
	logger           logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	accountRepo accounts.AccountRepository,
	profileRepo profiles.ProfileRepository,
	pokemonImageRepo pokemonimages.PokemonImageRepository,
	blobConnector blobs.BlobConnector,
	passwordManager auth.PasswordManager,
	tokenManager auth.TokenManager,
	pokemonImageDir string,
	logger logger.Logger,
) (accounts.AccountService, error) {
	return &accountService{
		accountRepo:      accountRepo,
		profileRepo:      profileRepo,
		pokemonImageRepo: pokemonImageRepo,
		blobConnector:    blobConnector,
		passwordManager:  passwordManager,
		tokenManager:     tokenManager,
		pokemonImageDir:  pokemonImageDir,
		logger:           logger,
	}, nil
}

func (s *accountService) List(ctx context.Context) ([]*accounts.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *accountService) GetCurrent(ctx context.Context, current *accounts.Account, id uint) (*accounts.Session, error) {
	if current.ID != id {
		return nil, accounts.ErrAccountMismatch
	}
	return s.newSession(current)
}

func (s *accountService) Update(ctx context.Context, current *accounts.Account, id uint, update *accounts.AccountUpdate) (*accounts.Session, error) {
	if current.ID != id {
		return nil, accounts.ErrAccountMismatch
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var fields []accounts.AccountField
	if update.Username != nil && *update.Username != current.Username {
		ok, err := s.accountRepo.IsUsernameAvailable(ctx, *update.Username)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, accounts.ErrCredentialsTaken
		}
		current.Username = *update.Username
		fields = append(fields, accounts.FieldUsername)
	}

	if update.Email != nil {
		email := strutil.NormalizeEmail(*update.Email)
		if email != current.Email {
			ok, err := s.accountRepo.IsEmailAvailable(ctx, email)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, accounts.ErrCredentialsTaken
			}
			current.Email = email
			fields = append(fields, accounts.FieldEmail)
		}
	}

	if update.Password != nil {
		if !validators.IsStrongPassword(*update.Password) {
			return nil, auth.ErrWeakPassword
		}
		hashedSalt, hashedPassword, err := s.passwordManager.GenerateDoubleLayeredPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		current.HashedSalt = hashedSalt
		current.HashedPassword = hashedPassword
		fields = append(fields, accounts.FieldPassword)
	}

	if len(fields) > 0 {
		if err := s.accountRepo.Update(ctx, current, fields...); err != nil {
			return nil, err
		}
		s.logger.Info("Updated account with id ", current.ID)
	}
	return s.newSession(current)
}

func (s *accountService) Delete(ctx context.Context, current *accounts.Account, id uint) error {
	if current.ID != id {
		return accounts.ErrAccountMismatch
	}

	keys, err := s.storedObjectKeys(ctx, current.ID)
	if err != nil {
		return err
	}

	if err := s.accountRepo.Delete(ctx, current.ID); err != nil {
		return err
	}

	// Rows are gone at this point; leftover objects are only logged.
	for _, key := range keys {
		if err := s.blobConnector.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete object ", key, ": ", err)
		}
	}

	s.logger.Info("Deleted account with id ", current.ID)
	return nil
}

// storedObjectKeys lists the objects owned through the account's profile
func (s *accountService) storedObjectKeys(ctx context.Context, accountID uint) ([]string, error) {
	profile, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var keys []string
	if profile.Photo != "" {
		keys = append(keys, profile.Photo)
	}

	images, err := s.pokemonImageRepo.List(ctx, &pokemonimages.PokemonImageQuery{ProfileID: profile.ID})
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		if image.HasFile() {
			keys = append(keys, blobs.ObjectKey(s.pokemonImageDir, image.FileName))
		}
	}
	return keys, nil
}

func (s *accountService) newSession(account *accounts.Account) (*accounts.Session, error) {
	token, err := s.tokenManager.GenerateJWT(account.Identity())
	if err != nil {
		return nil, err
	}
	return &accounts.Session{Account: account, AccessToken: token}, nil
}
