package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence/models"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based AccountRepository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (accounts.AccountRepository, error) {
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) Create(ctx context.Context, account *accounts.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	// pick up the generated id and timestamps
	*account = *model.ToDomain()

	r.logger.Info("Created account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) List(ctx context.Context) ([]*accounts.Account, error) {
	var modelList []*models.AccountModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	domainList := make([]*accounts.Account, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAccountRepository) first(ctx context.Context, query interface{}, args ...interface{}) (*accounts.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAccountRepository) GetByID(ctx context.Context, id uint) (*accounts.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormAccountRepository) GetByUsername(ctx context.Context, username string) (*accounts.Account, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *gormAccountRepository) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *gormAccountRepository) Read(ctx context.Context, query *accounts.AccountQuery) (*accounts.Account, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var model models.AccountModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AccountModel{})

	if query.ID != 0 {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Username != "" {
		dbQuery = dbQuery.Where("username = ?", query.Username)
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where("email = ?", query.Email)
	}

	if err := dbQuery.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAccountRepository) isAvailable(ctx context.Context, column, value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s availability: %w", column, err)
	}
	return count == 0, nil
}

func (r *gormAccountRepository) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return r.isAvailable(ctx, "username", username)
}

func (r *gormAccountRepository) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	return r.isAvailable(ctx, "email", email)
}

// Update writes only the columns of the given field groups, so concurrent
// updates of other groups on the same account are not overwritten.
func (r *gormAccountRepository) Update(ctx context.Context, account *accounts.Account, fields ...accounts.AccountField) error {
	if len(fields) == 0 {
		return errors.New("no account fields to update")
	}
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	columns, err := model.Columns(fields...)
	if err != nil {
		return err
	}
	now := r.db.NowFunc()
	columns["updated_at"] = now

	result := r.db.WithContext(ctx).Model(&models.AccountModel{}).Where("id = ?", account.ID).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return accounts.ErrAccountNotFound
	}

	account.UpdatedAt = now

	r.logger.Info("Updated ", fields, " of account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.AccountModel
		if err := tx.Where("id = ?", id).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return accounts.ErrAccountNotFound
			}
			return err
		}

		profileIDs := tx.Model(&models.ProfileModel{}).Select("id").Where("account_id = ?", id)
		if err := tx.Where("profile_id IN (?)", profileIDs).Delete(&models.PokemonImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete pokemon images: %w", err)
		}
		if err := tx.Where("account_id = ?", id).Delete(&models.ProfileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := tx.Delete(&account).Error; err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	r.logger.Info("Deleted account with id ", id)
	return nil
}
