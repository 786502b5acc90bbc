package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence/models"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (profiles.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) Create(ctx context.Context, profile *profiles.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Omit("PokemonImages").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	*profile = *model.ToDomain()

	r.logger.Info("Created profile with id ", profile.ID, " for account ", profile.AccountID)
	return nil
}

func (r *gormProfileRepository) List(ctx context.Context, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	if query == nil {
		query = &profiles.ProfileQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProfileModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProfileModel{})

	if query.FirstName != "" {
		dbQuery = dbQuery.Where("first_name = ?", query.FirstName)
	}
	if query.LastName != "" {
		dbQuery = dbQuery.Where("last_name = ?", query.LastName)
	}

	dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder, "id"))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	return profilesToDomain(modelList), nil
}

func (r *gormProfileRepository) first(ctx context.Context, query interface{}, args ...interface{}) (*profiles.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiles.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) GetByID(ctx context.Context, id uint) (*profiles.Profile, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormProfileRepository) GetByAccountID(ctx context.Context, accountID uint) (*profiles.Profile, error) {
	return r.first(ctx, "account_id = ?", accountID)
}

func (r *gormProfileRepository) GetByFirstName(ctx context.Context, firstName string) ([]*profiles.Profile, error) {
	return r.List(ctx, &profiles.ProfileQuery{FirstName: firstName})
}

func (r *gormProfileRepository) GetByLastName(ctx context.Context, lastName string) ([]*profiles.Profile, error) {
	return r.List(ctx, &profiles.ProfileQuery{LastName: lastName})
}

func (r *gormProfileRepository) Update(ctx context.Context, profile *profiles.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Omit("PokemonImages").Save(model).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	profile.UpdatedAt = model.UpdatedAt

	r.logger.Info("Updated profile with id ", profile.ID)
	return nil
}

func profilesToDomain(modelList []*models.ProfileModel) []*profiles.Profile {
	domainList := make([]*profiles.Profile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}

// orderClause builds an ORDER BY from already validated column and direction
func orderClause(sortBy, sortOrder, fallback string) string {
	if sortBy == "" {
		sortBy = fallback
	}
	if sortOrder == "" {
		sortOrder = "asc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
