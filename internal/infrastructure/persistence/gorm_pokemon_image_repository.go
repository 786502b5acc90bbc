package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence/models"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPokemonImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPokemonImageRepository creates a new GORM-based PokemonImageRepository implementation
func NewGormPokemonImageRepository(db *gorm.DB, logger logger.Logger) (pokemonimages.PokemonImageRepository, error) {
	return &gormPokemonImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPokemonImageRepository) Create(ctx context.Context, image *pokemonimages.PokemonImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PokemonImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create pokemon image: %w", err)
	}

	image.CreatedAt = model.CreatedAt
	image.UpdatedAt = model.UpdatedAt

	r.logger.Info("Created pokemon image with id ", image.ID)
	return nil
}

func (r *gormPokemonImageRepository) List(ctx context.Context, query *pokemonimages.PokemonImageQuery) ([]*pokemonimages.PokemonImage, error) {
	if query == nil {
		query = &pokemonimages.PokemonImageQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PokemonImageModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PokemonImageModel{})

	if query.ProfileID != 0 {
		dbQuery = dbQuery.Where("profile_id = ?", query.ProfileID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}

	dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder, "created_at"))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon images: %w", err)
	}

	domainList := make([]*pokemonimages.PokemonImage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPokemonImageRepository) GetByID(ctx context.Context, id string) (*pokemonimages.PokemonImage, error) {
	var model models.PokemonImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pokemonimages.ErrPokemonImageNotFound
		}
		return nil, fmt.Errorf("failed to fetch pokemon image: %w", err)
	}
	return model.ToDomain(), nil
}

// UpdateNickname writes the nickname column only; prediction counters are
// changed exclusively through IncrementPrediction.
func (r *gormPokemonImageRepository) UpdateNickname(ctx context.Context, id, nickname string) error {
	result := r.db.WithContext(ctx).Model(&models.PokemonImageModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"nickname": nickname})
	if result.Error != nil {
		return fmt.Errorf("failed to update pokemon image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pokemonimages.ErrPokemonImageNotFound
	}

	r.logger.Info("Updated nickname of pokemon image with id ", id)
	return nil
}

func (r *gormPokemonImageRepository) IncrementPrediction(ctx context.Context, id, outcome string) error {
	var updates map[string]interface{}
	switch outcome {
	case pokemonimages.PredictionCorrect:
		updates = map[string]interface{}{
			"correct_predicted": gorm.Expr("correct_predicted + ?", 1),
			"win":               gorm.Expr("win + ?", 1),
		}
	case pokemonimages.PredictionWrong:
		updates = map[string]interface{}{
			"wrong_predicted": gorm.Expr("wrong_predicted + ?", 1),
			"loss":            gorm.Expr("loss + ?", 1),
		}
	default:
		return pokemonimages.ErrInvalidPrediction
	}

	result := r.db.WithContext(ctx).Model(&models.PokemonImageModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to record prediction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pokemonimages.ErrPokemonImageNotFound
	}

	r.logger.Info("Recorded ", outcome, " prediction for pokemon image with id ", id)
	return nil
}

func (r *gormPokemonImageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PokemonImageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete pokemon image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pokemonimages.ErrPokemonImageNotFound
	}

	r.logger.Info("Deleted pokemon image with id ", id)
	return nil
}
