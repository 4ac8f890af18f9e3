package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/model"
)

// SupporterRepository implements persistence.SupporterRepository using GORM
type SupporterRepository struct {
	db              *gorm.DB
	timeouts        QueryBounder
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSupporterRepository creates a new SupporterRepository instance
func NewSupporterRepository(db *gorm.DB, timeouts QueryBounder, logger coreport.Logger) *SupporterRepository {
	return &SupporterRepository{
		db:              db,
		timeouts:        timeouts,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a supporter model to an entity
func (r *SupporterRepository) modelToEntity(m *model.DonationSupporter) *entity.DonationSupporter {
	return &entity.DonationSupporter{
		ID:                    m.ID,
		DisplayName:           m.DisplayName,
		NormalizedName:        m.NormalizedName,
		TotalAmount:           m.TotalAmount,
		DonationCount:         m.DonationCount,
		LastChannel:           entity.Channel(m.LastChannel),
		LastContributionAt:    m.LastContributionAt,
		PublicAcknowledgement: m.PublicAcknowledgement,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ApplyContribution upserts the supporter row for the contribution's
// normalized name as a single INSERT ... ON CONFLICT DO UPDATE statement.
// The increments happen at the SQL level, so concurrent contributions under
// the same name cannot race into a lost update.
//
// The acknowledgement column joins the update set only when the consent is
// explicitly granted or declined; a pending consent leaves the stored flag
// untouched on existing rows.
func (r *SupporterRepository) ApplyContribution(ctx context.Context, c *entity.Contribution, at time.Time) (*entity.DonationSupporter, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	row := model.DonationSupporter{
		DisplayName:           c.DisplayName,
		NormalizedName:        c.NormalizedName,
		TotalAmount:           c.Amount,
		DonationCount:         1,
		LastChannel:           string(c.Channel),
		LastContributionAt:    at,
		PublicAcknowledgement: c.Consent == entity.ConsentGranted,
		CreatedAt:             at,
		UpdatedAt:             at,
	}

	assignments := map[string]interface{}{
		"display_name":         c.DisplayName,
		"total_amount":         gorm.Expr("donation_supporters.total_amount + ?", c.Amount),
		"donation_count":       gorm.Expr("donation_supporters.donation_count + 1"),
		"last_channel":         string(c.Channel),
		"last_contribution_at": at,
		"updated_at":           at,
	}
	if c.Consent.IsExplicit() {
		assignments["public_acknowledgement"] = c.Consent == entity.ConsentGranted
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized_name"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&row)

	if result.Error != nil {
		if r.errorClassifier.IsLockError(result.Error) {
			r.logger.Warn("Supporter row locked by concurrent contribution, upsert failed", map[string]any{
				"normalized_name": c.NormalizedName,
				"error":           result.Error.Error(),
			})
		} else {
			r.logger.Error("Failed to upsert supporter", map[string]any{
				"normalized_name": c.NormalizedName,
				"error":           result.Error.Error(),
			})
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	// Re-read the row: on the conflict branch the increments are applied by
	// the database, not reflected in the inserted struct
	return r.GetByNormalizedName(ctx, c.NormalizedName)
}

// GetByID retrieves a supporter by primary key
func (r *SupporterRepository) GetByID(ctx context.Context, id uint64) (*entity.DonationSupporter, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	var m model.DonationSupporter
	result := r.db.WithContext(ctx).First(&m, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSupporterNotFound
		}
		r.logger.Error("Database error when getting supporter", map[string]any{
			"supporter_id": id,
			"error":        result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&m), nil
}

// GetByNormalizedName retrieves a supporter by the normalized dedup key
func (r *SupporterRepository) GetByNormalizedName(ctx context.Context, normalizedName string) (*entity.DonationSupporter, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	var m model.DonationSupporter
	result := r.db.WithContext(ctx).
		Where("normalized_name = ?", normalizedName).
		First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSupporterNotFound
		}
		r.logger.Error("Database error when getting supporter by normalized name", map[string]any{
			"normalized_name": normalizedName,
			"error":           result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&m), nil
}

// UpdateAcknowledgement sets only the public acknowledgement flag
func (r *SupporterRepository) UpdateAcknowledgement(ctx context.Context, id uint64, granted bool, at time.Time) (*entity.DonationSupporter, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&model.DonationSupporter{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"public_acknowledgement": granted,
			"updated_at":             at,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update supporter acknowledgement", map[string]any{
			"supporter_id": id,
			"error":        result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return nil, errs.ErrSupporterNotFound
	}

	return r.GetByID(ctx, id)
}

// List returns the full supporter set ordered by creation time
func (r *SupporterRepository) List(ctx context.Context) ([]*entity.DonationSupporter, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	var rows []model.DonationSupporter
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows)

	if result.Error != nil {
		r.logger.Error("Database error when listing supporters", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	supporters := make([]*entity.DonationSupporter, 0, len(rows))
	for i := range rows {
		supporters = append(supporters, r.modelToEntity(&rows[i]))
	}

	return supporters, nil
}
