package exceptionrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExceptionRepository implements ports.ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new exception to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing exception to the database.
func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ExceptionDTO{}).
		Where("id = ? AND franchise_id = ?", dto.ID, dto.FranchiseID).
		Select("*").
		Omit("id", "franchise_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an exception by ID within the tenant.
func (r *GormExceptionRepository) Get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*exception.Exception, error) {
	return r.get(ctx, tenant, id, false)
}

// GetForUpdate retrieves an exception by ID and holds a row lock until the
// surrounding transaction completes.
func (r *GormExceptionRepository) GetForUpdate(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*exception.Exception, error) {
	return r.get(ctx, tenant, id, true)
}

func (r *GormExceptionRepository) get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID, forUpdate bool,
) (*exception.Exception, error) {
	if err := errors.Join(tenant.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ExceptionDTO
	err := tx.First(&dto, "id = ? AND franchise_id = ?", id.Bytes(), tenant.FranchiseID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
