package manifestrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormManifestRepository implements ports.ManifestRepository using GORM.
type GormManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManifestRepository creates a new GORM manifest repository.
func NewGormManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormManifestRepository {
	return &GormManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manifest to the database.
func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
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

// Update saves an existing manifest to the database.
func (r *GormManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ManifestDTO{}).
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

// Get retrieves a manifest by ID within the tenant.
func (r *GormManifestRepository) Get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*manifest.Manifest, error) {
	return r.get(ctx, tenant, id, false)
}

// GetForUpdate retrieves a manifest by ID and holds a row lock until the
// surrounding transaction completes. Close and remanifest read through
// this, serializing concurrent total and status writes.
func (r *GormManifestRepository) GetForUpdate(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*manifest.Manifest, error) {
	return r.get(ctx, tenant, id, true)
}

func (r *GormManifestRepository) get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID, forUpdate bool,
) (*manifest.Manifest, error) {
	if err := errors.Join(tenant.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ManifestDTO
	err := tx.First(&dto, "id = ? AND franchise_id = ?", id.Bytes(), tenant.FranchiseID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddRemoval appends one audit row for a detached shipment.
func (r *GormManifestRepository) AddRemoval(ctx context.Context, removal manifest.Removal) error {
	if err := removal.Validate(); err != nil {
		return err
	}

	dto := removalFromDomain(removal)
	return r.db.WithContext(ctx).Create(&dto).Error
}
