package rtorepo

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormRTORepository implements ports.RTORepository using GORM.
type GormRTORepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRTORepository creates a new GORM return-to-origin repository.
func NewGormRTORepository(db *gorm.DB, tracker aggregateTracker) *GormRTORepository {
	return &GormRTORepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new RTO batch to the database.
func (r *GormRTORepository) Add(ctx context.Context, aggregate *rto.Manifest) error {
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

// Update saves an existing RTO batch to the database.
func (r *GormRTORepository) Update(ctx context.Context, aggregate *rto.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RTOManifestDTO{}).
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

// Get retrieves an RTO batch by ID within the tenant.
func (r *GormRTORepository) Get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*rto.Manifest, error) {
	return r.get(ctx, tenant, id, false)
}

// GetForUpdate retrieves an RTO batch by ID and holds a row lock until the
// surrounding transaction completes.
func (r *GormRTORepository) GetForUpdate(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*rto.Manifest, error) {
	return r.get(ctx, tenant, id, true)
}

func (r *GormRTORepository) get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID, forUpdate bool,
) (*rto.Manifest, error) {
	if err := errors.Join(tenant.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RTOManifestDTO
	err := tx.First(&dto, "id = ? AND franchise_id = ?", id.Bytes(), tenant.FranchiseID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rto_manifest_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddMember appends one membership row.
func (r *GormRTORepository) AddMember(
	ctx context.Context, tenant kernel.Tenant, rtoID kernel.UUID, shipmentID kernel.UUID,
) error {
	if err := errors.Join(tenant.Validate(), rtoID.Validate(), shipmentID.Validate()); err != nil {
		return err
	}

	dto := RTOMemberDTO{
		RTOManifestID: rtoID.Bytes(),
		ShipmentID:    shipmentID.Bytes(),
		FranchiseID:   tenant.FranchiseID().Bytes(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("shipment %s is already part of batch %s", shipmentID, rtoID), err)
		}
		return err
	}

	return nil
}
