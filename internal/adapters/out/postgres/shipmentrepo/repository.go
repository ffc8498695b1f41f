package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("shipment %s already exists", aggregate.CN()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. All columns are written,
// including a cleared manifest_id.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
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

// Get retrieves a shipment by ID within the tenant.
func (r *GormShipmentRepository) Get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*shipment.Shipment, error) {
	return r.get(ctx, tenant, id, false)
}

// GetForUpdate retrieves a shipment by ID and holds a row lock until the
// surrounding transaction completes.
func (r *GormShipmentRepository) GetForUpdate(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID,
) (*shipment.Shipment, error) {
	return r.get(ctx, tenant, id, true)
}

func (r *GormShipmentRepository) get(
	ctx context.Context, tenant kernel.Tenant, id kernel.UUID, forUpdate bool,
) (*shipment.Shipment, error) {
	if err := errors.Join(tenant.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShipmentDTO
	err := tx.First(&dto, "id = ? AND franchise_id = ?", id.Bytes(), tenant.FranchiseID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCN retrieves a shipment by consignment number within the tenant.
func (r *GormShipmentRepository) GetByCN(
	ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber,
) (*shipment.Shipment, error) {
	return r.getByCN(ctx, tenant, cn, false)
}

// GetByCNForUpdate retrieves a shipment by consignment number and holds a
// row lock until the surrounding transaction completes.
func (r *GormShipmentRepository) GetByCNForUpdate(
	ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber,
) (*shipment.Shipment, error) {
	return r.getByCN(ctx, tenant, cn, true)
}

func (r *GormShipmentRepository) getByCN(
	ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber, forUpdate bool,
) (*shipment.Shipment, error) {
	if err := errors.Join(tenant.Validate(), cn.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShipmentDTO
	err := tx.First(&dto, "cn = ? AND franchise_id = ?", cn.String(), tenant.FranchiseID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cn", cn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForUpdate retrieves and row-locks every listed shipment. A missing
// identifier fails the whole batch.
func (r *GormShipmentRepository) GetAllForUpdate(
	ctx context.Context, tenant kernel.Tenant, ids []kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").
		Find(&dtos, "id IN ? AND franchise_id = ?", rawIDs, tenant.FranchiseID().Bytes()).Error
	if err != nil {
		return nil, err
	}

	found := make(map[kernel.UUID]*shipment.Shipment, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		found[aggregate.ID()] = aggregate
	}

	shipments := make([]*shipment.Shipment, 0, len(ids))
	for _, id := range ids {
		aggregate, ok := found[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("shipment_id", id.String())
		}
		shipments = append(shipments, aggregate)
	}

	return shipments, nil
}

// Delete removes a shipment row within the tenant.
func (r *GormShipmentRepository) Delete(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) error {
	if err := errors.Join(tenant.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND franchise_id = ?", id.Bytes(), tenant.FranchiseID().Bytes()).
		Delete(&ShipmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment_id", id.String())
	}

	return nil
}
