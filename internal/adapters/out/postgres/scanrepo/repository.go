package scanrepo

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormScanRepository implements ports.ScanRepository using GORM. Rows are
// insert-only; deduplication rests on the database unique index so that two
// devices scanning the same parcel at once cannot both succeed.
type GormScanRepository struct {
	db *gorm.DB
}

// NewGormScanRepository creates a new GORM scan event repository.
func NewGormScanRepository(db *gorm.DB) *GormScanRepository {
	return &GormScanRepository{db: db}
}

// Add persists a scan event.
func (r *GormScanRepository) Add(ctx context.Context, event scan.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("%s scan for %s at hub %s already recorded",
					event.ScanType(), event.ShipmentCN(), event.HubID()), err)
		}
		return err
	}

	return nil
}

// Has reports whether a scan of the given type exists for the consignment
// number at the hub.
func (r *GormScanRepository) Has(
	ctx context.Context,
	tenant kernel.Tenant,
	cn shipment.ConsignmentNumber,
	hubID kernel.UUID,
	scanType scan.Type,
) (bool, error) {
	if err := errors.Join(tenant.Validate(), cn.Validate(), hubID.Validate(), scanType.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ScanEventDTO{}).
		Where("franchise_id = ? AND shipment_cn = ? AND hub_id = ? AND scan_type = ?",
			tenant.FranchiseID().Bytes(), cn.String(), hubID.Bytes(), scanType.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// LastOutScan returns the most recent OUT scan for the consignment number.
func (r *GormScanRepository) LastOutScan(
	ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber,
) (scan.Event, error) {
	if err := errors.Join(tenant.Validate(), cn.Validate()); err != nil {
		return scan.Event{}, err
	}

	var dto ScanEventDTO
	err := r.db.WithContext(ctx).
		Where("franchise_id = ? AND shipment_cn = ? AND scan_type = ?",
			tenant.FranchiseID().Bytes(), cn.String(), scan.Out.String()).
		Order("occurred_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scan.Event{}, errs.NewObjectNotFoundError("out_scan", cn.String())
		}
		return scan.Event{}, err
	}

	return toDomain(dto)
}
