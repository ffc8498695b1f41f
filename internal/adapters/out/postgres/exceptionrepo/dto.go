// Package exceptionrepo provides data transfer objects and mapping functions
// for shipment exception persistence.
package exceptionrepo

import (
	"time"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure for persisting exception
// aggregates. Resolution columns stay NULL until the exception leaves the
// pending state.
type ExceptionDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FranchiseID       uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID        uuid.UUID `gorm:"type:uuid;index"`
	ExceptionType     string    `gorm:"column:exception_type"`
	Description       string
	Status            string  `gorm:"index"`
	ResolutionNotes   *string `gorm:"column:resolution_notes"`
	NewShipmentStatus *string `gorm:"column:new_shipment_status"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for exception entities.
func (ExceptionDTO) TableName() string {
	return "shipment_exceptions"
}

// fromDomain converts an exception aggregate to its database representation.
func fromDomain(aggregate *exception.Exception) ExceptionDTO {
	var notes *string
	if aggregate.ResolutionNotes() != "" {
		n := aggregate.ResolutionNotes()
		notes = &n
	}

	var newStatus *string
	if s := aggregate.NewShipmentStatus(); s != nil {
		str := s.String()
		newStatus = &str
	}

	return ExceptionDTO{
		ID:                aggregate.ID().Bytes(),
		FranchiseID:       aggregate.Tenant().FranchiseID().Bytes(),
		ShipmentID:        aggregate.ShipmentID().Bytes(),
		ExceptionType:     aggregate.ExceptionType().String(),
		Description:       aggregate.Description(),
		Status:            aggregate.Status().String(),
		ResolutionNotes:   notes,
		NewShipmentStatus: newStatus,
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an exception aggregate via RestoreException.
func toDomain(dto ExceptionDTO) (*exception.Exception, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	franchiseID, err := kernel.UUIDFromBytes(dto.FranchiseID[:])
	if err != nil {
		return nil, err
	}
	tenant, err := kernel.NewTenant(franchiseID)
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	exceptionType, err := exception.TypeFromString(dto.ExceptionType)
	if err != nil {
		return nil, err
	}

	status, err := exception.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var notes string
	if dto.ResolutionNotes != nil {
		notes = *dto.ResolutionNotes
	}

	var newStatus *shipment.Status
	if dto.NewShipmentStatus != nil {
		s, statusErr := shipment.StatusFromString(*dto.NewShipmentStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		newStatus = &s
	}

	return exception.RestoreException(
		id,
		tenant,
		shipmentID,
		exceptionType,
		dto.Description,
		status,
		notes,
		newStatus,
		dto.CreatedAt,
	)
}
