package exception_test

import (
	"testing"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTenant(t *testing.T) kernel.Tenant {
	t.Helper()
	tenant, err := kernel.NewTenant(kernel.NewUUID())
	require.NoError(t, err)
	return tenant
}

func newPendingException(t *testing.T) *exception.Exception {
	t.Helper()
	e, err := exception.NewException(testTenant(t), kernel.NewUUID(), exception.DamagedParcel, "box crushed in transit")
	require.NoError(t, err)
	return e
}

func TestTypeFromString(t *testing.T) {
	for _, name := range []string{
		"WEIGHT_MISMATCH", "ADDRESS_UNSERVICEABLE", "DELIVERY_FAILED",
		"DAMAGED_PARCEL", "LOST_PARCEL", "CUSTOMER_REFUSED", "PAYMENT_ISSUE",
	} {
		parsed, err := exception.TypeFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, parsed.String())
	}

	_, err := exception.TypeFromString("BAD_MOOD")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewException(t *testing.T) {
	t.Run("starts PENDING", func(t *testing.T) {
		e := newPendingException(t)

		assert.Equal(t, exception.Pending, e.Status())
		assert.Equal(t, exception.DamagedParcel, e.ExceptionType())
		assert.Empty(t, e.ResolutionNotes())
		assert.Nil(t, e.NewShipmentStatus())
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("description required", func(t *testing.T) {
		_, err := exception.NewException(testTenant(t), kernel.NewUUID(), exception.LostParcel, "  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("type must be enumerated", func(t *testing.T) {
		_, err := exception.NewException(testTenant(t), kernel.NewUUID(), exception.TypeUnknown, "something")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestException_Resolve(t *testing.T) {
	t.Run("resolves with notes and new shipment status", func(t *testing.T) {
		e := newPendingException(t)

		require.NoError(t, e.Resolve("damaged, returning to origin", shipment.ReturnToOrigin))

		assert.Equal(t, exception.Resolved, e.Status())
		assert.Equal(t, "damaged, returning to origin", e.ResolutionNotes())
		require.NotNil(t, e.NewShipmentStatus())
		assert.Equal(t, shipment.ReturnToOrigin, *e.NewShipmentStatus())
	})

	t.Run("notes are mandatory", func(t *testing.T) {
		e := newPendingException(t)
		require.ErrorIs(t, e.Resolve("   ", shipment.Created), errs.ErrValueIsRequired)
		assert.Equal(t, exception.Pending, e.Status())
	})

	t.Run("double resolve conflicts", func(t *testing.T) {
		e := newPendingException(t)
		require.NoError(t, e.Resolve("fixed", shipment.Created))
		require.ErrorIs(t, e.Resolve("again", shipment.Created), errs.ErrConflict)
	})
}

func TestException_Escalate(t *testing.T) {
	t.Run("escalates with notes", func(t *testing.T) {
		e := newPendingException(t)

		require.NoError(t, e.Escalate("needs insurance claim"))

		assert.Equal(t, exception.Escalated, e.Status())
		assert.Nil(t, e.NewShipmentStatus(), "escalation never touches the shipment")
	})

	t.Run("notes are mandatory", func(t *testing.T) {
		e := newPendingException(t)
		require.ErrorIs(t, e.Escalate(""), errs.ErrValueIsRequired)
	})

	t.Run("cannot escalate a resolved exception", func(t *testing.T) {
		e := newPendingException(t)
		require.NoError(t, e.Resolve("done", shipment.Created))
		require.ErrorIs(t, e.Escalate("too late"), errs.ErrConflict)
	})
}

func TestException_Validate(t *testing.T) {
	var zero exception.Exception
	require.ErrorIs(t, zero.Validate(), exception.ErrExceptionIsNotConstructed)
	require.NoError(t, newPendingException(t).Validate())
}

func TestRestoreException(t *testing.T) {
	original := newPendingException(t)
	require.NoError(t, original.Resolve("customer located", shipment.Created))

	restored, err := exception.RestoreException(
		original.ID(), original.Tenant(), original.ShipmentID(),
		original.ExceptionType(), original.Description(), original.Status(),
		original.ResolutionNotes(), original.NewShipmentStatus(), original.CreatedAt(),
	)

	require.NoError(t, err)
	assert.Equal(t, exception.Resolved, restored.Status())
	assert.Equal(t, original.ResolutionNotes(), restored.ResolutionNotes())
}
