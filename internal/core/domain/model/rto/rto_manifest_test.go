package rto_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
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

func newInitiatedManifest(t *testing.T) *rto.Manifest {
	t.Helper()
	m, err := rto.NewManifest(
		kernel.NewUUID(), testTenant(t), rto.DeliveryFailed,
		kernel.NewUUID(), kernel.NewUUID(), "third attempt failed",
	)
	require.NoError(t, err)
	return m
}

func TestReasonFromString(t *testing.T) {
	for _, wire := range []string{
		"DELIVERY_FAILED", "ADDRESS_UNSERVICEABLE", "DAMAGED_PARCEL",
		"CUSTOMER_REFUSED", "PAYMENT_ISSUE",
	} {
		r, err := rto.ReasonFromString(wire)
		require.NoError(t, err, wire)
		assert.Equal(t, wire, r.String())
	}

	_, err := rto.ReasonFromString("BECAUSE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewManifest(t *testing.T) {
	t.Run("starts INITIATED and empty with generated number", func(t *testing.T) {
		m := newInitiatedManifest(t)

		assert.Equal(t, rto.Initiated, m.Status())
		assert.Zero(t, m.ShipmentsCount())
		assert.Equal(t, rto.DeliveryFailed, m.Reason())
		assert.Equal(t, "third attempt failed", m.Notes())
		assert.Regexp(t, `^RTO-[0-9]{8}-[0-9]{6}$`, m.Number())
	})

	t.Run("requires both hub ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := rto.NewManifest(
			kernel.NewUUID(), testTenant(t), rto.DamagedParcel,
			zero, kernel.NewUUID(), "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = rto.NewManifest(
			kernel.NewUUID(), testTenant(t), rto.DamagedParcel,
			kernel.NewUUID(), zero, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown reason", func(t *testing.T) {
		_, err := rto.NewManifest(
			kernel.NewUUID(), testTenant(t), rto.ReasonUnknown,
			kernel.NewUUID(), kernel.NewUUID(), "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestManifest_AddShipment(t *testing.T) {
	m := newInitiatedManifest(t)

	require.NoError(t, m.AddShipment())
	require.NoError(t, m.AddShipment())
	assert.Equal(t, 2, m.ShipmentsCount())

	require.NoError(t, m.Complete())
	require.ErrorIs(t, m.AddShipment(), errs.ErrConflict)
}

func TestManifest_Complete(t *testing.T) {
	t.Run("initiated batch completes to RETURNED", func(t *testing.T) {
		m := newInitiatedManifest(t)
		require.NoError(t, m.AddShipment())

		require.NoError(t, m.Complete())

		assert.Equal(t, rto.Returned, m.Status())
		// arrival does not touch member shipments
		assert.Equal(t, 1, m.ShipmentsCount())
	})

	t.Run("double complete conflicts", func(t *testing.T) {
		m := newInitiatedManifest(t)
		require.NoError(t, m.Complete())
		require.ErrorIs(t, m.Complete(), errs.ErrConflict)
	})
}

func TestManifest_Resolve(t *testing.T) {
	m := newInitiatedManifest(t)

	require.ErrorIs(t, m.Resolve(), errs.ErrConflict)

	require.NoError(t, m.Complete())
	require.NoError(t, m.Resolve())
	assert.Equal(t, rto.Resolved, m.Status())

	require.ErrorIs(t, m.Resolve(), errs.ErrConflict)
}

func TestManifest_Validate(t *testing.T) {
	var zero rto.Manifest
	require.ErrorIs(t, zero.Validate(), rto.ErrRTOManifestIsNotConstructed)
	require.NoError(t, newInitiatedManifest(t).Validate())
}

func TestRestoreManifest(t *testing.T) {
	original := newInitiatedManifest(t)
	require.NoError(t, original.AddShipment())

	restored, err := rto.RestoreManifest(
		original.ID(), original.Tenant(), original.Number(), original.Reason(),
		original.OriginHubID(), original.ReturnHubID(), original.Notes(),
		original.Status(), original.ShipmentsCount(),
	)

	require.NoError(t, err)
	assert.True(t, restored.ID().IsEqual(original.ID()))
	assert.Equal(t, original.ShipmentsCount(), restored.ShipmentsCount())
	assert.Equal(t, rto.Initiated, restored.Status())

	_, err = rto.RestoreManifest(
		original.ID(), original.Tenant(), "", original.Reason(),
		original.OriginHubID(), original.ReturnHubID(), "",
		original.Status(), -1,
	)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
