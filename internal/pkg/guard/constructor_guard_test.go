package guard_test

import (
	"errors"
	"testing"

	"courierhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		want := errors.New("command not constructed")

		err := g.Validate(want)

		require.Error(t, err)
		assert.Equal(t, want, err)
	})

	t.Run("zero value with nil falls back to default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type manifestNumber struct {
		value string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("manifestNumber must be created via constructor")

	constructed := manifestNumber{value: "MAN-20260831-000001", guard: guard.NewConstructorGuard()}
	require.NoError(t, constructed.guard.Validate(errNotConstructed))

	var zero manifestNumber
	require.ErrorIs(t, zero.guard.Validate(errNotConstructed), errNotConstructed)
}
