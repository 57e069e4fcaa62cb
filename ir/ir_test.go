package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/lazy/ir"
)

func TestPublicAPIResolution(t *testing.T) {
	kind, err := ir.Cast.Resolve()
	require.NoError(t, err)
	assert.True(t, kind.Valid())
	assert.Equal(t, "ltc::cast", kind.String())

	// A fresh handle with the same name resolves to the same interned kind.
	h := ir.NewLazyOpKind("ltc::cast")
	again, err := h.Resolve()
	require.NoError(t, err)
	assert.Equal(t, kind, again)
}

func TestPublicAPIRegistry(t *testing.T) {
	a, err := ir.GetOpKind("custom::fused_attention")
	require.NoError(t, err)
	b, err := ir.GetOpKind("custom::fused_attention")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "custom", a.Namespace())
	assert.Equal(t, "fused_attention", a.Op())

	_, err = ir.GetOpKind("not a name")
	require.ErrorIs(t, err, ir.ErrMalformedName)
}

func TestPublicAPIBuiltins(t *testing.T) {
	builtins := ir.Builtins()
	require.Len(t, builtins, 18)
	for _, h := range builtins {
		kind, err := h.Resolve()
		require.NoError(t, err, "builtin %q", h.Name())
		assert.Equal(t, h.Name(), kind.String())
	}
}
