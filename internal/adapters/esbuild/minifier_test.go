package esbuild_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glaze/internal/adapters/esbuild"
	"go.trai.ch/glaze/internal/core/domain"
)

func TestMinifier_Minify(t *testing.T) {
	src := `
// Adds two numbers.
function add(first, second) {
    var total = first + second;
    return total;
}
console.log(add(1, 2));
`
	file := &domain.File{Path: "/js/_b.js", Base: "/js", Contents: []byte(src)}

	out, err := esbuild.NewMinifier().Minify(t.Context(), file)
	require.NoError(t, err)

	assert.Less(t, len(out), len(src))
	assert.NotContains(t, string(out), "Adds two numbers")
	assert.NotContains(t, string(out), "total")
	assert.Contains(t, string(out), "console.log(")
}

func TestMinifier_Deterministic(t *testing.T) {
	file := &domain.File{Path: "/js/_c.js", Contents: []byte("let a = [1, 2, 3].map(function (x) { return x * 2; });")}
	m := esbuild.NewMinifier()

	first, err := m.Minify(t.Context(), file)
	require.NoError(t, err)
	second, err := m.Minify(t.Context(), file)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMinifier_SyntaxError(t *testing.T) {
	file := &domain.File{Path: "/js/_broken.js", Contents: []byte("function ( {")}

	_, err := esbuild.NewMinifier().Minify(t.Context(), file)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrScriptMinifyFailed.Error())
}

func TestMinifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := esbuild.NewMinifier().Minify(ctx, &domain.File{Path: "a.js"})

	assert.ErrorIs(t, err, context.Canceled)
}
