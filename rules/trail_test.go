package rules

import (
	"testing"

	"github.com/battlesnakeio/holosnake/layout"
	"github.com/stretchr/testify/require"
)

func TestTrailTrim(t *testing.T) {
	tr := &Trail{}
	tr.Start(layout.Point{X: 0, Y: 0})
	tr.Extend(layout.Point{X: 10, Y: 0}, 10)
	tr.Extend(layout.Point{X: 30, Y: 0}, 20)
	tr.Extend(layout.Point{X: 60, Y: 0}, 30)
	require.Equal(t, 60.0, tr.Length)

	require.Equal(t, 0, tr.Trim(60))
	require.Equal(t, 1, tr.Trim(50))
	require.Equal(t, 50.0, tr.Length)
	require.Equal(t, []layout.Point{{X: 10, Y: 0}, {X: 30, Y: 0}, {X: 60, Y: 0}}, tr.Points)

	require.Equal(t, 2, tr.Trim(5))
	require.Equal(t, []layout.Point{{X: 60, Y: 0}}, tr.Points)
	require.Empty(t, tr.Lengths)
	require.Equal(t, 0.0, tr.Length)

	head, ok := tr.Head()
	require.True(t, ok)
	require.Equal(t, layout.Point{X: 60, Y: 0}, head)
}

func TestTrailReset(t *testing.T) {
	tr := &Trail{}
	tr.Start(layout.Point{X: 1, Y: 1})
	tr.Extend(layout.Point{X: 2, Y: 2}, 1.4)
	tr.Reset()

	_, ok := tr.Head()
	require.False(t, ok)
	require.Equal(t, 0.0, tr.Length)
	require.Equal(t, 0, tr.Trim(0))
}
