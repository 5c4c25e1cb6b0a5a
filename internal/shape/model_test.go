package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeedit/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func TestCreateStartsWithZeroExtent(t *testing.T) {
	m := NewModel()
	ref := m.Create(Ellipse, pt(12, 34))

	s, ok := m.Get(ref)
	require.True(t, ok)
	assert.Equal(t, Ellipse, s.Kind)
	assert.Equal(t, s.Start, s.End)
	assert.Zero(t, s.Width())
	assert.Zero(t, s.Height())
	assert.Equal(t, 1, m.Len())
}

func TestGrowSetsEndCorner(t *testing.T) {
	m := NewModel()
	ref := m.Create(Rectangle, pt(10, 10))
	m.Grow(ref, pt(60, 40))

	s, _ := m.Get(ref)
	assert.Equal(t, pt(10, 10), s.Start)
	assert.Equal(t, pt(60, 40), s.End)
	assert.Equal(t, 50.0, s.Width())
	assert.Equal(t, 30.0, s.Height())
}

func TestUnknownRefIsIgnored(t *testing.T) {
	m := NewModel()
	m.Create(Rectangle, pt(0, 0))

	assert.NotPanics(t, func() {
		m.Grow(NoRef, pt(1, 1))
		m.Grow(Ref(7), pt(1, 1))
		m.Move(NoRef, 5, 5)
		m.Move(Ref(7), 5, 5)
	})
	_, ok := m.Get(Ref(7))
	assert.False(t, ok)

	s, _ := m.Get(0)
	assert.Equal(t, pt(0, 0), s.End)
}

func TestMovePreservesSize(t *testing.T) {
	deltas := [][2]float64{{0, 0}, {15, 0}, {-3.5, 8.25}, {1e6, -1e6}, {-0.1, -0.1}}
	corners := [][2]geometry.Point2D{
		{pt(10, 10), pt(60, 60)},
		{pt(60, 60), pt(10, 10)},
		{pt(-5, 3), pt(-5, 3)},
		{pt(0.3, 0.7), pt(100.9, -20.1)},
	}
	for _, k := range Kinds() {
		for _, c := range corners {
			for _, d := range deltas {
				m := NewModel()
				ref := m.Create(k, c[0])
				m.Grow(ref, c[1])
				before, _ := m.Get(ref)

				m.Move(ref, d[0], d[1])

				after, _ := m.Get(ref)
				assert.InDelta(t, before.Width(), after.Width(), 1e-6, "%v %v %v", k, c, d)
				assert.InDelta(t, before.Height(), after.Height(), 1e-6, "%v %v %v", k, c, d)
				assert.InDelta(t, before.Start.X+d[0], after.Start.X, 1e-6)
				assert.InDelta(t, before.Start.Y+d[1], after.Start.Y, 1e-6)
			}
		}
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	m := NewModel()
	a := m.Create(Rectangle, pt(10, 10))
	m.Grow(a, pt(60, 60))
	b := m.Create(Rectangle, pt(0, 0))
	m.Grow(b, pt(100, 100))

	ref, ok := m.HitTest(pt(30, 30))
	require.True(t, ok)
	assert.Equal(t, b, ref)

	ref, ok = m.HitTest(pt(200, 200))
	assert.False(t, ok)
	assert.Equal(t, NoRef, ref)
}

func TestHitTestEmptyModel(t *testing.T) {
	_, ok := NewModel().HitTest(pt(1, 1))
	assert.False(t, ok)
}

func TestShapesReturnsCopy(t *testing.T) {
	m := NewModel()
	m.Create(Line, pt(1, 1))
	shapes := m.Shapes()
	shapes[0].Start = pt(99, 99)

	s, _ := m.Get(0)
	assert.Equal(t, pt(1, 1), s.Start)
}
