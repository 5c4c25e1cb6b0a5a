package script

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeedit/internal/editor"
	"shapeedit/internal/guides"
	"shapeedit/internal/log"
	"shapeedit/internal/shape"
	"shapeedit/pkg/geometry"
)

const scenario = `
# two rectangles sharing a left edge
arm rectangle
down 10 10
move 60 60
up

arm rectangle
down 10 80
move 70 130
up

# grab A at (5,5) from its corner and drag right by 15
down 15 15
move 30 15
up
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader("arm star\n\n  DOWN 1.5 -2\nmove 3 4\nup\n"))
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Line: 1, Action: Arm, Kind: "star"},
		{Line: 3, Action: Down, Point: geometry.NewPoint2D(1.5, -2)},
		{Line: 4, Action: Move, Point: geometry.NewPoint2D(3, 4)},
		{Line: 5, Action: Up},
	}, steps)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"jump 1 2", `line 1: unknown action "jump"`},
		{"up\narm", "line 2: arm takes a shape kind"},
		{"down 1", "line 1: down takes x and y"},
		{"move x 2", "line 1: bad x"},
		{"move 1 y", "line 1: bad y"},
		{"up now", "line 1: up takes no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestRunScenario(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)
	steps, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	e := editor.New()
	Run(ctx, e, steps)

	shapes := e.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, shape.Shape{
		Kind:  shape.Rectangle,
		Start: geometry.NewPoint2D(25, 10),
		End:   geometry.NewPoint2D(75, 60),
	}, shapes[0])
	assert.Equal(t, editor.ModeIdle, e.Mode())

	// A moved off x=10, so nothing lines up any more.
	assert.False(t, e.Guides().Any())
}

func TestRunSkipsUnknownKinds(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)
	steps, err := Parse(strings.NewReader("arm hexagon\ndown 1 1\nmove 5 5\nup\n"))
	require.NoError(t, err)

	e := editor.New()
	Run(ctx, e, steps)
	assert.Empty(t, e.Shapes())
	assert.Equal(t, guides.Set{}, e.Guides())
}
