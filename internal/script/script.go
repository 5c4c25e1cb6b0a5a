// Package script parses and replays recorded pointer gestures.
//
// A script has one step per line:
//
//	arm rectangle
//	down 10 10
//	move 60 60
//	up
//
// Blank lines and lines starting with '#' are ignored.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shapeedit/internal/editor"
	"shapeedit/pkg/geometry"
)

// Action is the kind of a script step.
type Action int

const (
	Arm Action = iota
	Down
	Move
	Up
)

var actionNames = map[string]Action{
	"arm":  Arm,
	"down": Down,
	"move": Move,
	"up":   Up,
}

// Step is one parsed line.
type Step struct {
	Line   int
	Action Action
	Kind   string
	Point  geometry.Point2D
}

// Parse reads steps from r.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		step, err := parseLine(line, strings.Fields(text))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func parseLine(line int, fields []string) (Step, error) {
	action, ok := actionNames[strings.ToLower(fields[0])]
	if !ok {
		return Step{}, fmt.Errorf("line %d: unknown action %q", line, fields[0])
	}
	step := Step{Line: line, Action: action}
	switch action {
	case Arm:
		if len(fields) != 2 {
			return Step{}, fmt.Errorf("line %d: arm takes a shape kind", line)
		}
		step.Kind = fields[1]
	case Down, Move:
		if len(fields) != 3 {
			return Step{}, fmt.Errorf("line %d: %s takes x and y", line, fields[0])
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Step{}, fmt.Errorf("line %d: bad x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Step{}, fmt.Errorf("line %d: bad y: %w", line, err)
		}
		step.Point = geometry.NewPoint2D(x, y)
	case Up:
		if len(fields) != 1 {
			return Step{}, fmt.Errorf("line %d: up takes no arguments", line)
		}
	}
	return step, nil
}

// Run replays steps against e. Unknown shape kinds are skipped the same way
// the toolbar skips them.
func Run(ctx context.Context, e *editor.Editor, steps []Step) {
	for _, s := range steps {
		switch s.Action {
		case Arm:
			e.ArmByName(ctx, s.Kind)
		case Down:
			e.PointerDown(ctx, s.Point)
		case Move:
			e.PointerMove(ctx, s.Point)
		case Up:
			e.PointerUp(ctx)
		}
	}
}
