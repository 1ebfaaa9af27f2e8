package grid

import (
	"fmt"

	"github.com/HARPLab/human-ai-value-alignment/types"
)

// GridEnvironment is a bounded grid world with one goal cell.
// Reaching the goal gives +1 and ends the episode, every other move -0.5.
type GridEnvironment struct {
	Height int
	Width  int
	Goal   Position
	CurPos *Position
}

var _ types.Environment = &GridEnvironment{}

func NewGridEnvironment(height, width int, goal Position) *GridEnvironment {
	return &GridEnvironment{
		Height: height,
		Width:  width,
		Goal:   goal,
		CurPos: &Position{0, 0, false},
	}
}

func (g *GridEnvironment) Reset() types.State {
	g.CurPos = &Position{0, 0, false}
	return g.CurPos
}

func (g *GridEnvironment) Step(a types.Action) (types.State, float64) {
	movement := a.(*Movement)
	newPos := &Position{I: g.CurPos.I, J: g.CurPos.J}

	switch movement.Direction {
	case "Up":
		newPos.I = min(g.Height-1, g.CurPos.I+1)
	case "Down":
		newPos.I = max(0, g.CurPos.I-1)
	case "Left":
		newPos.J = max(0, g.CurPos.J-1)
	case "Right":
		newPos.J = min(g.Width-1, g.CurPos.J+1)
	}
	g.CurPos = newPos

	if newPos.I == g.Goal.I && newPos.J == g.Goal.J {
		newPos.AtGoal = true
		return newPos, 1
	}
	return newPos, -0.5
}

type Position struct {
	I      int
	J      int
	AtGoal bool
}

var _ types.State = &Position{}

func (p *Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.I, p.J)
}

func (p *Position) Actions() []types.Action {
	if p.AtGoal {
		return nil
	}
	return AllMovements
}

type Movement struct {
	Direction string
}

var _ types.Action = &Movement{}

func (m *Movement) Hash() string {
	return m.Direction
}

var (
	MovementUp    = &Movement{"Up"}
	MovementDown  = &Movement{"Down"}
	MovementLeft  = &Movement{"Left"}
	MovementRight = &Movement{"Right"}

	AllMovements = []types.Action{
		MovementUp,
		MovementDown,
		MovementLeft,
		MovementRight,
	}
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
