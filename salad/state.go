package salad

import (
	"fmt"

	"github.com/HARPLab/human-ai-value-alignment/types"
)

// Stage of the preparation process
type Stage uint8

const (
	// StagePrep works through the recipe items one at a time
	StagePrep Stage = iota
	// StageMix once every item has been combined
	StageMix
	// StageServe after mixing
	StageServe
	// StageDone is terminal
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StagePrep:
		return "Prep"
	case StageMix:
		return "Mix"
	case StageServe:
		return "Serve"
	case StageDone:
		return "Done"
	}
	return "Unknown"
}

// PrepState is the observed state of the preparation process: which
// ingredient is on the board, which actions have been applied to it, the
// overall stage and how many constraints have been violated so far
type PrepState struct {
	// Index of the current ingredient in the preparation queue
	Index int
	// Ingredient name, empty past the preparation stage
	Ingredient string
	Type       IngredientType
	PrepMethod string
	// Taken is the bit-vector of actions applied to the current ingredient
	Taken uint16
	Stage Stage
	// Violations raised so far (count, capped at 15 in the encoding)
	Violations int
}

var _ types.State = &PrepState{}

const (
	indexShift      = 16
	violationsShift = 22
	stageShift      = 26
	maxEncodedIndex = 63
)

// Encode packs the state into a bit-vector for tabular lookup:
// bits 0-15 the taken-action mask, 16-21 the ingredient index,
// 22-25 the violation count (capped), 26-27 the stage.
// Injective for recipes of up to 64 items.
func (s *PrepState) Encode() uint32 {
	index := s.Index
	if index > maxEncodedIndex {
		index = maxEncodedIndex
	}
	violations := s.Violations
	if violations > 15 {
		violations = 15
	}
	return uint32(s.Taken) |
		uint32(index)<<indexShift |
		uint32(violations)<<violationsShift |
		uint32(s.Stage)<<stageShift
}

// Hash keys the tabular policies with the packed encoding
func (s *PrepState) Hash() string {
	return fmt.Sprintf("0x%08x", s.Encode())
}

func (s *PrepState) String() string {
	return fmt.Sprintf("(%s, %s, %#x, %d)", s.Stage, s.Ingredient, s.Taken, s.Violations)
}

// Actions available from this state. During preparation the policy sees
// the full preparation action set and must learn the checklist order;
// after the last Combine only Mix and Serve remain. Terminal states
// offer nothing.
func (s *PrepState) Actions() []types.Action {
	switch s.Stage {
	case StagePrep:
		return PrepActions
	case StageMix, StageServe:
		return FinishActions
	}
	return nil
}

// Applied reports whether the action has already been taken on the
// current ingredient
func (s *PrepState) Applied(a *PrepAction) bool {
	return s.Taken&a.bit != 0
}

// NextFlowAction is the first action of the ingredient's checklist that
// has not been applied yet. Returns false past the preparation stage or
// when the checklist is exhausted.
func (s *PrepState) NextFlowAction() (*PrepAction, bool) {
	if s.Stage != StagePrep {
		return nil, false
	}
	prep, _ := ActionByName(s.PrepMethod)
	for _, a := range prepFlow(s.Type, prep) {
		if !s.Applied(a) {
			return a, true
		}
	}
	return nil, false
}
