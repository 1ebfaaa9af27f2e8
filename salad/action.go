package salad

import "github.com/HARPLab/human-ai-value-alignment/types"

// PrepAction is one of the preparation actions.
// Each action owns a distinct bit of the state bit-vector.
type PrepAction struct {
	Name string
	bit  uint16
}

var _ types.Action = &PrepAction{}

func (a *PrepAction) Hash() string {
	return a.Name
}

// Bit of the action in the taken-action vector
func (a *PrepAction) Bit() uint16 {
	return a.bit
}

var (
	Measure = &PrepAction{"Measure", 1 << 0}
	Wash    = &PrepAction{"Wash", 1 << 1}
	Chop    = &PrepAction{"Chop", 1 << 2}
	Dice    = &PrepAction{"Dice", 1 << 3}
	Shred   = &PrepAction{"Shred", 1 << 4}
	Crush   = &PrepAction{"Crush", 1 << 5}
	Grind   = &PrepAction{"Grind", 1 << 6}
	Roast   = &PrepAction{"Roast", 1 << 7}
	Combine = &PrepAction{"Combine", 1 << 8}
	Mix     = &PrepAction{"Mix", 1 << 9}
	Serve   = &PrepAction{"Serve", 1 << 10}

	// Actions available while an ingredient is being prepared
	PrepActions = []types.Action{
		Measure, Wash, Chop, Dice, Shred, Crush, Grind, Roast, Combine,
	}
	// Actions available once every ingredient has been combined
	FinishActions = []types.Action{Mix, Serve}

	processingActions = []*PrepAction{Chop, Dice, Shred, Crush, Grind}
)

// Processing reports whether the action cuts, crushes or otherwise
// transforms the ingredient
func (a *PrepAction) Processing() bool {
	for _, p := range processingActions {
		if a == p {
			return true
		}
	}
	return false
}

// ActionByName resolves an action from its name
func ActionByName(name string) (*PrepAction, bool) {
	for _, a := range []*PrepAction{Measure, Wash, Chop, Dice, Shred, Crush, Grind, Roast, Combine, Mix, Serve} {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}
