package types

// Environment that the RL agent interacts with.
type Environment interface {
	// Reset called at the start of each episode
	Reset() State
	// Step applies the action and returns the next state
	// along with the immediate reward
	Step(Action) (State, float64)
}

// State of the system that RL policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	// A terminal state returns no actions
	Actions() []Action
}

// An Action that the RL policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}
