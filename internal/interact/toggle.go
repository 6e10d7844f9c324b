package interact

import "log/slog"

// ToggleState is the state of a two-state fixture.
type ToggleState uint8

const (
	Closed ToggleState = iota
	Open
)

func (s ToggleState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Visual cue names fired on each transition.
const (
	CueOpen  = "open"
	CueClose = "close"
)

// Animator plays a named visual transition.
type Animator interface {
	SetTrigger(name string)
}

// AnimatorFunc adapts a plain function to Animator.
type AnimatorFunc func(name string)

func (f AnimatorFunc) SetTrigger(name string) { f(name) }

// Toggle is a door, fridge or stall that flips between Closed and Open on
// every interaction. State lives only in memory.
type Toggle struct {
	prompt   string
	state    ToggleState
	animator Animator
	logger   *slog.Logger
}

// NewToggle creates a Closed toggle. A nil animator is reported once and
// the toggle still changes state without a visual cue.
func NewToggle(prompt string, animator Animator, logger *slog.Logger) *Toggle {
	if logger == nil {
		logger = slog.Default()
	}
	if animator == nil {
		logger.Error("toggle has no animator assigned", "prompt", prompt)
	}
	return &Toggle{prompt: prompt, animator: animator, logger: logger}
}

// State returns the current state.
func (t *Toggle) State() ToggleState { return t.state }

func (t *Toggle) Descriptor() Descriptor {
	return Descriptor{
		Kind:   "toggle",
		Prompt: t.prompt,
		Labels: map[Action]string{Primary: t.prompt},
	}
}

// Interact flips the state and always succeeds.
func (t *Toggle) Interact(Interactor) bool {
	cue := CueOpen
	if t.state == Open {
		cue = CueClose
		t.state = Closed
	} else {
		t.state = Open
	}
	t.logger.Debug("toggle", "prompt", t.prompt, "state", t.state.String())
	if t.animator != nil {
		t.animator.SetTrigger(cue)
	}
	return true
}
