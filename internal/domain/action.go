package domain

import "fmt"

type ActionKind string

const (
	ActionCompletionGenerate ActionKind = "completion:generate"
	ActionSync               ActionKind = "sync"
)

func ActionKinds() []ActionKind {
	return []ActionKind{ActionCompletionGenerate, ActionSync}
}

func (k ActionKind) String() string {
	return string(k)
}

func (k ActionKind) Valid() bool {
	switch k {
	case ActionCompletionGenerate, ActionSync:
		return true
	default:
		return false
	}
}

func ParseActionKind(raw string) (ActionKind, error) {
	kind := ActionKind(raw)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
	}

	return kind, nil
}

// ActionMessage is the unit carried from a sender to the handler registered for
// Action. Data is opaque to the registry.
type ActionMessage struct {
	Action ActionKind `json:"action"`
	Data   string     `json:"data"`
}

func NewActionMessage(action ActionKind, data string) ActionMessage {
	return ActionMessage{Action: action, Data: data}
}
