package payment

import (
	"fmt"

	"github.com/magabrotheeeer/course-portal/internal/models"
)

// State состояние платёжной сессии.
type State string

// Состояния платёжной сессии.
const (
	StateIdle                  State = "idle"
	StateAwaitingGatewayResult State = "awaiting_gateway_result"
	StateSucceeded             State = "succeeded"
	StateFailed                State = "failed"
	StateCancelled             State = "cancelled"
)

// Event событие, переводящее сессию в новое состояние.
type Event string

// События платёжной сессии.
const (
	EventOpen    Event = "open"
	EventSucceed Event = "succeed"
	EventFail    Event = "fail"
	EventCancel  Event = "cancel"
)

var transitions = map[State]map[Event]State{
	StateIdle: {
		EventOpen: StateAwaitingGatewayResult,
	},
	StateAwaitingGatewayResult: {
		EventSucceed: StateSucceeded,
		EventFail:    StateFailed,
		EventCancel:  StateCancelled,
	},
}

// TransitionError перехода из состояния по событию не существует.
type TransitionError struct {
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition from state '%s' for event '%s'", e.From, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return models.ErrInvalidTransition
}

// Next возвращает состояние после события или *TransitionError.
func Next(from State, ev Event) (State, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, &TransitionError{From: from, Event: ev}
}

// Terminal сообщает, что из состояния переходов нет.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}
