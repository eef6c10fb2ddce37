package domain

import (
	"fmt"
	"strings"
)

type OrderState string

const (
	OrderStateNew       OrderState = "NEW"
	OrderStateConfirmed OrderState = "CONFIRMED"
	OrderStateReady     OrderState = "READY"
	OrderStateDelivered OrderState = "DELIVERED"
	OrderStateProblem   OrderState = "PROBLEM"
	OrderStateCancelled OrderState = "CANCELLED"
)

var orderStates = []OrderState{
	OrderStateNew,
	OrderStateConfirmed,
	OrderStateReady,
	OrderStateDelivered,
	OrderStateProblem,
	OrderStateCancelled,
}

// transitions lists the states reachable from each state, besides the state itself.
var transitions = map[OrderState][]OrderState{
	OrderStateNew:       {OrderStateConfirmed, OrderStateProblem, OrderStateCancelled},
	OrderStateConfirmed: {OrderStateReady, OrderStateProblem, OrderStateCancelled},
	OrderStateReady:     {OrderStateDelivered, OrderStateProblem},
	OrderStateProblem:   {OrderStateConfirmed, OrderStateReady, OrderStateCancelled},
	OrderStateDelivered: {},
	OrderStateCancelled: {},
}

func OrderStates() []OrderState {
	return append([]OrderState(nil), orderStates...)
}

func ParseOrderState(s string) (OrderState, error) {
	st := OrderState(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := transitions[st]; !ok {
		return "", NewValidationError("state", fmt.Errorf("unknown order state %q", s))
	}
	return st, nil
}

// DisplayName returns the state name as shown to users, e.g. "Ready".
func (s OrderState) DisplayName() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func (s OrderState) CanTransitionTo(next OrderState) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	if s == next {
		return true
	}
	for _, a := range allowed {
		if a == next {
			return true
		}
	}
	return false
}

func (s OrderState) IsTerminal() bool {
	return len(transitions[s]) == 0
}
