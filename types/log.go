package types

import "github.com/ethereum/go-ethereum/common"

// Event is a typed notification emitted by a component when its state changes.
type Event interface {
	// EventName returns the name of the event, e.g. "RoleGranted".
	EventName() string
}

// Log is an event together with the address of the component that emitted it.
type Log struct {
	Address common.Address
	Event   Event
}

// Name returns the name of the wrapped event.
func (l Log) Name() string {
	return l.Event.EventName()
}
