package controller

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// CallScheduled is emitted for every call of a scheduled batch, in call order.
type CallScheduled struct {
	ID          common.Hash
	Index       int
	Target      common.Address
	Selector    types.Selector
	Calldata    []types.Word
	Predecessor common.Hash
	Delay       uint64
}

func (CallScheduled) EventName() string { return "CallScheduled" }

// OperationScheduled follows the CallScheduled events of a batch.
type OperationScheduled struct {
	ID          common.Hash
	Predecessor common.Hash
	Delay       uint64
	ReadyAt     uint64
	Calls       int
}

func (OperationScheduled) EventName() string { return "OperationScheduled" }

// CallExecuted is emitted for every call of an executed batch, in call order.
type CallExecuted struct {
	ID       common.Hash
	Index    int
	Target   common.Address
	Selector types.Selector
	Calldata []types.Word
}

func (CallExecuted) EventName() string { return "CallExecuted" }

// OperationExecuted follows the CallExecuted events of a batch.
type OperationExecuted struct {
	ID common.Hash
}

func (OperationExecuted) EventName() string { return "OperationExecuted" }

type Cancelled struct {
	ID common.Hash
}

func (Cancelled) EventName() string { return "Cancelled" }

type MinDelayChange struct {
	OldDuration uint64
	NewDuration uint64
}

func (MinDelayChange) EventName() string { return "MinDelayChange" }
