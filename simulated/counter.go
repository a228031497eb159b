package simulated

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
	"github.com/smartcontractkit/timelock/journal"
	"github.com/smartcontractkit/timelock/types"
)

var (
	IncreaseCountSelector = types.NewSelector("increaseCount")
	GetCountSelector      = types.NewSelector("getCount")
)

// ErrCountOverflow is returned when an increase would overflow the counter.
var ErrCountOverflow = errors.New("Counter: count overflow")

// CountIncreased is emitted by Counter on every increase.
type CountIncreased struct {
	Sender common.Address
	Amount uint64
	Count  uint64
}

func (CountIncreased) EventName() string { return "CountIncreased" }

// Counter is a minimal target contract holding a single counter.
type Counter struct {
	address common.Address
	journal *journal.Journal
	count   uint64
}

// NewCounter creates a counter at address recording into the journal of chain.
func NewCounter(address common.Address, chain *Chain) *Counter {
	return &Counter{address: address, journal: chain.Journal()}
}

// Count returns the current value.
func (c *Counter) Count() uint64 {
	return c.count
}

// Call implements Contract. increaseCount takes exactly one amount word; getCount takes none.
func (c *Counter) Call(_ context.Context, caller common.Address, call types.Call) ([]types.Word, error) {
	switch call.Selector {
	case IncreaseCountSelector:
		if len(call.Calldata) != 1 {
			return nil, fmt.Errorf("Counter: increaseCount expects 1 argument, got %d", len(call.Calldata))
		}
		amount, err := safecast.WordToUint64(&call.Calldata[0])
		if err != nil {
			return nil, fmt.Errorf("Counter: %w", err)
		}

		return nil, c.increase(caller, amount)
	case GetCountSelector:
		if len(call.Calldata) != 0 {
			return nil, fmt.Errorf("Counter: getCount expects no arguments, got %d", len(call.Calldata))
		}

		return []types.Word{types.WordFromUint64(c.count)}, nil
	default:
		return nil, fmt.Errorf("Counter: unknown entry point %s", call.Selector)
	}
}

func (c *Counter) increase(sender common.Address, amount uint64) error {
	next, carry := bits.Add64(c.count, amount, 0)
	if carry != 0 {
		return ErrCountOverflow
	}

	prev := c.count
	c.count = next
	c.journal.Append(journal.EntryFunc(func() { c.count = prev }))
	c.journal.AddLog(c.address, CountIncreased{Sender: sender, Amount: amount, Count: next})

	return nil
}
