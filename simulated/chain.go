// Package simulated implements an in-memory host chain for timelock controllers and their
// targets.
//
// The chain serializes transactions, keeps a settable clock and routes calls to the contracts
// deployed on it. All contracts share the chain's journal, so a failed transaction reverts the
// state of every contract it touched.
package simulated

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/timelock/journal"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// Contract is a component deployed on a Chain. Call runs the entry point named by call.Selector
// as if sent by caller.
type Contract interface {
	Call(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error)
}

// Chain is a simulated host chain. It implements sdk.Clock and sdk.CallExecutor.
type Chain struct {
	mu      sync.Mutex
	journal *journal.Journal

	timestamp atomic.Uint64

	contractsMu sync.RWMutex
	contracts   map[common.Address]Contract
}

var (
	_ sdk.Clock        = (*Chain)(nil)
	_ sdk.CallExecutor = (*Chain)(nil)
)

// NewChain creates an empty chain whose clock starts at startTime.
func NewChain(startTime uint64) *Chain {
	c := &Chain{
		journal:   journal.New(),
		contracts: make(map[common.Address]Contract),
	}
	c.timestamp.Store(startTime)

	return c
}

// Journal returns the journal shared by the contracts of the chain.
func (c *Chain) Journal() *journal.Journal {
	return c.journal
}

// Timestamp returns the current block timestamp.
func (c *Chain) Timestamp() uint64 {
	return c.timestamp.Load()
}

// SetTimestamp moves the clock to ts. The clock never goes backwards.
func (c *Chain) SetTimestamp(ts uint64) error {
	for {
		cur := c.timestamp.Load()
		if ts < cur {
			return fmt.Errorf("timestamp %d is before current timestamp %d", ts, cur)
		}
		if c.timestamp.CompareAndSwap(cur, ts) {
			return nil
		}
	}
}

// AdvanceTime moves the clock forward by secs seconds and returns the new timestamp.
func (c *Chain) AdvanceTime(secs uint64) (uint64, error) {
	for {
		cur := c.timestamp.Load()
		next, carry := bits.Add64(cur, secs, 0)
		if carry != 0 {
			return 0, fmt.Errorf("advancing timestamp %d by %d overflows", cur, secs)
		}
		if c.timestamp.CompareAndSwap(cur, next) {
			return next, nil
		}
	}
}

// Deploy registers contract at addr.
func (c *Chain) Deploy(addr common.Address, contract Contract) error {
	c.contractsMu.Lock()
	defer c.contractsMu.Unlock()

	if _, ok := c.contracts[addr]; ok {
		return fmt.Errorf("contract already deployed at %s", addr.Hex())
	}
	c.contracts[addr] = contract

	return nil
}

// Contract returns the contract deployed at addr.
func (c *Chain) Contract(addr common.Address) (Contract, bool) {
	c.contractsMu.RLock()
	defer c.contractsMu.RUnlock()

	contract, ok := c.contracts[addr]

	return contract, ok
}

// Invoke routes call to the contract at call.Target. It is meant to be called from within a
// transaction, by Send or by a contract calling another one.
func (c *Chain) Invoke(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error) {
	contract, ok := c.Contract(call.Target)
	if !ok {
		return nil, fmt.Errorf("no contract deployed at %s", call.Target.Hex())
	}

	return contract.Call(ctx, caller, call)
}

// Transact runs fn as a single transaction. Transactions are serialized. If fn fails every change
// it made is reverted, otherwise its events are committed, published to subscribers and returned.
func (c *Chain) Transact(ctx context.Context, fn func(ctx context.Context) error) ([]types.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.journal.Snapshot()
	if err := fn(ctx); err != nil {
		c.journal.RevertToSnapshot(snap)
		sdk.LoggerFrom(ctx).Debugf("Transaction reverted: %v", err)

		return nil, err
	}

	return c.journal.Finalise(), nil
}

// View runs fn while no transaction is in progress.
func (c *Chain) View(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn()
}

// Send submits a transaction from sender calling a single entry point.
func (c *Chain) Send(ctx context.Context, sender common.Address, call types.Call) ([]types.Word, []types.Log, error) {
	var out []types.Word
	logs, err := c.Transact(ctx, func(ctx context.Context) error {
		var err error
		out, err = c.Invoke(ctx, sender, call)

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return out, logs, nil
}

// SubscribeLogs delivers the events of every committed transaction to ch. Deliveries block the
// committing transaction until received.
func (c *Chain) SubscribeLogs(ch chan<- []types.Log) event.Subscription {
	return c.journal.SubscribeLogs(ch)
}

// Account is an externally owned account of the chain.
type Account struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewAccount generates an account with a fresh key.
func NewAccount() (*Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	return &Account{PrivateKey: key}, nil
}

// Address derives the address of the account from its key.
func (a *Account) Address() common.Address {
	return crypto.PubkeyToAddress(a.PrivateKey.PublicKey)
}
