// Package controller implements the timelock: a role gated controller that runs batches of calls
// after a mandatory delay.
//
// Proposers schedule batches, executors run them once the delay has passed and cancellers may
// drop them while they are pending. Operations are identified by the hash of their content, so
// only the identifier and its ready timestamp are stored. Every mutation is atomic: on error the
// roles, the timestamps, the minimum delay and the emitted events are restored from the journal.
package controller

import (
	"context"
	"fmt"
	"math/bits"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/timelock/accesscontrol"
	"github.com/smartcontractkit/timelock/hasher"
	"github.com/smartcontractkit/timelock/journal"
	"github.com/smartcontractkit/timelock/sdk"
	sdkerrors "github.com/smartcontractkit/timelock/sdk/errors"
	"github.com/smartcontractkit/timelock/types"
)

// Config holds the deployment parameters of a controller.
type Config struct {
	// Address of the controller. Calls made by the controller are sent from this address.
	Address common.Address `validate:"required"`

	// Deployer is granted TIMELOCK_ADMIN_ROLE next to the controller itself.
	Deployer common.Address `validate:"required"`

	// MinDelay is the initial minimum delay in seconds.
	MinDelay uint64

	// Proposers are granted PROPOSER_ROLE and CANCELLER_ROLE.
	Proposers []common.Address

	// Executors are granted EXECUTOR_ROLE.
	Executors []common.Address

	Clock        sdk.Clock        `validate:"required"`
	CallExecutor sdk.CallExecutor `validate:"required"`
}

type options struct {
	journal   *journal.Journal
	executors []common.Address
}

// Option configures a controller.
type Option func(*options)

// WithJournal makes the controller record its changes in j instead of a journal of its own. The
// owner of j is then responsible for calling Finalise. Sharing a journal with the targets of the
// controller's calls lets a failed batch revert their side effects as well.
func WithJournal(j *journal.Journal) Option {
	return func(opts *options) {
		opts.journal = j
	}
}

// WithExecutors grants EXECUTOR_ROLE to the given addresses in addition to Config.Executors.
func WithExecutors(executors ...common.Address) Option {
	return func(opts *options) {
		opts.executors = append(opts.executors, executors...)
	}
}

// Controller is the timelock state machine.
//
// Controller is not safe for concurrent use. Share it between goroutines through a host that
// serializes transactions, such as simulated.Chain.
type Controller struct {
	address    common.Address
	roles      *accesscontrol.RoleStore
	timestamps map[common.Hash]uint64
	minDelay   uint64

	clock    sdk.Clock
	executor sdk.CallExecutor

	journal     *journal.Journal
	ownsJournal bool
	depth       int
	executing   map[common.Hash]struct{}
}

// New creates a controller and wires its roles: TIMELOCK_ADMIN_ROLE to the controller and the
// deployer, PROPOSER_ROLE and CANCELLER_ROLE to every proposer, EXECUTOR_ROLE to every executor.
// TIMELOCK_ADMIN_ROLE administers all of them and may change role admins. DEFAULT_ADMIN_ROLE
// stays its own admin, so nobody can grant it.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid controller config: %w", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	j := o.journal
	ownsJournal := j == nil
	if ownsJournal {
		j = journal.New()
	}

	c := &Controller{
		address:     cfg.Address,
		roles:       accesscontrol.NewRoleStore(cfg.Address, j),
		timestamps:  make(map[common.Hash]uint64),
		clock:       cfg.Clock,
		executor:    cfg.CallExecutor,
		journal:     j,
		ownsJournal: ownsJournal,
		executing:   make(map[common.Hash]struct{}),
	}

	c.roles.SetupPrivilegedRole(types.TimelockAdminRole)
	for _, role := range []types.Role{
		types.TimelockAdminRole,
		types.ProposerRole,
		types.CancellerRole,
		types.ExecutorRole,
	} {
		c.roles.SetupRoleAdmin(role, types.TimelockAdminRole)
	}

	c.roles.SetupRole(types.TimelockAdminRole, cfg.Address)
	c.roles.SetupRole(types.TimelockAdminRole, cfg.Deployer)
	for _, p := range cfg.Proposers {
		c.roles.SetupRole(types.ProposerRole, p)
		c.roles.SetupRole(types.CancellerRole, p)
	}
	for _, e := range append(slices.Clone(cfg.Executors), o.executors...) {
		c.roles.SetupRole(types.ExecutorRole, e)
	}

	c.setMinDelay(cfg.MinDelay)

	if ownsJournal {
		j.Finalise()
	}

	return c, nil
}

// Address returns the address of the controller.
func (c *Controller) Address() common.Address {
	return c.address
}

// Journal returns the journal the controller records into.
func (c *Controller) Journal() *journal.Journal {
	return c.journal
}

// HashOperation returns the identifier of the batch calls scheduled with predecessor and salt.
func (c *Controller) HashOperation(calls []types.Call, predecessor common.Hash, salt common.Hash) common.Hash {
	return hasher.HashOperation(calls, predecessor, salt)
}

// IsOperation reports whether id is pending, ready or done.
func (c *Controller) IsOperation(id common.Hash) bool {
	return c.GetTimestamp(id) > 0
}

// IsOperationPending reports whether id is scheduled and not yet executed. Ready operations are
// pending too.
func (c *Controller) IsOperationPending(id common.Hash) bool {
	ts := c.GetTimestamp(id)

	return ts > 0 && ts != types.DoneTimestamp
}

// IsOperationReady reports whether id is pending and its ready timestamp has passed.
func (c *Controller) IsOperationReady(id common.Hash) bool {
	return c.IsOperationPending(id) && c.GetTimestamp(id) <= c.clock.Timestamp()
}

// IsOperationDone reports whether id was executed.
func (c *Controller) IsOperationDone(id common.Hash) bool {
	return c.GetTimestamp(id) == types.DoneTimestamp
}

// GetTimestamp returns the ready timestamp of id: 0 if unset and types.DoneTimestamp once
// executed.
func (c *Controller) GetTimestamp(id common.Hash) uint64 {
	return c.timestamps[id]
}

// GetMinDelay returns the minimum delay in seconds accepted by Schedule.
func (c *Controller) GetMinDelay() uint64 {
	return c.minDelay
}

// Schedule queues calls to become executable delay seconds from now. The caller must hold
// PROPOSER_ROLE. The returned identifier is the one Execute and Cancel operate on.
func (c *Controller) Schedule(
	ctx context.Context,
	caller common.Address,
	calls []types.Call,
	predecessor common.Hash,
	salt common.Hash,
	delay uint64,
) (common.Hash, error) {
	id := hasher.HashOperation(calls, predecessor, salt)

	err := c.atomic(ctx, "schedule", func(lggr sdk.Logger) error {
		if err := c.roles.CheckRole(types.ProposerRole, caller); err != nil {
			return err
		}
		if delay < c.minDelay {
			return fmt.Errorf("%w: delay %d is below minimum %d", ErrInsufficientDelay, delay, c.minDelay)
		}
		if c.IsOperation(id) {
			return fmt.Errorf("%w: %s", ErrAlreadyScheduled, id.Hex())
		}

		now := c.clock.Timestamp()
		readyAt, carry := bits.Add64(now, delay, 0)
		if carry != 0 {
			return fmt.Errorf("%w: %d + %d", ErrTimestampOverflow, now, delay)
		}
		if readyAt <= types.DoneTimestamp {
			return fmt.Errorf("%w: %d", ErrReservedTimestamp, readyAt)
		}

		c.setTimestamp(id, readyAt)
		for i, call := range calls {
			c.journal.AddLog(c.address, CallScheduled{
				ID:          id,
				Index:       i,
				Target:      call.Target,
				Selector:    call.Selector,
				Calldata:    slices.Clone(call.Calldata),
				Predecessor: predecessor,
				Delay:       delay,
			})
		}
		c.journal.AddLog(c.address, OperationScheduled{
			ID:          id,
			Predecessor: predecessor,
			Delay:       delay,
			ReadyAt:     readyAt,
			Calls:       len(calls),
		})

		lggr.Infof("Scheduled operation %s with %d calls, ready at %d", id.Hex(), len(calls), readyAt)

		return nil
	})
	if err != nil {
		return common.Hash{}, err
	}

	return id, nil
}

// Execute runs a ready operation. The caller must hold EXECUTOR_ROLE and the predecessor, if
// any, must be done. Calls are invoked in order from the controller's address; if one fails the
// whole execution is reverted and the operation stays ready.
func (c *Controller) Execute(
	ctx context.Context,
	caller common.Address,
	calls []types.Call,
	predecessor common.Hash,
	salt common.Hash,
) error {
	id := hasher.HashOperation(calls, predecessor, salt)

	return c.atomic(ctx, "execute", func(lggr sdk.Logger) error {
		if err := c.roles.CheckRole(types.ExecutorRole, caller); err != nil {
			return err
		}
		if _, ok := c.executing[id]; ok {
			return fmt.Errorf("%w: %s", ErrAlreadyExecuting, id.Hex())
		}
		if !c.IsOperationReady(id) {
			return fmt.Errorf("%w: %s", ErrNotReady, id.Hex())
		}
		if predecessor != (common.Hash{}) && !c.IsOperationDone(predecessor) {
			return fmt.Errorf("%w: %s", ErrMissingDependency, predecessor.Hex())
		}

		c.executing[id] = struct{}{}
		defer delete(c.executing, id)

		for i, call := range calls {
			if _, err := c.executor.Invoke(ctx, c.address, call); err != nil {
				return sdkerrors.NewExecutionError(CallRevertedReason, i, call, err)
			}
		}

		for i, call := range calls {
			c.journal.AddLog(c.address, CallExecuted{
				ID:       id,
				Index:    i,
				Target:   call.Target,
				Selector: call.Selector,
				Calldata: slices.Clone(call.Calldata),
			})
		}
		c.setTimestamp(id, types.DoneTimestamp)
		c.journal.AddLog(c.address, OperationExecuted{ID: id})

		lggr.Infof("Executed operation %s", id.Hex())

		return nil
	})
}

// Cancel drops a pending operation. The caller must hold CANCELLER_ROLE. A cancelled batch may
// be scheduled again with the same salt.
func (c *Controller) Cancel(ctx context.Context, caller common.Address, id common.Hash) error {
	return c.atomic(ctx, "cancel", func(lggr sdk.Logger) error {
		if err := c.roles.CheckRole(types.CancellerRole, caller); err != nil {
			return err
		}
		if !c.IsOperationPending(id) {
			return fmt.Errorf("%w: %s", ErrNotCancellable, id.Hex())
		}
		if _, ok := c.executing[id]; ok {
			return fmt.Errorf("%w: %s", ErrAlreadyExecuting, id.Hex())
		}

		c.setTimestamp(id, 0)
		c.journal.AddLog(c.address, Cancelled{ID: id})

		lggr.Infof("Cancelled operation %s", id.Hex())

		return nil
	})
}

// UpdateDelay changes the minimum delay. Only the controller itself may call it, so a change has
// to be scheduled and executed as an operation targeting the controller.
func (c *Controller) UpdateDelay(ctx context.Context, caller common.Address, newDelay uint64) error {
	return c.atomic(ctx, "updateDelay", func(lggr sdk.Logger) error {
		if caller != c.address {
			return sdkerrors.NewAuthorizationError(caller, CallerNotTimelockReason)
		}

		old := c.minDelay
		c.setMinDelay(newDelay)

		lggr.Infof("Minimum delay changed from %d to %d", old, newDelay)

		return nil
	})
}

// HasRole reports whether account holds role.
func (c *Controller) HasRole(role types.Role, account common.Address) bool {
	return c.roles.HasRole(role, account)
}

// GetRoleAdmin returns the admin role of role.
func (c *Controller) GetRoleAdmin(role types.Role) types.Role {
	return c.roles.GetRoleAdmin(role)
}

// GetRoleMembers returns the holders of role in ascending address order.
func (c *Controller) GetRoleMembers(role types.Role) []common.Address {
	return c.roles.GetRoleMembers(role)
}

// GetRoleMemberCount returns the number of holders of role.
func (c *Controller) GetRoleMemberCount(role types.Role) int {
	return c.roles.GetRoleMemberCount(role)
}

// GrantRole grants role to account. The caller must hold the admin role of role.
func (c *Controller) GrantRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	return c.atomic(ctx, "grantRole", func(sdk.Logger) error {
		return c.roles.GrantRole(ctx, caller, role, account)
	})
}

// RevokeRole revokes role from account. The caller must hold the admin role of role.
func (c *Controller) RevokeRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	return c.atomic(ctx, "revokeRole", func(sdk.Logger) error {
		return c.roles.RevokeRole(ctx, caller, role, account)
	})
}

// RenounceRole drops role from the caller, who must be account.
func (c *Controller) RenounceRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	return c.atomic(ctx, "renounceRole", func(sdk.Logger) error {
		return c.roles.RenounceRole(ctx, caller, role, account)
	})
}

// SetRoleAdmin changes the admin of role. The caller must be the controller itself or hold
// TIMELOCK_ADMIN_ROLE, whatever the current role admins are.
func (c *Controller) SetRoleAdmin(ctx context.Context, caller common.Address, role types.Role, admin types.Role) error {
	return c.atomic(ctx, "setRoleAdmin", func(sdk.Logger) error {
		return c.roles.SetRoleAdmin(ctx, caller, role, admin)
	})
}

// atomic runs fn inside a journal snapshot. The snapshot is reverted if fn fails. Changes are
// committed once the outermost call returns, unless the journal belongs to someone else.
func (c *Controller) atomic(ctx context.Context, op string, fn func(lggr sdk.Logger) error) error {
	lggr := sdk.LoggerFrom(ctx)

	snap := c.journal.Snapshot()
	c.depth++
	err := fn(lggr)
	c.depth--

	if err != nil {
		c.journal.RevertToSnapshot(snap)
		lggr.Debugf("Timelock %s rejected: %v", op, err)

		return err
	}

	if c.depth == 0 && c.ownsJournal {
		c.journal.Finalise()
	}

	return nil
}

func (c *Controller) setTimestamp(id common.Hash, ts uint64) {
	prev, existed := c.timestamps[id]
	if ts == 0 {
		delete(c.timestamps, id)
	} else {
		c.timestamps[id] = ts
	}

	c.journal.Append(journal.EntryFunc(func() {
		if existed {
			c.timestamps[id] = prev
		} else {
			delete(c.timestamps, id)
		}
	}))
}

func (c *Controller) setMinDelay(delay uint64) {
	prev := c.minDelay
	c.minDelay = delay
	c.journal.Append(journal.EntryFunc(func() { c.minDelay = prev }))
	c.journal.AddLog(c.address, MinDelayChange{OldDuration: prev, NewDuration: delay})
}
