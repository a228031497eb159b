// Package accesscontrol implements a hierarchical role based permission store.
//
// Every role has an admin role whose members may grant and revoke it. Roles that never had their
// admin set are administered by types.DefaultAdminRole. Admin resolution is a single hop, so
// cycles between roles are legal.
package accesscontrol

import (
	"bytes"
	"context"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/journal"
	"github.com/smartcontractkit/timelock/sdk"
	sdkerrors "github.com/smartcontractkit/timelock/sdk/errors"
	"github.com/smartcontractkit/timelock/types"
)

// RenounceForSelfReason is the reason given when an account tries to renounce a role on behalf of
// another.
const RenounceForSelfReason = "AccessControl: can only renounce roles for self"

type roleRecord struct {
	admin   types.Role
	members map[common.Address]struct{}
}

// RoleStore holds role membership and role admins. Mutations are recorded in a journal together
// with the events they emit.
//
// RoleStore is not safe for concurrent use.
type RoleStore struct {
	address    common.Address
	journal    *journal.Journal
	roles      map[types.Role]*roleRecord
	privileged types.Role
}

// NewRoleStore creates an empty store. Events are attributed to address. If j is nil the store
// records into a journal of its own.
func NewRoleStore(address common.Address, j *journal.Journal) *RoleStore {
	if j == nil {
		j = journal.New()
	}

	return &RoleStore{
		address: address,
		journal: j,
		roles:      make(map[types.Role]*roleRecord),
		privileged: types.DefaultAdminRole,
	}
}

// Journal returns the journal the store records into.
func (s *RoleStore) Journal() *journal.Journal {
	return s.journal
}

// HasRole reports whether account is a member of role.
func (s *RoleStore) HasRole(role types.Role, account common.Address) bool {
	r, ok := s.roles[role]
	if !ok {
		return false
	}
	_, ok = r.members[account]

	return ok
}

// GetRoleAdmin returns the admin role of role.
func (s *RoleStore) GetRoleAdmin(role types.Role) types.Role {
	if r, ok := s.roles[role]; ok {
		return r.admin
	}

	return types.DefaultAdminRole
}

// GetRoleMembers returns the members of role in ascending address order.
func (s *RoleStore) GetRoleMembers(role types.Role) []common.Address {
	r, ok := s.roles[role]
	if !ok {
		return []common.Address{}
	}

	members := make([]common.Address, 0, len(r.members))
	for m := range r.members {
		members = append(members, m)
	}
	slices.SortFunc(members, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	return members
}

// GetRoleMemberCount returns the number of members of role.
func (s *RoleStore) GetRoleMemberCount(role types.Role) int {
	if r, ok := s.roles[role]; ok {
		return len(r.members)
	}

	return 0
}

// CheckRole returns an authorization error if account is not a member of role.
func (s *RoleStore) CheckRole(role types.Role, account common.Address) error {
	if !s.HasRole(role, account) {
		return sdkerrors.NewMissingRoleError(account, role)
	}

	return nil
}

// GrantRole adds account to role. The caller must hold the admin role of role. Granting a role
// the account already holds is a no-op and emits nothing.
func (s *RoleStore) GrantRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	if err := s.CheckRole(s.GetRoleAdmin(role), caller); err != nil {
		sdk.LoggerFrom(ctx).Debugf("grant of role %s to %s rejected: %v", role.Hex(), account.Hex(), err)
		return err
	}
	s.grant(role, account, caller)

	return nil
}

// RevokeRole removes account from role. The caller must hold the admin role of role. Revoking a
// role the account does not hold is a no-op and emits nothing.
func (s *RoleStore) RevokeRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	if err := s.CheckRole(s.GetRoleAdmin(role), caller); err != nil {
		sdk.LoggerFrom(ctx).Debugf("revoke of role %s from %s rejected: %v", role.Hex(), account.Hex(), err)
		return err
	}
	s.revoke(role, account, caller)

	return nil
}

// RenounceRole removes the caller from role. account must equal caller.
func (s *RoleStore) RenounceRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	if account != caller {
		sdk.LoggerFrom(ctx).Debugf("renounce of role %s by %s for %s rejected", role.Hex(), caller.Hex(), account.Hex())
		return sdkerrors.NewAuthorizationError(caller, RenounceForSelfReason)
	}
	s.revoke(role, account, caller)

	return nil
}

// SetRoleAdmin changes the admin of role. Only the store's own address and members of the
// privileged role may call it. The privilege does not follow role admins, so no admin change
// can take it away.
func (s *RoleStore) SetRoleAdmin(ctx context.Context, caller common.Address, role types.Role, admin types.Role) error {
	if caller != s.address {
		if err := s.CheckRole(s.privileged, caller); err != nil {
			sdk.LoggerFrom(ctx).Debugf("admin change of role %s rejected: %v", role.Hex(), err)
			return err
		}
	}
	s.SetupRoleAdmin(role, admin)

	return nil
}

// SetupPrivilegedRole sets the role whose members may call SetRoleAdmin. It defaults to
// DefaultAdminRole. Meant for initial wiring.
func (s *RoleStore) SetupPrivilegedRole(role types.Role) {
	s.privileged = role
}

// PrivilegedRole returns the role whose members may call SetRoleAdmin.
func (s *RoleStore) PrivilegedRole() types.Role {
	return s.privileged
}

// SetupRole grants role to account without checking the sender. Meant for initial wiring.
func (s *RoleStore) SetupRole(role types.Role, account common.Address) {
	s.grant(role, account, s.address)
}

// SetupRoleAdmin sets the admin of role without checking the sender. Meant for initial wiring.
func (s *RoleStore) SetupRoleAdmin(role types.Role, admin types.Role) {
	r := s.record(role)
	prev := r.admin
	r.admin = admin
	s.journal.Append(journal.EntryFunc(func() { r.admin = prev }))
	s.journal.AddLog(s.address, RoleAdminChanged{
		Role:              role,
		PreviousAdminRole: prev,
		NewAdminRole:      admin,
	})
}

func (s *RoleStore) grant(role types.Role, account, sender common.Address) {
	if s.HasRole(role, account) {
		return
	}

	r := s.record(role)
	r.members[account] = struct{}{}
	s.journal.Append(journal.EntryFunc(func() { delete(r.members, account) }))
	s.journal.AddLog(s.address, RoleGranted{Role: role, Account: account, Sender: sender})
}

func (s *RoleStore) revoke(role types.Role, account, sender common.Address) {
	if !s.HasRole(role, account) {
		return
	}

	r := s.roles[role]
	delete(r.members, account)
	s.journal.Append(journal.EntryFunc(func() { r.members[account] = struct{}{} }))
	s.journal.AddLog(s.address, RoleRevoked{Role: role, Account: account, Sender: sender})
}

// record returns the record of role, creating it on first use. Lazily created records are
// indistinguishable from absent ones, so their creation is not journaled.
func (s *RoleStore) record(role types.Role) *roleRecord {
	r, ok := s.roles[role]
	if !ok {
		r = &roleRecord{
			admin:   types.DefaultAdminRole,
			members: make(map[common.Address]struct{}),
		}
		s.roles[role] = r
	}

	return r
}
