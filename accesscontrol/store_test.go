package accesscontrol

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/timelock/sdk/errors"
	"github.com/smartcontractkit/timelock/types"
)

var (
	storeAddr = common.HexToAddress("0xacce55")
	admin     = common.HexToAddress("0xad")
	alice     = common.HexToAddress("0xa11ce")
	bob       = common.HexToAddress("0xb0b")

	defaultRole = types.DefaultAdminRole
	otherRole   = types.NewRole("OTHER_ROLE")
)

func newTestStore(t *testing.T) *RoleStore {
	t.Helper()

	s := NewRoleStore(storeAddr, nil)
	s.SetupRole(defaultRole, admin)
	s.Journal().Finalise()

	return s
}

func TestRoleStore_GrantRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))
	assert.True(t, s.HasRole(defaultRole, alice))

	want := []types.Log{{Address: storeAddr, Event: RoleGranted{Role: defaultRole, Account: alice, Sender: admin}}}
	if diff := cmp.Diff(want, s.Journal().Logs()); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestRoleStore_GrantRole_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))
	s.Journal().Finalise()

	require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))
	assert.True(t, s.HasRole(defaultRole, alice))
	assert.Empty(t, s.Journal().Logs())
}

func TestRoleStore_GrantRole_Unauthorized(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	err := s.GrantRole(ctx, bob, defaultRole, alice)
	require.EqualError(t, err, "AccessControl: caller is missing role "+defaultRole.Hex())

	var authErr *sdkerrors.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, bob, authErr.Account)
	assert.Equal(t, defaultRole, authErr.Role)
	assert.False(t, s.HasRole(defaultRole, alice))
	assert.Empty(t, s.Journal().Logs())
}

func TestRoleStore_RevokeRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))
	s.Journal().Finalise()

	require.NoError(t, s.RevokeRole(ctx, admin, defaultRole, alice))
	assert.False(t, s.HasRole(defaultRole, alice))

	want := []types.Log{{Address: storeAddr, Event: RoleRevoked{Role: defaultRole, Account: alice, Sender: admin}}}
	if diff := cmp.Diff(want, s.Journal().Logs()); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestRoleStore_RevokeRole_NotGranted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.RevokeRole(ctx, admin, defaultRole, alice))
	assert.False(t, s.HasRole(defaultRole, alice))
	assert.Empty(t, s.Journal().Logs())
}

func TestRoleStore_RevokeRole_Unauthorized(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))

	err := s.RevokeRole(ctx, bob, defaultRole, alice)
	require.EqualError(t, err, "AccessControl: caller is missing role "+defaultRole.Hex())
	assert.True(t, s.HasRole(defaultRole, alice))
}

func TestRoleStore_GrantRevokeInverse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	for range 3 {
		require.NoError(t, s.GrantRole(ctx, admin, otherRole, bob))
		assert.True(t, s.HasRole(otherRole, bob))
		require.NoError(t, s.RevokeRole(ctx, admin, otherRole, bob))
		assert.False(t, s.HasRole(otherRole, bob))
	}
	assert.Len(t, s.Journal().Logs(), 6)
}

func TestRoleStore_RenounceRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		granted  bool
		caller   common.Address
		account  common.Address
		wantErr  string
		wantLogs int
	}{
		{
			name:     "renounce granted role",
			granted:  true,
			caller:   alice,
			account:  alice,
			wantLogs: 1,
		},
		{
			name:    "renounce role not held",
			caller:  alice,
			account: alice,
		},
		{
			name:    "renounce for another account",
			granted: true,
			caller:  admin,
			account: alice,
			wantErr: RenounceForSelfReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := newTestStore(t)
			if tt.granted {
				require.NoError(t, s.GrantRole(ctx, admin, defaultRole, alice))
				s.Journal().Finalise()
			}

			err := s.RenounceRole(ctx, tt.caller, defaultRole, tt.account)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.True(t, s.HasRole(defaultRole, alice))
			} else {
				require.NoError(t, err)
				assert.False(t, s.HasRole(defaultRole, alice))
			}
			assert.Len(t, s.Journal().Logs(), tt.wantLogs)
		})
	}
}

func TestRoleStore_SetRoleAdmin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.GrantRole(ctx, admin, otherRole, alice))
	require.NoError(t, s.SetRoleAdmin(ctx, admin, defaultRole, otherRole))
	assert.Equal(t, otherRole, s.GetRoleAdmin(defaultRole))

	want := RoleAdminChanged{Role: defaultRole, PreviousAdminRole: defaultRole, NewAdminRole: otherRole}
	logs := s.Journal().Logs()
	require.NotEmpty(t, logs)
	assert.Equal(t, want, logs[len(logs)-1].Event)

	// The new admin may grant while the previous one no longer can.
	require.NoError(t, s.GrantRole(ctx, alice, defaultRole, bob))
	require.Error(t, s.RevokeRole(ctx, admin, defaultRole, bob))
	assert.True(t, s.HasRole(defaultRole, bob))
}

func TestRoleStore_SetRoleAdmin_Unauthorized(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	err := s.SetRoleAdmin(ctx, alice, otherRole, otherRole)
	require.EqualError(t, err, "AccessControl: caller is missing role "+defaultRole.Hex())
	assert.Equal(t, defaultRole, s.GetRoleAdmin(otherRole))
}

func TestRoleStore_SetRoleAdmin_Privileged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	s.SetupPrivilegedRole(otherRole)
	s.SetupRole(otherRole, alice)
	assert.Equal(t, otherRole, s.PrivilegedRole())

	// Holding the admin of DefaultAdminRole is not enough once another role is privileged.
	err := s.SetRoleAdmin(ctx, admin, otherRole, defaultRole)
	require.EqualError(t, err, "AccessControl: caller is missing role "+otherRole.Hex())

	// Changing the admin of the privileged role does not revoke the privilege.
	require.NoError(t, s.SetRoleAdmin(ctx, alice, otherRole, types.NewRole("X")))
	require.NoError(t, s.SetRoleAdmin(ctx, alice, defaultRole, types.NewRole("X")))
	require.NoError(t, s.SetRoleAdmin(ctx, alice, otherRole, defaultRole))

	// The store's own address is always privileged.
	require.NoError(t, s.SetRoleAdmin(ctx, storeAddr, defaultRole, otherRole))
	assert.Equal(t, otherRole, s.GetRoleAdmin(defaultRole))
}

func TestRoleStore_AdminCycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	roleA := types.NewRole("A")
	roleB := types.NewRole("B")

	s.SetupRoleAdmin(roleA, roleB)
	s.SetupRoleAdmin(roleB, roleA)
	s.SetupRole(roleA, alice)

	// alice holds A, the admin of B, and grants B to bob who administers A.
	require.NoError(t, s.GrantRole(ctx, alice, roleB, bob))
	require.NoError(t, s.RevokeRole(ctx, bob, roleA, alice))
	assert.False(t, s.HasRole(roleA, alice))

	err := s.GrantRole(ctx, alice, roleB, alice)
	require.EqualError(t, err, "AccessControl: caller is missing role "+roleA.Hex())
}

func TestRoleStore_Members(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	assert.Empty(t, s.GetRoleMembers(otherRole))
	assert.Equal(t, 0, s.GetRoleMemberCount(otherRole))

	require.NoError(t, s.GrantRole(ctx, admin, otherRole, bob))
	require.NoError(t, s.GrantRole(ctx, admin, otherRole, alice))

	assert.Equal(t, []common.Address{bob, alice}, s.GetRoleMembers(otherRole))
	assert.Equal(t, 2, s.GetRoleMemberCount(otherRole))
}

func TestRoleStore_Revert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	j := s.Journal()

	snap := j.Snapshot()
	require.NoError(t, s.GrantRole(ctx, admin, otherRole, alice))
	require.NoError(t, s.RevokeRole(ctx, admin, defaultRole, admin))
	s.SetupRoleAdmin(otherRole, otherRole)
	j.RevertToSnapshot(snap)

	assert.False(t, s.HasRole(otherRole, alice))
	assert.True(t, s.HasRole(defaultRole, admin))
	assert.Equal(t, defaultRole, s.GetRoleAdmin(otherRole))
	assert.Empty(t, j.Logs())
}
