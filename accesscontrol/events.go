package accesscontrol

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// RoleGranted is emitted when account is added to role by sender.
type RoleGranted struct {
	Role    types.Role
	Account common.Address
	Sender  common.Address
}

func (RoleGranted) EventName() string { return "RoleGranted" }

// RoleRevoked is emitted when account is removed from role. Sender is the account itself when
// the role was renounced.
type RoleRevoked struct {
	Role    types.Role
	Account common.Address
	Sender  common.Address
}

func (RoleRevoked) EventName() string { return "RoleRevoked" }

// RoleAdminChanged is emitted when the admin of role changes.
type RoleAdminChanged struct {
	Role              types.Role
	PreviousAdminRole types.Role
	NewAdminRole      types.Role
}

func (RoleAdminChanged) EventName() string { return "RoleAdminChanged" }
