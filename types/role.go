package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role is an opaque 32 byte permission tag. Membership of a role determines authorization.
type Role = common.Hash

// DefaultAdminRole is the admin of every role that never had its admin set explicitly.
var DefaultAdminRole = Role{}

var (
	// TimelockAdminRole administers all timelock roles. Held by the timelock itself and the deployer.
	TimelockAdminRole = NewRole("TIMELOCK_ADMIN_ROLE")

	// ProposerRole may schedule operations.
	ProposerRole = NewRole("PROPOSER_ROLE")

	// CancellerRole may cancel pending operations.
	CancellerRole = NewRole("CANCELLER_ROLE")

	// ExecutorRole may execute ready operations.
	ExecutorRole = NewRole("EXECUTOR_ROLE")
)

// NewRole derives a role identifier from its name.
func NewRole(name string) Role {
	return crypto.Keccak256Hash([]byte(name))
}
