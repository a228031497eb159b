// Package hasher derives operation identifiers from the batch they contain.
package hasher

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/timelock/types"
)

// HashOperation returns the identifier of the batch calls scheduled with predecessor and salt.
// The result depends on the order of calls and on every field of every call.
func HashOperation(calls []types.Call, predecessor common.Hash, salt common.Hash) common.Hash {
	elems := make([]common.Hash, 0, len(calls)+3)
	for _, call := range calls {
		elems = append(elems, HashCall(call))
	}
	elems = append(elems, lengthHash(len(calls)), predecessor, salt)

	return fold(elems)
}

// HashCall returns the digest of a single call.
func HashCall(call types.Call) common.Hash {
	data := make([]common.Hash, len(call.Calldata))
	for i := range call.Calldata {
		data[i] = types.WordToHash(&call.Calldata[i])
	}

	return fold([]common.Hash{
		common.BytesToHash(call.Target.Bytes()),
		call.Selector.Hash(),
		fold(data),
	})
}

// fold chains keccak256 over the elements starting from the zero hash and finishes with the
// element count, so that sequences of different lengths never collide.
func fold(elems []common.Hash) common.Hash {
	var acc common.Hash
	for _, e := range elems {
		acc = crypto.Keccak256Hash(acc[:], e[:])
	}
	n := lengthHash(len(elems))

	return crypto.Keccak256Hash(acc[:], n[:])
}

func lengthHash(n int) common.Hash {
	w := types.WordFromUint64(uint64(n))

	return types.WordToHash(&w)
}
