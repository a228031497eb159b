package hasher

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/smartcontractkit/timelock/types"
)

var (
	target      = common.HexToAddress("0xc0ffee")
	predecessor = crypto.Keccak256Hash([]byte("predecessor"))
	salt        = common.BigToHash(common.Big1)
)

func testCalls() []types.Call {
	return []types.Call{
		types.NewCall(target, "increaseCount", types.WordFromUint64(1)),
		types.NewCall(target, "increaseCount", types.WordFromUint64(2)),
		types.NewCall(target, "getCount"),
	}
}

func Test_HashOperation_Deterministic(t *testing.T) {
	t.Parallel()

	a := HashOperation(testCalls(), predecessor, salt)
	b := HashOperation(testCalls(), predecessor, salt)

	assert.Equal(t, a, b)
	assert.NotEqual(t, common.Hash{}, a)
}

func Test_HashOperation_Sensitivity(t *testing.T) {
	t.Parallel()

	base := HashOperation(testCalls(), predecessor, salt)

	tests := []struct {
		name        string
		calls       func() []types.Call
		predecessor common.Hash
		salt        common.Hash
	}{
		{
			name: "reordered calls",
			calls: func() []types.Call {
				c := testCalls()
				c[0], c[1] = c[1], c[0]

				return c
			},
			predecessor: predecessor,
			salt:        salt,
		},
		{
			name: "different target",
			calls: func() []types.Call {
				c := testCalls()
				c[2].Target = common.HexToAddress("0xdead")

				return c
			},
			predecessor: predecessor,
			salt:        salt,
		},
		{
			name: "different selector",
			calls: func() []types.Call {
				c := testCalls()
				c[2].Selector = types.NewSelector("setCount")

				return c
			},
			predecessor: predecessor,
			salt:        salt,
		},
		{
			name: "extra calldata",
			calls: func() []types.Call {
				c := testCalls()
				c[2].Calldata = []types.Word{types.WordFromUint64(0)}

				return c
			},
			predecessor: predecessor,
			salt:        salt,
		},
		{
			name: "dropped call",
			calls: func() []types.Call {
				return testCalls()[:2]
			},
			predecessor: predecessor,
			salt:        salt,
		},
		{
			name:        "zero predecessor",
			calls:       testCalls,
			predecessor: common.Hash{},
			salt:        salt,
		},
		{
			name:        "different salt",
			calls:       testCalls,
			predecessor: predecessor,
			salt:        common.BigToHash(common.Big2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotEqual(t, base, HashOperation(tt.calls(), tt.predecessor, tt.salt))
		})
	}
}

func Test_HashCall_CalldataBoundaries(t *testing.T) {
	t.Parallel()

	// A trailing zero word changes the digest.
	a := HashCall(types.NewCall(target, "f", types.WordFromUint64(1)))
	b := HashCall(types.NewCall(target, "f", types.WordFromUint64(1), types.WordFromUint64(0)))

	assert.NotEqual(t, a, b)
}

func Test_HashOperation_Empty(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, HashOperation(nil, common.Hash{}, common.Hash{}), common.Hash{})
	assert.Equal(t, HashOperation(nil, common.Hash{}, common.Hash{}), HashOperation([]types.Call{}, common.Hash{}, common.Hash{}))
}
