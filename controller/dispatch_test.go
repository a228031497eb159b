package controller_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/timelock/controller"
	"github.com/smartcontractkit/timelock/types"
)

func selectorWord(s types.Selector) types.Word {
	var w types.Word
	w.SetBytes(s[:])

	return w
}

func Test_SupportsInterface(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tests := []struct {
		name string
		id   types.Selector
		want bool
	}{
		{name: "IERC165", id: controller.IERC165ID, want: true},
		{name: "IERC721Receiver", id: controller.IERC721ReceiverID, want: true},
		{name: "IERC1155Receiver", id: controller.IERC1155ReceiverID, want: true},
		{name: "IAccessControl", id: controller.IAccessControlID, want: true},
		{name: "invalid id", id: types.Selector{0xff, 0xff, 0xff, 0xff}, want: false},
		{name: "unsupported id", id: types.Selector{0xab, 0xcd, 0x12, 0x34}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.tl.SupportsInterface(tt.id))

			out, err := f.tl.Call(f.ctx, stranger, types.NewCall(timelockAddr, "supportsInterface", selectorWord(tt.id)))
			require.NoError(t, err)
			want := types.WordFromUint64(0)
			if tt.want {
				want = types.WordFromUint64(1)
			}
			assert.Equal(t, []types.Word{want}, out)
		})
	}
}

func Test_Call(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    types.Call
		want    []types.Word
		wantErr error
	}{
		{
			name: "getMinDelay",
			give: types.NewCall(timelockAddr, "getMinDelay"),
			want: []types.Word{types.WordFromUint64(minDelay)},
		},
		{
			name: "hasRole",
			give: types.NewCall(timelockAddr, "hasRole", types.WordFromHash(types.ProposerRole), types.WordFromAddress(proposer)),
			want: []types.Word{types.WordFromUint64(1)},
		},
		{
			name: "getTimestamp of unknown operation",
			give: types.NewCall(timelockAddr, "getTimestamp", types.WordFromHash(salt(1))),
			want: []types.Word{types.WordFromUint64(0)},
		},
		{
			name: "receive ERC721 token",
			give: types.NewCall(timelockAddr, "onERC721Received",
				types.WordFromAddress(stranger),
				types.WordFromAddress(deployer),
				types.WordFromUint64(5042),
				types.WordFromUint64(3),
				types.WordFromUint64(0x42), types.WordFromUint64(0x89), types.WordFromUint64(0x55),
			),
			want: []types.Word{selectorWord(controller.IERC721ReceiverID)},
		},
		{
			name: "receive ERC1155 token",
			give: types.NewCall(timelockAddr, "onERC1155Received",
				types.WordFromAddress(stranger),
				types.WordFromAddress(deployer),
				types.WordFromUint64(1),
				types.WordFromUint64(10),
				types.WordFromUint64(0),
			),
			want: []types.Word{selectorWord(controller.IERC1155ReceiverID)},
		},
		{
			name: "receive ERC721 token with wrong data length",
			give: types.NewCall(timelockAddr, "onERC721Received",
				types.WordFromAddress(stranger),
				types.WordFromAddress(deployer),
				types.WordFromUint64(5042),
				types.WordFromUint64(2),
				types.WordFromUint64(0x42),
			),
			wantErr: controller.ErrInvalidCalldata,
		},
		{
			name:    "unknown entry point",
			give:    types.NewCall(timelockAddr, "selfDestruct"),
			wantErr: controller.ErrUnknownEntryPoint,
		},
		{
			name:    "missing arguments",
			give:    types.NewCall(timelockAddr, "updateDelay"),
			wantErr: controller.ErrInvalidCalldata,
		},
		{
			name:    "extra arguments",
			give:    types.NewCall(timelockAddr, "getMinDelay", types.WordFromUint64(1)),
			wantErr: controller.ErrInvalidCalldata,
		},
		{
			name:    "account out of range",
			give:    types.NewCall(timelockAddr, "hasRole", types.WordFromHash(types.ProposerRole), *new(uint256.Int).Lsh(uint256.NewInt(1), 200)),
			wantErr: controller.ErrInvalidCalldata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)

			out, err := f.tl.Call(f.ctx, stranger, tt.give)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, out)
			}
		})
	}
}

func Test_Call_UpdateDelayFromOutside(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.tl.Call(f.ctx, deployer, types.NewCall(timelockAddr, "updateDelay", types.WordFromUint64(newMinDelay)))
	require.EqualError(t, err, controller.CallerNotTimelockReason)
	assert.Equal(t, uint64(minDelay), f.tl.GetMinDelay())
}
