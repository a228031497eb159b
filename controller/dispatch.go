package controller

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
	"github.com/smartcontractkit/timelock/types"
)

// entryPoint is an operation reachable through Call. minArgs is the exact number of calldata
// words unless variadic is set, in which case it is the minimum.
type entryPoint struct {
	minArgs  int
	variadic bool
	handle   func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error)
}

var entryPoints = map[types.Selector]entryPoint{
	types.NewSelector("updateDelay"): {minArgs: 1, handle: func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error) {
		delay, err := wordToUint64(&args[0])
		if err != nil {
			return nil, err
		}

		return nil, c.UpdateDelay(ctx, caller, delay)
	}},
	types.NewSelector("grantRole"): {minArgs: 2, handle: roleEntryPoint((*Controller).GrantRole)},
	types.NewSelector("revokeRole"): {minArgs: 2, handle: roleEntryPoint((*Controller).RevokeRole)},
	types.NewSelector("renounceRole"): {minArgs: 2, handle: roleEntryPoint((*Controller).RenounceRole)},
	types.NewSelector("setRoleAdmin"): {minArgs: 2, handle: func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error) {
		return nil, c.SetRoleAdmin(ctx, caller, types.WordToHash(&args[0]), types.WordToHash(&args[1]))
	}},
	types.NewSelector("cancel"): {minArgs: 1, handle: func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error) {
		return nil, c.Cancel(ctx, caller, types.WordToHash(&args[0]))
	}},
	types.NewSelector("getMinDelay"): {handle: func(c *Controller, _ context.Context, _ common.Address, _ []types.Word) ([]types.Word, error) {
		return []types.Word{types.WordFromUint64(c.GetMinDelay())}, nil
	}},
	types.NewSelector("getTimestamp"): {minArgs: 1, handle: func(c *Controller, _ context.Context, _ common.Address, args []types.Word) ([]types.Word, error) {
		return []types.Word{types.WordFromUint64(c.GetTimestamp(types.WordToHash(&args[0])))}, nil
	}},
	types.NewSelector("hasRole"): {minArgs: 2, handle: func(c *Controller, _ context.Context, _ common.Address, args []types.Word) ([]types.Word, error) {
		account, err := wordToAddress(&args[1])
		if err != nil {
			return nil, err
		}

		return []types.Word{boolWord(c.HasRole(types.WordToHash(&args[0]), account))}, nil
	}},
	types.NewSelector("supportsInterface"): {minArgs: 1, handle: func(c *Controller, _ context.Context, _ common.Address, args []types.Word) ([]types.Word, error) {
		id, err := wordToSelector(&args[0])
		if err != nil {
			return nil, err
		}

		return []types.Word{boolWord(c.SupportsInterface(id))}, nil
	}},
	// operator, from, tokenId, data length, data...
	types.NewSelector("onERC721Received"): {minArgs: 4, variadic: true, handle: func(c *Controller, _ context.Context, _ common.Address, args []types.Word) ([]types.Word, error) {
		if err := checkDataLength(args, 3); err != nil {
			return nil, err
		}

		return []types.Word{selectorWord(c.OnERC721Received())}, nil
	}},
	// operator, from, id, value, data length, data...
	types.NewSelector("onERC1155Received"): {minArgs: 5, variadic: true, handle: func(c *Controller, _ context.Context, _ common.Address, args []types.Word) ([]types.Word, error) {
		if err := checkDataLength(args, 4); err != nil {
			return nil, err
		}

		return []types.Word{selectorWord(c.OnERC1155Received())}, nil
	}},
}

// Call invokes the entry point named by call.Selector as if sent by caller. It makes the
// controller a callable target, so that scheduled operations can reconfigure it.
func (c *Controller) Call(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error) {
	ep, ok := entryPoints[call.Selector]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntryPoint, call.Selector)
	}

	n := len(call.Calldata)
	if n < ep.minArgs || (!ep.variadic && n != ep.minArgs) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidCalldata, call.Selector, ep.minArgs, n)
	}

	return ep.handle(c, ctx, caller, call.Calldata)
}

func roleEntryPoint(
	fn func(c *Controller, ctx context.Context, caller common.Address, role types.Role, account common.Address) error,
) func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error) {
	return func(c *Controller, ctx context.Context, caller common.Address, args []types.Word) ([]types.Word, error) {
		account, err := wordToAddress(&args[1])
		if err != nil {
			return nil, err
		}

		return nil, fn(c, ctx, caller, types.WordToHash(&args[0]), account)
	}
}

// checkDataLength verifies that the word at index lenIdx matches the number of words after it.
func checkDataLength(args []types.Word, lenIdx int) error {
	dataLen, err := wordToUint64(&args[lenIdx])
	if err != nil {
		return err
	}
	got, err := safecast.IntToUint64(len(args) - lenIdx - 1)
	if err != nil {
		return err
	}
	if dataLen != got {
		return fmt.Errorf("%w: data length %d does not match %d data words", ErrInvalidCalldata, dataLen, got)
	}

	return nil
}

func wordToUint64(w *types.Word) (uint64, error) {
	v, err := safecast.WordToUint64(w)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCalldata, err)
	}

	return v, nil
}

func wordToAddress(w *types.Word) (common.Address, error) {
	if w.BitLen() > common.AddressLength*8 {
		return common.Address{}, fmt.Errorf("%w: %s is not an address", ErrInvalidCalldata, w.Hex())
	}

	return types.WordToAddress(w), nil
}

func wordToSelector(w *types.Word) (types.Selector, error) {
	if w.BitLen() > types.SelectorLength*8 {
		return types.Selector{}, fmt.Errorf("%w: %s is not an interface id", ErrInvalidCalldata, w.Hex())
	}

	var s types.Selector
	b := w.Bytes32()
	copy(s[:], b[len(b)-types.SelectorLength:])

	return s, nil
}

func selectorWord(s types.Selector) types.Word {
	var w types.Word
	w.SetBytes(s[:])

	return w
}

func boolWord(b bool) types.Word {
	if b {
		return types.WordFromUint64(1)
	}

	return types.WordFromUint64(0)
}
