package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// SelectorLength is the size in bytes of a function selector.
const SelectorLength = 4

// Word is a single calldata element.
type Word = uint256.Int

// Selector identifies an entry point of a target contract.
type Selector [SelectorLength]byte

// NewSelector derives the selector of the entry point with the given name.
func NewSelector(name string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(name))[:SelectorLength])

	return s
}

// Hash returns the selector left padded to 32 bytes.
func (s Selector) Hash() common.Hash {
	return common.BytesToHash(s[:])
}

// String returns the 0x prefixed hex encoding of the selector.
func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts either a 0x prefixed 4 byte hex string or an entry point name, in which
// case the selector is derived from the name.
func (s *Selector) UnmarshalText(text []byte) error {
	str := string(text)
	if str == "" {
		return fmt.Errorf("empty selector")
	}

	if !strings.HasPrefix(str, "0x") {
		*s = NewSelector(str)
		return nil
	}

	b, err := hexutil.Decode(str)
	if err != nil {
		return fmt.Errorf("invalid selector %q: %w", str, err)
	}
	if len(b) != SelectorLength {
		return fmt.Errorf("invalid selector %q: expected %d bytes, got %d", str, SelectorLength, len(b))
	}
	copy(s[:], b)

	return nil
}

// Call is a single invocation of an entry point on a target. A call is part of the identity of
// the operation it belongs to and must not be mutated once scheduled.
type Call struct {
	Target   common.Address `json:"target" validate:"required"`
	Selector Selector       `json:"selector" validate:"required"`
	Calldata []Word         `json:"calldata"`
}

// NewCall creates a call to the named entry point with the given calldata.
func NewCall(target common.Address, function string, calldata ...Word) Call {
	return Call{
		Target:   target,
		Selector: NewSelector(function),
		Calldata: calldata,
	}
}

// BatchOperation is an ordered batch of calls executed atomically by the timelock.
type BatchOperation struct {
	Calls []Call `json:"calls" validate:"required,min=1,dive"`
}

// WordFromUint64 returns the word holding v.
func WordFromUint64(v uint64) Word {
	return *uint256.NewInt(v)
}

// WordFromAddress returns the word holding the address, left padded.
func WordFromAddress(addr common.Address) Word {
	var w Word
	w.SetBytes20(addr.Bytes())

	return w
}

// WordFromHash returns the word holding the 32 byte hash.
func WordFromHash(h common.Hash) Word {
	var w Word
	w.SetBytes32(h.Bytes())

	return w
}

// WordToAddress interprets the low 20 bytes of the word as an address.
func WordToAddress(w *Word) common.Address {
	return common.Address(w.Bytes20())
}

// WordToHash returns the big endian 32 byte encoding of the word.
func WordToHash(w *Word) common.Hash {
	return common.Hash(w.Bytes32())
}
