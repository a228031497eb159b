package simulated

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/timelock/types"
)

var (
	counterAddr = common.HexToAddress("0xc0")
	sender      = common.HexToAddress("0x5e")
)

func Test_Chain_Clock(t *testing.T) {
	t.Parallel()

	chain := NewChain(100)
	assert.Equal(t, uint64(100), chain.Timestamp())

	require.NoError(t, chain.SetTimestamp(150))
	assert.Equal(t, uint64(150), chain.Timestamp())

	require.EqualError(t, chain.SetTimestamp(149), "timestamp 149 is before current timestamp 150")

	next, err := chain.AdvanceTime(50)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), next)
	assert.Equal(t, uint64(200), chain.Timestamp())

	_, err = chain.AdvanceTime(math.MaxUint64)
	require.Error(t, err)
	assert.Equal(t, uint64(200), chain.Timestamp())
}

func Test_Chain_Deploy(t *testing.T) {
	t.Parallel()

	chain := NewChain(1)
	_, err := DeployCounter(chain, counterAddr)
	require.NoError(t, err)

	_, err = DeployCounter(chain, counterAddr)
	require.EqualError(t, err, "contract already deployed at "+counterAddr.Hex())

	_, ok := chain.Contract(counterAddr)
	assert.True(t, ok)
}

func Test_Chain_Invoke_NoContract(t *testing.T) {
	t.Parallel()

	chain := NewChain(1)
	_, _, err := chain.Send(context.Background(), sender, types.NewCall(counterAddr, "getCount"))
	require.EqualError(t, err, "no contract deployed at "+counterAddr.Hex())
}

func Test_Chain_Transact(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chain := NewChain(1)
	counter, err := DeployCounter(chain, counterAddr)
	require.NoError(t, err)

	logs, err := chain.Transact(ctx, func(ctx context.Context) error {
		_, err := chain.Invoke(ctx, sender, types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(5)))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Log{{
		Address: counterAddr,
		Event:   CountIncreased{Sender: sender, Amount: 5, Count: 5},
	}}, logs)

	// A failing transaction loses the effects of its earlier calls.
	boom := errors.New("boom")
	_, err = chain.Transact(ctx, func(ctx context.Context) error {
		if _, err := chain.Invoke(ctx, sender, types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(7))); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(5), counter.Count())
	assert.Empty(t, chain.Journal().Logs())
}

func Test_Chain_SubscribeLogs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chain := NewChain(1)
	_, err := DeployCounter(chain, counterAddr)
	require.NoError(t, err)

	ch := make(chan []types.Log, 1)
	sub := chain.SubscribeLogs(ch)
	defer sub.Unsubscribe()

	_, logs, err := chain.Send(ctx, sender, types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(1)))
	require.NoError(t, err)

	got := <-ch
	assert.Equal(t, logs, got)
}

func Test_NewAccount(t *testing.T) {
	t.Parallel()

	a, err := NewAccount()
	require.NoError(t, err)
	b, err := NewAccount()
	require.NoError(t, err)

	assert.NotEqual(t, common.Address{}, a.Address())
	assert.NotEqual(t, a.Address(), b.Address())
}
