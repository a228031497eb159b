package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/timelock/controller"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// A controller outside of a chain owns its journal and commits every top level operation.
func Test_Standalone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var invoked []types.Call
	fail := false
	tl, err := controller.New(controller.Config{
		Address:   timelockAddr,
		Deployer:  deployer,
		MinDelay:  0,
		Proposers: []common.Address{proposer},
		Executors: []common.Address{executor},
		Clock:     sdk.StaticClock(startTime),
		CallExecutor: sdk.CallExecutorFunc(func(_ context.Context, caller common.Address, call types.Call) ([]types.Word, error) {
			assert.Equal(t, timelockAddr, caller)
			if fail {
				return nil, errors.New("reverted")
			}
			invoked = append(invoked, call)

			return nil, nil
		}),
	})
	require.NoError(t, err)

	// Constructor events were committed.
	assert.Empty(t, tl.Journal().Logs())

	calls := singleOperation()
	id, err := tl.Schedule(ctx, proposer, calls, common.Hash{}, salt(1), 0)
	require.NoError(t, err)
	assert.Empty(t, tl.Journal().Logs())
	assert.True(t, tl.IsOperationReady(id))

	fail = true
	err = tl.Execute(ctx, executor, calls, common.Hash{}, salt(1))
	require.Error(t, err)
	assert.True(t, tl.IsOperationReady(id))
	assert.Empty(t, invoked)

	fail = false
	require.NoError(t, tl.Execute(ctx, executor, calls, common.Hash{}, salt(1)))
	assert.True(t, tl.IsOperationDone(id))
	assert.Equal(t, calls, invoked)
	assert.Equal(t, types.DoneTimestamp, tl.GetTimestamp(id))
}
