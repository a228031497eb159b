package simulated

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/timelock/types"
)

func Test_Counter_Call(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		give      types.Call
		wantOut   []types.Word
		wantCount uint64
		wantErr   string
	}{
		{
			name:      "increase",
			give:      types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(5)),
			wantCount: 105,
		},
		{
			name:      "get",
			give:      types.NewCall(counterAddr, "getCount"),
			wantOut:   []types.Word{types.WordFromUint64(100)},
			wantCount: 100,
		},
		{
			name:      "missing amount",
			give:      types.NewCall(counterAddr, "increaseCount"),
			wantCount: 100,
			wantErr:   "Counter: increaseCount expects 1 argument, got 0",
		},
		{
			name:      "overflow",
			give:      types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(math.MaxUint64)),
			wantCount: 100,
			wantErr:   "Counter: count overflow",
		},
		{
			name:      "unknown entry point",
			give:      types.NewCall(counterAddr, "decreaseCount", types.WordFromUint64(1)),
			wantCount: 100,
			wantErr:   "Counter: unknown entry point " + types.NewSelector("decreaseCount").String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			chain := NewChain(1)
			counter, err := DeployCounter(chain, counterAddr)
			require.NoError(t, err)
			_, _, err = chain.Send(ctx, sender, types.NewCall(counterAddr, "increaseCount", types.WordFromUint64(100)))
			require.NoError(t, err)

			out, _, err := chain.Send(ctx, sender, tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOut, out)
			}
			assert.Equal(t, tt.wantCount, counter.Count())
		})
	}
}
