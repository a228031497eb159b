package safecast

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Uint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    uint64
		want    int64
		wantErr bool
	}{
		{name: "Valid uint64 within range", give: 42, want: 42},
		{name: "Uint64 exceeds int64 max value", give: uint64(math.MaxInt64) + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint64ToInt64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_Int64ToUint64(t *testing.T) {
	t.Parallel()

	got, err := Int64ToUint64(86400)
	require.NoError(t, err)
	assert.Equal(t, uint64(86400), got)

	_, err = Int64ToUint64(-1)
	require.EqualError(t, err, "value -1 is negative, cannot convert to uint64")
}

func Test_IntToUint64(t *testing.T) {
	t.Parallel()

	got, err := IntToUint64(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got)

	_, err = IntToUint64(-3)
	require.Error(t, err)
}

func Test_Float64ToUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    float64
		want    uint64
		wantErr bool
	}{
		{name: "Valid float64", give: 42, want: 42},
		{name: "Negative float64", give: -1, wantErr: true},
		{name: "Fractional float64", give: 1.5, wantErr: true},
		{name: "Float64 exceeds uint64 max value", give: math.MaxFloat64, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Float64ToUint64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_StringToUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    uint64
		wantErr bool
	}{
		{name: "Valid decimal", give: "86400", want: 86400},
		{name: "Surrounding whitespace", give: " 21600 ", want: 21600},
		{name: "Negative", give: "-5", wantErr: true},
		{name: "Not a number", give: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := StringToUint64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_WordToUint64(t *testing.T) {
	t.Parallel()

	got, err := WordToUint64(uint256.NewInt(172800))
	require.NoError(t, err)
	assert.Equal(t, uint64(172800), got)

	big := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err = WordToUint64(big)
	require.EqualError(t, err, "value 340282366920938463463374607431768211456 exceeds uint64 range")
}
