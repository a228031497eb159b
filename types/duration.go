package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
)

// Duration wraps time.Duration with support for JSON encoding. Timelock delays are whole
// seconds, so sub-second precision is rejected when converting to a delay.
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration with a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// NewDurationFromSeconds returns the Duration of the given number of seconds.
func NewDurationFromSeconds(secs uint64) (Duration, error) {
	s, err := safecast.Uint64ToInt64(secs)
	if err != nil {
		return Duration{}, err
	}
	if s > int64(time.Duration(1<<63-1)/time.Second) {
		return Duration{}, fmt.Errorf("delay of %d seconds exceeds duration range", secs)
	}

	return NewDuration(time.Duration(s) * time.Second), nil
}

// ParseDuration parses a duration string in the time.Duration format.
func ParseDuration(s string) (Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, err
	}

	return NewDuration(d), nil
}

// MustParseDuration parses a duration string in the time.Duration format.
// Panics if the string is invalid.
//
// Useful for tests, but should be avoided in production code.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

// DelaySeconds converts the duration into a timelock delay in seconds.
func (d Duration) DelaySeconds() (uint64, error) {
	if d.Duration%time.Second != 0 {
		return 0, fmt.Errorf("delay %s is not a whole number of seconds", d)
	}

	return safecast.Int64ToUint64(int64(d.Duration / time.Second))
}

// String returns a string representing the duration in the form "72h3m0.5s".
func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON marshals the duration into JSON bytes and implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON unmarshals the duration from JSON bytes and implements the json.Unmarshaler
// interface. Both duration strings ("24h") and plain numbers of seconds are accepted.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		var err error
		if d.Duration, err = time.ParseDuration(value); err != nil {
			return err
		}

		return nil
	case float64:
		secs, err := safecast.Float64ToUint64(value)
		if err != nil {
			return err
		}
		parsed, err := NewDurationFromSeconds(secs)
		if err != nil {
			return err
		}
		*d = parsed

		return nil
	default:
		return fmt.Errorf("invalid duration type: %T", v)
	}
}
