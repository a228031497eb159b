package sdk

// Clock reports the current block timestamp in seconds. It never decreases.
type Clock interface {
	Timestamp() uint64
}

// StaticClock is a Clock fixed at a single timestamp.
type StaticClock uint64

func (c StaticClock) Timestamp() uint64 {
	return uint64(c)
}
