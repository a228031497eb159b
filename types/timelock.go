package types

type TimelockAction string

const (
	TimelockActionSchedule TimelockAction = "schedule"
	TimelockActionCancel   TimelockAction = "cancel"
)

// DoneTimestamp is the reserved ready timestamp marking an executed operation.
const DoneTimestamp uint64 = 1
