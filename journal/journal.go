// Package journal records revertible state changes so that a failed operation leaves no trace.
//
// Components that own state append an Entry for every mutation. Callers take a Snapshot before
// an operation and RevertToSnapshot if it fails. Events are appended to the same journal, so a
// reverted operation also loses the events it emitted. Finalise commits the pending events and
// publishes them to subscribers.
package journal

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/smartcontractkit/timelock/types"
)

// Entry is a revertible state change.
type Entry interface {
	// Revert undoes the change.
	Revert()
}

// EntryFunc adapts a function to the Entry interface.
type EntryFunc func()

// Revert calls f.
func (f EntryFunc) Revert() { f() }

type revision struct {
	id           int
	journalIndex int
}

// Journal tracks state modifications and pending events for snapshot/revert.
type Journal struct {
	entries        []Entry
	validRevisions []revision
	nextRevisionID int

	logs []types.Log
	feed event.Feed
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{}
}

// Append records a change.
func (j *Journal) Append(entry Entry) {
	j.entries = append(j.entries, entry)
}

// Length returns the number of recorded changes since the last Finalise.
func (j *Journal) Length() int {
	return len(j.entries)
}

// Snapshot returns an identifier for the current revision of the state.
func (j *Journal) Snapshot() int {
	id := j.nextRevisionID
	j.nextRevisionID++
	j.validRevisions = append(j.validRevisions, revision{id, len(j.entries)})

	return id
}

// RevertToSnapshot undoes every change made since the given snapshot was taken. Snapshots taken
// after it become invalid.
func (j *Journal) RevertToSnapshot(id int) {
	idx := -1
	for i, rev := range j.validRevisions {
		if rev.id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		panic(fmt.Errorf("revision id %v cannot be reverted", id))
	}
	snapshot := j.validRevisions[idx].journalIndex

	// Replay the journal backwards.
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i].Revert()
	}
	j.entries = j.entries[:snapshot]
	j.validRevisions = j.validRevisions[:idx]
}

// AddLog records an event emitted by the component at addr. The event stays pending until
// Finalise and is dropped if its snapshot is reverted.
func (j *Journal) AddLog(addr common.Address, ev types.Event) {
	prev := len(j.logs)
	j.logs = append(j.logs, types.Log{Address: addr, Event: ev})
	j.Append(EntryFunc(func() {
		j.logs = j.logs[:prev]
	}))
}

// Logs returns a copy of the pending events.
func (j *Journal) Logs() []types.Log {
	out := make([]types.Log, len(j.logs))
	copy(out, j.logs)

	return out
}

// Finalise commits all pending changes: the undo history and snapshots are discarded and the
// pending events are published to subscribers and returned.
func (j *Journal) Finalise() []types.Log {
	logs := j.logs
	j.logs = nil
	j.entries = nil
	j.validRevisions = j.validRevisions[:0]

	if len(logs) > 0 {
		j.feed.Send(logs)
	}

	return logs
}

// SubscribeLogs registers a channel receiving the events committed by each Finalise.
func (j *Journal) SubscribeLogs(ch chan<- []types.Log) event.Subscription {
	return j.feed.Subscribe(ch)
}
