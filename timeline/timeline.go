// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package timeline orders events on a virtual clock, firing them strictly
// in time order as the clock is advanced.
package timeline

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/keyq"
	"github.com/ava-labs/keyq/intmath"
)

// A Timeline is a discrete-event schedule on a virtual clock of type `T`.
// Pending events can be rescheduled, handed off to a successor identity, or
// cancelled at any point before they fire, each in O(log n).
//
// A Timeline is not thread safe nor is the zero value valid; use [New].
type Timeline[T ~uint64, E comparable] struct {
	log logging.Logger
	q   *keyq.Queue[T, E]
	now T
}

// New returns an empty timeline with its clock at zero. Scheduling activity
// is logged to `log` at [logging.Debug].
func New[T ~uint64, E comparable](log logging.Logger) *Timeline[T, E] {
	return &Timeline[T, E]{
		log: log,
		q:   keyq.New[T, E](keyq.MinFirst),
	}
}

// Now returns the virtual clock: the highest time ever passed to
// [Timeline.Advance].
func (tl *Timeline[T, E]) Now() T {
	return tl.now
}

// Len returns the number of pending events.
func (tl *Timeline[T, E]) Len() int {
	return tl.q.Len()
}

// Schedule registers an event to fire at time `at`. A time at or before
// [Timeline.Now] is valid and fires on the next [Timeline.Advance]. An
// event identity that is already pending is rejected with an error wrapping
// [keyq.ErrAlreadyQueued]; it MUST be cancelled or handed off first.
func (tl *Timeline[T, E]) Schedule(at T, ev E) error {
	if err := tl.q.Push(at, ev); err != nil {
		return fmt.Errorf("scheduling %v at %d: %w", ev, at, err)
	}
	tl.log.Debug("event scheduled",
		zap.Any("event", ev),
		zap.Uint64("at", uint64(at)),
		zap.Int("pending", tl.q.Len()),
	)
	return nil
}

// Reschedule moves a pending event to a new time, in either direction. An
// event that is not pending is rejected with an error wrapping
// [keyq.ErrNotQueued].
func (tl *Timeline[T, E]) Reschedule(at T, ev E) error {
	if err := tl.q.Update(at, ev); err != nil {
		return fmt.Errorf("rescheduling %v to %d: %w", ev, at, err)
	}
	tl.log.Debug("event rescheduled",
		zap.Any("event", ev),
		zap.Uint64("at", uint64(at)),
	)
	return nil
}

// Handoff transfers a pending event's place on the timeline to a successor
// identity; the due time is unchanged. It returns an error wrapping
// [keyq.ErrNotQueued] if `old` is not pending, or [keyq.ErrAlreadyQueued]
// if `new` already is.
func (tl *Timeline[T, E]) Handoff(old, new E) error {
	if err := tl.q.Replace(old, new); err != nil {
		return fmt.Errorf("handing %v off to %v: %w", old, new, err)
	}
	tl.log.Debug("event handed off",
		zap.Any("from", old),
		zap.Any("to", new),
	)
	return nil
}

// Cancel drops a pending event, reporting whether it was pending.
func (tl *Timeline[T, E]) Cancel(ev E) bool {
	at, ok := tl.q.Remove(ev)
	if ok {
		tl.log.Debug("event cancelled",
			zap.Any("event", ev),
			zap.Uint64("was_due", uint64(at)),
		)
	}
	return ok
}

// Next returns the next event to fire and its due time, without firing it.
// It is false if nothing is pending.
func (tl *Timeline[T, E]) Next() (T, E, bool) {
	return tl.q.Peek()
}

// Until returns the virtual time remaining before `ev` fires, zero if it is
// already due, and false if it is not pending.
func (tl *Timeline[T, E]) Until(ev E) (T, bool) {
	at, ok := tl.q.Priority(ev)
	if !ok {
		return 0, false
	}
	return intmath.BoundedSubtract(at, tl.now, 0), true
}

// Advance moves the clock to `to` and returns every event due at or before
// it, in time order; events due at the same time fire in unspecified
// relative order. The clock never moves backwards: advancing to a time
// before [Timeline.Now] returns nil and fires nothing.
func (tl *Timeline[T, E]) Advance(to T) []E {
	if to < tl.now {
		return nil
	}
	tl.now = to

	var fired []E
	for {
		at, ev, ok := tl.q.Peek()
		if !ok || at > to {
			return fired
		}
		tl.q.Pop()
		fired = append(fired, ev)
		tl.log.Debug("event fired",
			zap.Any("event", ev),
			zap.Uint64("at", uint64(at)),
			zap.Int("pending", tl.q.Len()),
		)
	}
}
