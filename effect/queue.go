// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package effect implements the iterative work-queue effect resolver: the
// single place a card, skill, or unit ability's effect tree is interpreted
// into GameState mutations. Nothing here recurses through host stack
// frames — every structural node (Sequence, Conditional, Scaling, Choice)
// pushes its children back onto the queue instead, so a suspended Choice
// can be serialized, handed back to a client, and resumed arbitrarily
// later without unwinding or rebuilding a call stack.
package effect

import (
	"container/list"

	"github.com/mage-knight-digital/mkengine/state"
)

// Queue is the resolver's double-ended work queue of state.EffectFrame,
// backed by container/list the way the teacher reaches for the standard
// library's doubly-linked list for FIFO/LIFO-mixed work queues rather than
// hand-rolling pointer-chasing.
type Queue struct {
	frames *list.List
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{frames: list.New()}
}

// FromFrames returns a queue preloaded with frames in order (frames[0]
// resolves first), used to restore a ContinuationEntry's saved remainder.
func FromFrames(frames []state.EffectFrame) *Queue {
	q := NewQueue()
	q.PushBack(frames...)
	return q
}

// PushFront inserts frames at the head of the queue, preserving their
// relative order (frames[0] becomes the very next frame popped) — the
// operation structural nodes use to expand into their children.
func (q *Queue) PushFront(frames ...state.EffectFrame) {
	for i := len(frames) - 1; i >= 0; i-- {
		q.frames.PushFront(frames[i])
	}
}

// PushBack appends frames to the tail, preserving order.
func (q *Queue) PushBack(frames ...state.EffectFrame) {
	for _, f := range frames {
		q.frames.PushBack(f)
	}
}

// PopFront removes and returns the head frame. The bool is false if the
// queue is empty.
func (q *Queue) PopFront() (state.EffectFrame, bool) {
	front := q.frames.Front()
	if front == nil {
		return state.EffectFrame{}, false
	}
	q.frames.Remove(front)
	return front.Value.(state.EffectFrame), true
}

// Empty reports whether the queue has no remaining work.
func (q *Queue) Empty() bool {
	return q.frames.Len() == 0
}

// Snapshot returns every remaining frame in resolution order, without
// draining the queue — the representation stored on a suspended
// ContinuationEntry.
func (q *Queue) Snapshot() []state.EffectFrame {
	out := make([]state.EffectFrame, 0, q.frames.Len())
	for e := q.frames.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(state.EffectFrame))
	}
	return out
}
