// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import "sync"

// notifier fans a commit signal out to every active watch stream. Signal
// channels have capacity one and sends never block, so a slow subscriber
// coalesces intermediate commits into a single re-query of the latest state.
// Emission order therefore matches commit order for each subscriber.
type notifier struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan struct{})}
}

// subscribe registers a new signal channel and returns it with its id.
func (n *notifier) subscribe() (int, chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch
	return id, ch
}

func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

// broadcast signals every subscriber that a transaction has committed.
func (n *notifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
