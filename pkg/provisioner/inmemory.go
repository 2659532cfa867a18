// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"sync"
)

var _ ResourceClient = (*InMemoryResourceClient)(nil)

// InMemoryResourceClient is a test double with an asynchronous-creation
// knob: a created resource stays in the creating state for
// ActivateAfter describes before turning active.
type InMemoryResourceClient struct {
	mu     sync.Mutex
	states map[string]State
	polls  map[string]int

	// ActivateAfter is how many Describe calls a creating resource
	// absorbs before flipping to active. Zero activates immediately.
	ActivateAfter int
	// CreateReturns overrides the Create result when non-nil.
	CreateReturns error
}

func NewInMemoryResourceClient() *InMemoryResourceClient {
	return &InMemoryResourceClient{
		states: map[string]State{},
		polls:  map[string]int{},
	}
}

// SetState seeds a resource in a given state.
func (c *InMemoryResourceClient) SetState(name string, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[name] = state
}

func (c *InMemoryResourceClient) Describe(_ context.Context, name string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.states[name]
	if !ok {
		return StateMissing, nil
	}

	if state == StateCreating {
		c.polls[name]++
		if c.polls[name] > c.ActivateAfter {
			c.states[name] = StateActive
			return StateActive, nil
		}
	}
	return c.states[name], nil
}

func (c *InMemoryResourceClient) Create(_ context.Context, name, _ string, _ ResourceKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.CreateReturns != nil {
		return c.CreateReturns
	}
	if _, ok := c.states[name]; ok {
		return ErrAlreadyCreating
	}
	c.states[name] = StateCreating
	return nil
}
