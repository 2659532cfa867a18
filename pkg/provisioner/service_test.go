// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

func newTestService(client ResourceClient, budget time.Duration) *Service {
	logger := logging.NewNoopLogger()
	cfg := Config{Salt: "test-salt", PollInitial: 10 * time.Millisecond, PollBudget: budget}
	return NewService(client, cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logger), logger)
}

func TestResourceNameIsDeterministicAndNamespaced(t *testing.T) {
	svc := newTestService(NewInMemoryResourceClient(), time.Second)

	name := svc.ResourceName(KindColumns, "org-1")
	if name != svc.ResourceName(KindColumns, "org-1") {
		t.Error("expected stable name for the same organization")
	}
	if len(name) != len("columns_")+resourceNameLen {
		t.Errorf("unexpected name length for %q", name)
	}
	if name == svc.ResourceName(KindColumns, "org-2") {
		t.Error("expected different organizations to get different names")
	}
	if name == svc.ResourceName(KindItems, "org-1") {
		t.Error("expected kinds to get different names")
	}

	other := NewService(NewInMemoryResourceClient(), Config{Salt: "other-salt"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("onboarding-service", logging.NewNoopLogger()), logging.NewNoopLogger())
	if name == other.ResourceName(KindColumns, "org-1") {
		t.Error("expected the namespace salt to change resource names")
	}
}

func TestEnsureProvisionedCreatesBothResources(t *testing.T) {
	client := NewInMemoryResourceClient()
	svc := newTestService(client, 5*time.Second)

	if err := svc.EnsureProvisioned(context.Background(), "org-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, kind := range []ResourceKind{KindColumns, KindItems} {
		state, err := client.Describe(context.Background(), svc.ResourceName(kind, "org-1"))
		if err != nil {
			t.Fatalf("describe %s: %v", kind, err)
		}
		if state != StateActive {
			t.Errorf("expected %s resource active, got %q", kind, state)
		}
	}
}

func TestEnsureProvisionedShortCircuitsOnActive(t *testing.T) {
	client := NewInMemoryResourceClient()
	svc := newTestService(client, 5*time.Second)
	client.SetState(svc.ResourceName(KindColumns, "org-1"), StateActive)
	client.SetState(svc.ResourceName(KindItems, "org-1"), StateActive)
	// Any creation attempt would now fail the test.
	client.CreateReturns = fmt.Errorf("create must not be called")

	if err := svc.EnsureProvisioned(context.Background(), "org-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// scriptedClient replays a fixed Describe sequence and loses every
// creation race, simulating a concurrent creator.
type scriptedClient struct {
	describes []State
	idx       int
}

func (c *scriptedClient) Describe(context.Context, string) (State, error) {
	if c.idx >= len(c.describes) {
		return StateActive, nil
	}
	state := c.describes[c.idx]
	c.idx++
	return state, nil
}

func (c *scriptedClient) Create(context.Context, string, string, ResourceKind) error {
	return ErrAlreadyCreating
}

func TestEnsureProvisionedConvergesPastConcurrentCreator(t *testing.T) {
	client := &scriptedClient{describes: []State{
		StateMissing,  // columns: triggers the lost creation race
		StateCreating, // columns: first poll
		StateActive,   // columns: second poll
		StateActive,   // items
	}}
	svc := newTestService(client, 5*time.Second)

	if err := svc.EnsureProvisioned(context.Background(), "org-1"); err != nil {
		t.Fatalf("expected lost creation race to converge, got %v", err)
	}
}

func TestEnsureProvisionedPendingOnBudgetExhaustion(t *testing.T) {
	client := NewInMemoryResourceClient()
	client.ActivateAfter = 1 << 30
	svc := newTestService(client, 50*time.Millisecond)
	client.SetState(svc.ResourceName(KindColumns, "org-1"), StateCreating)

	err := svc.EnsureProvisioned(context.Background(), "org-1")
	if !errors.Is(err, ErrProvisioningPending) {
		t.Fatalf("expected ErrProvisioningPending, got %v", err)
	}
}

func TestEnsureProvisionedPropagatesDescribeFailure(t *testing.T) {
	client := &failingClient{err: fmt.Errorf("registry unavailable")}
	svc := newTestService(client, time.Second)

	err := svc.EnsureProvisioned(context.Background(), "org-1")
	if err == nil || errors.Is(err, ErrProvisioningPending) {
		t.Fatalf("expected a hard error, got %v", err)
	}
}

type failingClient struct {
	err error
}

func (c *failingClient) Describe(context.Context, string) (State, error) {
	return StateMissing, c.err
}

func (c *failingClient) Create(context.Context, string, string, ResourceKind) error {
	return c.err
}
