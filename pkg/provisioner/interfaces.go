// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import "context"

// State of a single tenant-scoped storage resource.
type State string

const (
	StateMissing  State = "missing"
	StateCreating State = "creating"
	StateActive   State = "active"
)

// ResourceClient abstracts the backing store's asynchronous resource
// lifecycle. Describe never errors for an absent resource, it reports
// StateMissing.
type ResourceClient interface {
	Describe(ctx context.Context, name string) (State, error)
	Create(ctx context.Context, name, orgID string, kind ResourceKind) error
}

type ServiceInterface interface {
	EnsureProvisioned(ctx context.Context, orgID string) error
}
