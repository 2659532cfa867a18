// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package provisioner lazily creates per-tenant storage resources and
// waits for their asynchronous creation to finish. "Still creating" is a
// recoverable state, not an error.
package provisioner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// ResourceKind names one of the two tenant-scoped resources.
type ResourceKind string

const (
	KindColumns ResourceKind = "columns"
	KindItems   ResourceKind = "items"
)

const resourceNameLen = 16

// errNotActiveYet drives the poll loop; it never escapes the package.
var errNotActiveYet = errors.New("resource not active yet")

// Config bounds the poll loop. The budget must stay within the upstream
// request's timeout.
type Config struct {
	// Salt namespaces resource names so deployments sharing a prefix
	// cannot collide.
	Salt        string
	PollInitial time.Duration
	PollMax     time.Duration
	PollBudget  time.Duration
}

type Service struct {
	client ResourceClient
	cfg    Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResourceName derives the storage name for one tenant resource. The name
// is a one-way function of the organization id, never of any
// user-controlled display string.
func (s *Service) ResourceName(kind ResourceKind, orgID string) string {
	sum := sha256.Sum256([]byte(s.cfg.Salt + orgID))
	return fmt.Sprintf("%s_%s", kind, hex.EncodeToString(sum[:])[:resourceNameLen])
}

// EnsureProvisioned brings both tenant resources to the active state,
// creating them when missing. A creation attempt lost to a concurrent
// creator counts as success. When a resource does not become active
// within the poll budget the call returns ErrProvisioningPending.
func (s *Service) EnsureProvisioned(ctx context.Context, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.EnsureProvisioned")
	defer span.End()

	for _, kind := range []ResourceKind{KindColumns, KindItems} {
		if err := s.ensureResource(ctx, kind, orgID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ensureResource(ctx context.Context, kind ResourceKind, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ensureResource")
	defer span.End()

	name := s.ResourceName(kind, orgID)

	state, err := s.client.Describe(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to describe resource %s: %w", name, err)
	}

	switch state {
	case StateActive:
		return nil
	case StateMissing:
		err := s.client.Create(ctx, name, orgID, kind)
		switch {
		case err == nil:
		case errors.Is(err, ErrAlreadyCreating):
			// Someone else is creating it, polling below covers us.
			s.logger.Debugf("resource %s already being created, waiting", name)
		default:
			return fmt.Errorf("failed to create resource %s: %w", name, err)
		}
	case StateCreating:
		// Fall through to the poll.
	}

	return s.waitForActive(ctx, name)
}

// waitForActive polls describe with bounded exponential backoff.
// Exhaustion surfaces as a pending signal rather than blocking.
func (s *Service) waitForActive(ctx context.Context, name string) error {
	poll := func() (State, error) {
		state, err := s.client.Describe(ctx, name)
		if err != nil {
			return state, backoff.Permanent(fmt.Errorf("failed to describe resource %s: %w", name, err))
		}
		if state != StateActive {
			return state, errNotActiveYet
		}
		return state, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.cfg.PollInitial
	bo.MaxInterval = s.cfg.PollMax

	_, err := backoff.Retry(ctx, poll,
		backoff.WithBackOff(bo),
		backoff.WithMaxElapsedTime(s.cfg.PollBudget),
	)
	if errors.Is(err, errNotActiveYet) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Infof("resource %s still provisioning after %s", name, s.cfg.PollBudget)
		return ErrProvisioningPending
	}
	if err != nil {
		return err
	}
	return nil
}

func NewService(
	client ResourceClient,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if cfg.PollInitial <= 0 {
		cfg.PollInitial = 100 * time.Millisecond
	}
	if cfg.PollMax <= 0 {
		cfg.PollMax = time.Second
	}
	if cfg.PollBudget <= 0 {
		cfg.PollBudget = 10 * time.Second
	}

	return &Service{
		client:  client,
		cfg:     cfg,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
