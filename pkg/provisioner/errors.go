// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"errors"
	"time"
)

// ErrProvisioningPending signals that tenant storage exists but has not
// reached the active state within the poll budget. Callers surface it as
// a retryable "not ready yet" response, never as a hard failure.
var ErrProvisioningPending = errors.New("tenant storage is still provisioning")

// ErrAlreadyCreating is returned by ResourceClient.Create when a concurrent
// creator holds the resource. The provisioner treats it as success and
// proceeds to poll.
var ErrAlreadyCreating = errors.New("resource is already being created")

// SuggestedRetryAfter is the backoff hint handed to clients alongside
// ErrProvisioningPending.
const SuggestedRetryAfter = 5 * time.Second
