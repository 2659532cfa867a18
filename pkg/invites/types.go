// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

// InviteRequest is a single (email, role) pair from the invite-send payload.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=ADMIN EDITOR VIEWER"`
}

type SendInvitesRequest struct {
	Invites []InviteRequest `json:"invites" validate:"required,min=1,dive"`
}

// InviteResult is the per-address outcome of an invite-send call. Partial
// failures are reported here, never as a single aggregate failure.
type InviteResult struct {
	Email        string `json:"email"`
	Invited      bool   `json:"invited"`
	RecoveryLink string `json:"recovery_link,omitempty"`
	Error        string `json:"error,omitempty"`
}

type Report struct {
	Invited int            `json:"invited"`
	Results []InviteResult `json:"results"`
}
