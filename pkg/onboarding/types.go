// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

// RegistrationEvent is the identity-confirmed payload delivered by the
// Kratos registration webhook. Unknown fields are dropped; missing
// required fields fail closed at the handler.
type RegistrationEvent struct {
	ID     string             `json:"id"`
	Traits RegistrationTraits `json:"traits"`
}

type RegistrationTraits struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
}
