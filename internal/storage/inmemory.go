// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/canonical/onboarding-service/internal/types"
)

var _ StorageInterface = (*InMemory)(nil)

// InMemory is a Tenant Store double with the same conditional-write
// semantics as the Postgres implementation. Used by tests exercising the
// reconciliation and provisioning flows.
type InMemory struct {
	mu sync.Mutex

	orgs    map[string]*types.Organization
	users   map[string]*types.User
	invites map[string]*types.Invite
}

func NewInMemory() *InMemory {
	return &InMemory{
		orgs:    make(map[string]*types.Organization),
		users:   make(map[string]*types.User),
		invites: make(map[string]*types.Invite),
	}
}

func (s *InMemory) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orgs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *InMemory) CreateOrganization(ctx context.Context, org *types.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orgs[org.ID]; ok {
		return ErrDuplicateKey
	}
	cp := *org
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.orgs[org.ID] = &cp
	return nil
}

func (s *InMemory) UpdateOrganizationPayment(ctx context.Context, id string, status types.PaymentStatus, plan, stripeCustomerID string, seatLimit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orgs[id]
	if !ok {
		return ErrNotFound
	}
	o.PaymentStatus = status
	if plan != "" {
		o.Plan = plan
	}
	if stripeCustomerID != "" {
		o.StripeCustomerID = stripeCustomerID
	}
	if seatLimit > 0 {
		o.SeatLimit = seatLimit
	}
	return nil
}

func (s *InMemory) IncrementSeatsUsed(ctx context.Context, orgID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orgs[orgID]
	if !ok {
		return nil
	}
	o.SeatsUsed += delta
	if o.SeatsUsed < 0 {
		o.SeatsUsed = 0
	}
	return nil
}

func (s *InMemory) SetSeatsUsed(ctx context.Context, orgID string, seats int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.orgs[orgID]; ok {
		o.SeatsUsed = seats
	}
	return nil
}

func (s *InMemory) CountUsersByOrganization(ctx context.Context, orgID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, u := range s.users {
		if u.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) GetUser(ctx context.Context, id string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *InMemory) CreateUser(ctx context.Context, user *types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return ErrDuplicateKey
	}
	cp := *user
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.users[user.ID] = &cp
	return nil
}

func (s *InMemory) SetUserSuspended(ctx context.Context, userID string, suspended bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.AccessSuspended = suspended
	return nil
}

func (s *InMemory) SetOrganizationUsersSuspended(ctx context.Context, orgID string, suspended bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.OrganizationID == orgID {
			u.AccessSuspended = suspended
		}
	}
	return nil
}

func (s *InMemory) GetInvite(ctx context.Context, id string) (*types.Invite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.invites[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (s *InMemory) CreateInvite(ctx context.Context, invite *types.Invite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invites[invite.ID]; ok {
		return ErrDuplicateKey
	}
	cp := *invite
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.invites[invite.ID] = &cp
	return nil
}

func (s *InMemory) ScanPendingInvitesByEmail(ctx context.Context, email string, limit uint64) ([]*types.Invite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*types.Invite
	for _, i := range s.invites {
		if uint64(len(out)) >= limit {
			break
		}
		if i.Status == types.InvitePending && strings.EqualFold(i.Email, email) {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) CountPendingInvitesByOrganization(ctx context.Context, orgID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, i := range s.invites {
		if i.OrganizationID == orgID && i.Status == types.InvitePending {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) AcceptInvite(ctx context.Context, inviteID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.invites[inviteID]
	if !ok {
		return ErrConditionFailed
	}
	if i.Status != types.InvitePending {
		return ErrConditionFailed
	}
	if i.AcceptedUserID != "" && i.AcceptedUserID != userID {
		return ErrConditionFailed
	}
	now := time.Now().UTC()
	i.Status = types.InviteAccepted
	i.AcceptedUserID = userID
	i.AcceptedAt = &now
	return nil
}

func (s *InMemory) RevokeInvite(ctx context.Context, inviteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.invites[inviteID]
	if !ok || i.Status != types.InvitePending {
		return ErrConditionFailed
	}
	i.Status = types.InviteRevoked
	return nil
}
