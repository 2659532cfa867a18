// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const (
	orgColumns    = "id, name, type, seat_limit, seats_used, plan, payment_status, COALESCE(stripe_customer_id, ''), created_at"
	userColumns   = "id, email, display_name, organization_id, role, access_suspended, created_at"
	inviteColumns = "id, email, organization_id, role, status, invited_by, created_at, COALESCE(expires_at, 'epoch'::timestamptz), accepted_at, COALESCE(accepted_user_id, '')"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select(orgColumns).
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Type, &o.SeatLimit, &o.SeatsUsed, &o.Plan, &o.PaymentStatus, &o.StripeCustomerID, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

// CreateOrganization is a create-if-absent conditional put.
func (s *Storage) CreateOrganization(ctx context.Context, org *types.Organization) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "type", "seat_limit", "seats_used", "plan", "payment_status").
		Values(org.ID, org.Name, org.Type, org.SeatLimit, org.SeatsUsed, org.Plan, org.PaymentStatus).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return nil
}

func (s *Storage) UpdateOrganizationPayment(ctx context.Context, id string, status types.PaymentStatus, plan, stripeCustomerID string, seatLimit int) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationPayment")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("organizations").
		Set("payment_status", status).
		Where(sq.Eq{"id": id})

	if plan != "" {
		query = query.Set("plan", plan)
	}
	if stripeCustomerID != "" {
		query = query.Set("stripe_customer_id", stripeCustomerID)
	}
	if seatLimit > 0 {
		query = query.Set("seat_limit", seatLimit)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update organization payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// IncrementSeatsUsed adjusts the advisory seats_used cache. The cache is
// never authoritative, the live count recomputation is.
func (s *Storage) IncrementSeatsUsed(ctx context.Context, orgID string, delta int) error {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementSeatsUsed")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("organizations").
		Set("seats_used", sq.Expr("GREATEST(seats_used + ?, 0)", delta)).
		Where(sq.Eq{"id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to increment seats used: %w", err)
	}
	return nil
}

func (s *Storage) SetSeatsUsed(ctx context.Context, orgID string, seats int) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetSeatsUsed")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("organizations").
		Set("seats_used", seats).
		Where(sq.Eq{"id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set seats used: %w", err)
	}
	return nil
}

func (s *Storage) CountUsersByOrganization(ctx context.Context, orgID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsersByOrganization")
	defer span.End()

	var n int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"organization_id": orgID}).
		QueryRowContext(ctx).
		Scan(&n)

	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.DisplayName, &u.OrganizationID, &u.Role, &u.AccessSuspended, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// CreateUser is a create-if-absent conditional put keyed by the identity
// provider's stable username. A replayed trigger gets ErrDuplicateKey and
// must not double-count a seat.
func (s *Storage) CreateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "display_name", "organization_id", "role", "access_suspended").
		Values(user.ID, user.Email, user.DisplayName, user.OrganizationID, user.Role, user.AccessSuspended).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *Storage) SetUserSuspended(ctx context.Context, userID string, suspended bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserSuspended")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("access_suspended", suspended).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set user suspension: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetOrganizationUsersSuspended(ctx context.Context, orgID string, suspended bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrganizationUsersSuspended")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("access_suspended", suspended).
		Where(sq.Eq{"organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set suspension for organization users: %w", err)
	}
	return nil
}

func (s *Storage) GetInvite(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvite")
	defer span.End()

	var i types.Invite
	err := s.db.Statement(ctx).
		Select(inviteColumns).
		From("invites").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.OrganizationID, &i.Role, &i.Status, &i.InvitedBy, &i.CreatedAt, &i.ExpiresAt, &i.AcceptedAt, &i.AcceptedUserID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("invites").
		Columns("id", "email", "organization_id", "role", "status", "invited_by", "expires_at").
		Values(invite.ID, invite.Email, invite.OrganizationID, invite.Role, invite.Status, invite.InvitedBy, invite.ExpiresAt).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create invite: %w", err)
	}

	return nil
}

// ScanPendingInvitesByEmail is the filtered-scan fallback for legacy rows
// whose id is not the normalized email. Data-migration debt, not a feature.
func (s *Storage) ScanPendingInvitesByEmail(ctx context.Context, email string, limit uint64) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ScanPendingInvitesByEmail")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(inviteColumns).
		From("invites").
		Where(sq.Eq{"status": types.InvitePending}).
		Where("LOWER(email) = ?", email).
		Limit(limit)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		var i types.Invite
		if err := rows.Scan(&i.ID, &i.Email, &i.OrganizationID, &i.Role, &i.Status, &i.InvitedBy, &i.CreatedAt, &i.ExpiresAt, &i.AcceptedAt, &i.AcceptedUserID); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) CountPendingInvitesByOrganization(ctx context.Context, orgID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPendingInvitesByOrganization")
	defer span.End()

	var n int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invites").
		Where(sq.Eq{
			"organization_id": orgID,
			"status":          types.InvitePending,
		}).
		QueryRowContext(ctx).
		Scan(&n)

	if err != nil {
		return 0, fmt.Errorf("failed to count pending invites: %w", err)
	}
	return n, nil
}

// AcceptInvite performs the guarded PENDING->ACCEPTED transition. At most
// one caller can ever succeed for a given invite; everyone else gets
// ErrConditionFailed. This is the sole serialization point.
func (s *Storage) AcceptInvite(ctx context.Context, inviteID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", types.InviteAccepted).
		Set("accepted_user_id", userID).
		Set("accepted_at", time.Now().UTC()).
		Where(sq.Eq{"id": inviteID, "status": types.InvitePending}).
		Where(sq.Or{
			sq.Eq{"accepted_user_id": nil},
			sq.Eq{"accepted_user_id": userID},
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to accept invite: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrConditionFailed
	}

	return nil
}

func (s *Storage) RevokeInvite(ctx context.Context, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", types.InviteRevoked).
		Where(sq.Eq{"id": inviteID, "status": types.InvitePending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke invite: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrConditionFailed
	}

	return nil
}
