// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
)

var _ ResourceClient = (*PostgresResourceClient)(nil)

// PostgresResourceClient realizes tenant resources as per-tenant tables,
// tracked through the tenant_resources registry. The registry row is the
// creation guard, the table DDL is idempotent.
type PostgresResourceClient struct {
	db db.DBClientInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *PostgresResourceClient) Describe(ctx context.Context, name string) (State, error) {
	ctx, span := c.tracer.Start(ctx, "provisioner.PostgresResourceClient.Describe")
	defer span.End()

	var status string
	err := c.db.Statement(ctx).
		Select("status").
		From("tenant_resources").
		Where(sq.Eq{"resource_name": name}).
		QueryRowContext(ctx).
		Scan(&status)

	if errors.Is(err, pgx.ErrNoRows) {
		return StateMissing, nil
	}
	if err != nil {
		return StateMissing, fmt.Errorf("failed to describe resource: %w", err)
	}

	switch status {
	case string(StateActive):
		return StateActive, nil
	default:
		return StateCreating, nil
	}
}

func (c *PostgresResourceClient) Create(ctx context.Context, name, orgID string, kind ResourceKind) error {
	ctx, span := c.tracer.Start(ctx, "provisioner.PostgresResourceClient.Create")
	defer span.End()

	// Claim the registry row first; a unique violation means a concurrent
	// creator holds the resource.
	_, err := c.db.Statement(ctx).
		Insert("tenant_resources").
		Columns("resource_name", "organization_id", "kind", "status").
		Values(name, orgID, string(kind), string(StateCreating)).
		ExecContext(ctx)

	if storage.IsDuplicateKeyError(err) {
		return ErrAlreadyCreating
	}
	if err != nil {
		return fmt.Errorf("failed to register resource: %w", err)
	}

	if err := c.db.RawExec(ctx, c.tableDDL(name, kind)); err != nil {
		return fmt.Errorf("failed to create tenant table: %w", err)
	}

	_, err = c.db.Statement(ctx).
		Update("tenant_resources").
		Set("status", string(StateActive)).
		Where(sq.Eq{"resource_name": name}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to activate resource: %w", err)
	}

	return nil
}

func (c *PostgresResourceClient) tableDDL(name string, kind ResourceKind) string {
	table := pgx.Identifier{name}.Sanitize()
	switch kind {
	case KindColumns:
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, table)
	default:
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, table)
	}
}

func NewPostgresResourceClient(c db.DBClientInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *PostgresResourceClient {
	return &PostgresResourceClient{
		db:     c,
		tracer: tracer,
		logger: logger,
	}
}
