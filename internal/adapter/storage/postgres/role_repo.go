package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository over two tables: role_grants
// holds (component, role, account) tuples and components holds the
// per-component pause flag.
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Has reports whether the account holds the role within the component.
func (r *RoleRepo) Has(ctx context.Context, component domain.Component, role domain.Role, account string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM role_grants WHERE component = $1 AND role = $2 AND account = $3)`

	var has bool
	if err := r.pool.QueryRow(ctx, query, component, role, account).Scan(&has); err != nil {
		return false, fmt.Errorf("role lookup: %w", err)
	}
	return has, nil
}

// Grant records a role grant; re-granting is a no-op.
func (r *RoleRepo) Grant(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error {
	query := `INSERT INTO role_grants (component, role, account)
		VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`

	if _, err := tx.Exec(ctx, query, grant.Component, grant.Role, grant.Account); err != nil {
		return fmt.Errorf("insert role grant: %w", err)
	}
	return nil
}

// Revoke removes a role grant; revoking an absent grant is a no-op.
func (r *RoleRepo) Revoke(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error {
	query := `DELETE FROM role_grants WHERE component = $1 AND role = $2 AND account = $3`

	if _, err := tx.Exec(ctx, query, grant.Component, grant.Role, grant.Account); err != nil {
		return fmt.Errorf("delete role grant: %w", err)
	}
	return nil
}

// IsPaused reads the component's pause flag. An unseeded component is
// treated as unpaused.
func (r *RoleRepo) IsPaused(ctx context.Context, component domain.Component) (bool, error) {
	query := `SELECT paused FROM components WHERE component = $1`

	var paused bool
	err := r.pool.QueryRow(ctx, query, component).Scan(&paused)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("pause lookup: %w", err)
	}
	return paused, nil
}

// SetPaused writes the component's pause flag.
func (r *RoleRepo) SetPaused(ctx context.Context, tx pgx.Tx, component domain.Component, paused bool) error {
	query := `UPDATE components SET paused = $2 WHERE component = $1`

	tag, err := tx.Exec(ctx, query, component, paused)
	if err != nil {
		return fmt.Errorf("set paused: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set paused: component %s not seeded", component)
	}
	return nil
}

// EnsureComponent seeds the component row unpaused, keeping an existing flag.
func (r *RoleRepo) EnsureComponent(ctx context.Context, tx pgx.Tx, component domain.Component) error {
	query := `INSERT INTO components (component, paused)
		VALUES ($1, FALSE) ON CONFLICT DO NOTHING`

	if _, err := tx.Exec(ctx, query, component); err != nil {
		return fmt.Errorf("ensure component: %w", err)
	}
	return nil
}
