package service

import (
	"context"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccessServiceImpl implements ports.AccessService. It is the leaf component:
// every other service consults it for role checks and the pause flag.
type AccessServiceImpl struct {
	roleRepo   ports.RoleRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewAccessService creates a new AccessServiceImpl.
func NewAccessService(roleRepo ports.RoleRepository, transactor ports.DBTransactor, log zerolog.Logger) *AccessServiceImpl {
	return &AccessServiceImpl{
		roleRepo:   roleRepo,
		transactor: transactor,
		log:        log,
	}
}

// Grant gives `account` the role within `component`. ADMIN-gated, idempotent.
func (s *AccessServiceImpl) Grant(ctx context.Context, caller string, component domain.Component, role domain.Role, account string) error {
	if !domain.ValidRole(role) {
		return apperror.Validation(fmt.Sprintf("unknown role %q", role))
	}
	if err := s.RequireRole(ctx, component, domain.RoleAdmin, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	grant := domain.RoleGrant{Component: component, Role: role, Account: account}
	if err := s.roleRepo.Grant(ctx, tx, grant); err != nil {
		return apperror.InternalError(fmt.Errorf("grant role: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("component", string(component)).
		Str("role", string(role)).
		Str("account", account).
		Msg("role granted")

	return nil
}

// Revoke removes the role. ADMIN-gated, idempotent.
func (s *AccessServiceImpl) Revoke(ctx context.Context, caller string, component domain.Component, role domain.Role, account string) error {
	if err := s.RequireRole(ctx, component, domain.RoleAdmin, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	grant := domain.RoleGrant{Component: component, Role: role, Account: account}
	if err := s.roleRepo.Revoke(ctx, tx, grant); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke role: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("component", string(component)).
		Str("role", string(role)).
		Str("account", account).
		Msg("role revoked")

	return nil
}

// HasRole is a pure lookup.
func (s *AccessServiceImpl) HasRole(ctx context.Context, component domain.Component, role domain.Role, account string) (bool, error) {
	has, err := s.roleRepo.Has(ctx, component, role, account)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("role lookup: %w", err))
	}
	return has, nil
}

// Pause sets the component's pause flag. PAUSER-gated.
func (s *AccessServiceImpl) Pause(ctx context.Context, caller string, component domain.Component) error {
	return s.setPaused(ctx, caller, component, true)
}

// Unpause clears the component's pause flag. PAUSER-gated.
func (s *AccessServiceImpl) Unpause(ctx context.Context, caller string, component domain.Component) error {
	return s.setPaused(ctx, caller, component, false)
}

func (s *AccessServiceImpl) setPaused(ctx context.Context, caller string, component domain.Component, paused bool) error {
	if err := s.RequireRole(ctx, component, domain.RolePauser, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.roleRepo.SetPaused(ctx, tx, component, paused); err != nil {
		return apperror.InternalError(fmt.Errorf("set paused: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Warn().
		Str("component", string(component)).
		Bool("paused", paused).
		Str("caller", caller).
		Msg("pause flag changed")

	return nil
}

// Paused reads the component's pause flag.
func (s *AccessServiceImpl) Paused(ctx context.Context, component domain.Component) (bool, error) {
	paused, err := s.roleRepo.IsPaused(ctx, component)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("pause lookup: %w", err))
	}
	return paused, nil
}

// RequireRole fails closed with Unauthorized{role, caller}.
func (s *AccessServiceImpl) RequireRole(ctx context.Context, component domain.Component, role domain.Role, caller string) error {
	has, err := s.roleRepo.Has(ctx, component, role, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("role lookup: %w", err))
	}
	if !has {
		return apperror.ErrUnauthorized(string(role), caller)
	}
	return nil
}

// RequireActive fails closed with Paused when the component's flag is set.
func (s *AccessServiceImpl) RequireActive(ctx context.Context, component domain.Component) error {
	paused, err := s.roleRepo.IsPaused(ctx, component)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("pause lookup: %w", err))
	}
	if paused {
		return apperror.ErrPaused(string(component))
	}
	return nil
}

// Bootstrap seeds the pause flags and grants ADMIN + PAUSER on every
// component to the admin account. Safe to run on every startup.
func (s *AccessServiceImpl) Bootstrap(ctx context.Context, admin string) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, component := range domain.Components() {
		if err := s.roleRepo.EnsureComponent(ctx, tx, component); err != nil {
			return apperror.InternalError(fmt.Errorf("ensure component %s: %w", component, err))
		}
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RolePauser} {
			grant := domain.RoleGrant{Component: component, Role: role, Account: admin}
			if err := s.roleRepo.Grant(ctx, tx, grant); err != nil {
				return apperror.InternalError(fmt.Errorf("bootstrap grant %s/%s: %w", component, role, err))
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("admin", admin).Msg("access registry bootstrapped")
	return nil
}
