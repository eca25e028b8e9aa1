// Package temporal is the temporal entity store: append-only, per-identity
// version history selected by business-effective "as of" dates.
package temporal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/ledger"
	"github.com/pwallin/corpgraph/internal/repository"

	"github.com/google/uuid"
)

const lockStripes = 64

// Store serializes mutations per entity identity while keeping reads pure.
// Concurrent writes to different identities proceed independently; a
// projection never observes a half-written record because versions are only
// ever appended.
type Store struct {
	versions repository.EntityVersionRepository
	ledger   *ledger.Service
	locks    [lockStripes]sync.Mutex
}

// NewStore creates a temporal store. The ledger may be nil for callers that
// record change history themselves.
func NewStore(versions repository.EntityVersionRepository, ledgerSvc *ledger.Service) *Store {
	return &Store{versions: versions, ledger: ledgerSvc}
}

func (s *Store) lockFor(id uuid.UUID) *sync.Mutex {
	return &s.locks[int(id[0])%lockStripes]
}

// PutEntity appends a new version effective at effectiveAsOf. A prior version
// is never overwritten. An effective date earlier than the identity's latest
// version is rejected with ErrTemporalOrder so history stays monotonic.
func (s *Store) PutEntity(ctx context.Context, entity domain.Entity, effectiveAsOf time.Time) (domain.Entity, error) {
	entity.EffectiveFrom = effectiveAsOf
	if err := entity.Validate(); err != nil {
		return domain.Entity{}, err
	}

	lock := s.lockFor(entity.ID)
	lock.Lock()
	defer lock.Unlock()

	var previous *domain.Entity
	operation := domain.ChangeOpCreate

	latest, err := s.versions.Latest(ctx, entity.ID)
	switch {
	case err == nil:
		if effectiveAsOf.Before(latest.EffectiveFrom) {
			return domain.Entity{}, fmt.Errorf("entity %s: effective date %s before latest version %s: %w",
				entity.ID, effectiveAsOf.Format("2006-01-02"), latest.EffectiveFrom.Format("2006-01-02"), domain.ErrTemporalOrder)
		}
		prev := latest
		previous = &prev
		operation = domain.ChangeOpUpdate
		entity.OrganizationID = latest.OrganizationID
		entity.CreatedAt = latest.CreatedAt
		entity.Version = latest.Version + 1
	case errors.Is(err, domain.ErrNotFound):
		entity.Version = 1
	default:
		return domain.Entity{}, fmt.Errorf("failed to load latest version: %w", err)
	}

	// Uniqueness is checked against validity windows, not the write instant,
	// so a backdated create cannot slip under an identity that takes the pair
	// later.
	inUse, err := s.versions.NameCodeInUse(ctx, entity.OrganizationID, entity.Name, entity.Code, entity.ID, effectiveAsOf)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to check name/code uniqueness: %w", err)
	}
	if inUse {
		return domain.Entity{}, fmt.Errorf("%w: (%s, %s) already in use on or after %s",
			domain.ErrValidation, entity.Name, entity.Code, effectiveAsOf.Format("2006-01-02"))
	}

	return s.append(ctx, previous, entity, operation)
}

// append persists a version, with its ledger record when a ledger is wired.
// The version and the record land together or not at all.
func (s *Store) append(ctx context.Context, previous *domain.Entity, entity domain.Entity, operation domain.ChangeOp) (domain.Entity, error) {
	if s.ledger == nil {
		appended, err := s.versions.Append(ctx, entity)
		if err != nil {
			return domain.Entity{}, fmt.Errorf("failed to append entity version: %w", err)
		}
		return appended, nil
	}

	changes, err := domain.ComputeFieldChanges(previous, &entity)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to diff entity versions: %w", err)
	}
	record, err := s.ledger.Prepare(ctx, entity.ID, operation, changes, time.Time{})
	if err != nil {
		return domain.Entity{}, err
	}

	appended, err := s.versions.AppendWithChange(ctx, entity, record)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to append entity version: %w", err)
	}
	return appended, nil
}

// TerminateEntity appends a version carrying a termination date, after which
// the entity disappears from projections. Logged as a delete.
func (s *Store) TerminateEntity(ctx context.Context, id uuid.UUID, terminated time.Time) (domain.Entity, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	latest, err := s.versions.Latest(ctx, id)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to load entity %s: %w", id, err)
	}
	if terminated.Before(latest.EffectiveFrom) {
		return domain.Entity{}, fmt.Errorf("entity %s: termination %s before latest version %s: %w",
			id, terminated.Format("2006-01-02"), latest.EffectiveFrom.Format("2006-01-02"), domain.ErrTemporalOrder)
	}

	next := latest.WithTermination(terminated)
	next.Version = latest.Version + 1
	next.EffectiveFrom = terminated

	return s.append(ctx, &latest, next, domain.ChangeOpDelete)
}

// GetEntity returns the version visible at asOf: the latest version with
// effective date on or before asOf whose termination, if any, is after asOf.
func (s *Store) GetEntity(ctx context.Context, id uuid.UUID, asOf time.Time) (domain.Entity, error) {
	entity, err := s.versions.At(ctx, id, asOf)
	if err != nil {
		return domain.Entity{}, err
	}
	if !entity.VisibleAt(asOf) {
		return domain.Entity{}, fmt.Errorf("entity %s not visible at %s: %w", id, asOf.Format("2006-01-02"), domain.ErrNotFound)
	}
	return entity, nil
}

// ListEntities returns all entities visible at asOf, optionally filtered.
func (s *Store) ListEntities(ctx context.Context, organizationID uuid.UUID, asOf time.Time, filter *domain.EntityFilter) ([]domain.Entity, error) {
	candidates, err := s.versions.ListAt(ctx, organizationID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	entities := make([]domain.Entity, 0, len(candidates))
	for _, entity := range candidates {
		if !entity.VisibleAt(asOf) {
			continue
		}
		if filter != nil && !filter.Matches(entity) {
			continue
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Versions returns the full append-only history of an entity identity.
func (s *Store) Versions(ctx context.Context, id uuid.UUID) ([]domain.Entity, error) {
	return s.versions.Versions(ctx, id)
}

// EntitiesAt satisfies the scenario base provider: the main universe at asOf.
func (s *Store) EntitiesAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.Entity, error) {
	return s.ListEntities(ctx, organizationID, asOf, nil)
}
