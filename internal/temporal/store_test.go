package temporal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/ledger"
	"github.com/pwallin/corpgraph/internal/repository"
	"github.com/pwallin/corpgraph/internal/repository/memory"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore() (*Store, *ledger.Service) {
	mem := memory.NewStore()
	ledgerSvc := ledger.NewService(mem.ChangeLog())
	return NewStore(mem.EntityVersions(), ledgerSvc), ledgerSvc
}

func TestAsOfReadsSelectTheRightVersion(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	acme := domain.NewEntity(orgID, "Acme LLC", "ACME", domain.EntityTypeLLC, "US-DE", date(2020, 1, 1))
	created, err := store.PutEntity(ctx, acme, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}

	moved := created.WithJurisdiction("UK")
	updated, err := store.PutEntity(ctx, moved, date(2021, 6, 1))
	if err != nil {
		t.Fatalf("PutEntity update: %v", err)
	}
	if updated.Version != 2 {
		t.Fatalf("expected version 2, got %d", updated.Version)
	}

	before, err := store.GetEntity(ctx, created.ID, date(2020, 12, 31))
	if err != nil {
		t.Fatalf("GetEntity before update: %v", err)
	}
	if before.Jurisdiction != "US-DE" {
		t.Errorf("as of 2020-12-31: jurisdiction = %q, want US-DE", before.Jurisdiction)
	}

	after, err := store.GetEntity(ctx, created.ID, date(2021, 6, 2))
	if err != nil {
		t.Fatalf("GetEntity after update: %v", err)
	}
	if after.Jurisdiction != "UK" {
		t.Errorf("as of 2021-06-02: jurisdiction = %q, want UK", after.Jurisdiction)
	}

	if _, err := store.GetEntity(ctx, created.ID, date(2019, 12, 31)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("read before first effective date: err = %v, want ErrNotFound", err)
	}
}

func TestMonotonicHistoryRejectsBackdatedWrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	entity := domain.NewEntity(orgID, "Globex GmbH", "GLOBEX", domain.EntityTypeGmbH, "DE", date(2022, 3, 1))
	created, err := store.PutEntity(ctx, entity, date(2022, 3, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	if _, err := store.PutEntity(ctx, created.WithName("Globex Holding GmbH"), date(2021, 1, 1)); !errors.Is(err, domain.ErrTemporalOrder) {
		t.Fatalf("backdated write: err = %v, want ErrTemporalOrder", err)
	}

	versions, err := store.Versions(ctx, created.ID)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("rejected write must not append: got %d versions", len(versions))
	}
}

func TestSameDayUpdateIsAllowed(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	entity := domain.NewEntity(orgID, "Initech K.K.", "INITECH", domain.EntityTypeKK, "JP", date(2023, 4, 1))
	created, err := store.PutEntity(ctx, entity, date(2023, 4, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	revised, err := store.PutEntity(ctx, created.WithName("Initech Japan K.K."), date(2023, 4, 1))
	if err != nil {
		t.Fatalf("same-day update: %v", err)
	}
	if revised.Version != 2 {
		t.Fatalf("expected version 2, got %d", revised.Version)
	}

	got, err := store.GetEntity(ctx, created.ID, date(2023, 4, 1))
	if err != nil {
		t.Fatalf("GetEntity: %v", err)
	}
	if got.Name != "Initech Japan K.K." {
		t.Errorf("same-day read: name = %q, want latest version", got.Name)
	}
}

func TestNameCodeUniquenessWithinOrganization(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	first := domain.NewEntity(orgID, "Umbrella B.V.", "UMB", domain.EntityTypeBV, "NL", date(2021, 1, 1))
	if _, err := store.PutEntity(ctx, first, date(2021, 1, 1)); err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	clash := domain.NewEntity(orgID, "Umbrella B.V.", "UMB", domain.EntityTypeBV, "NL", date(2021, 1, 1))
	if _, err := store.PutEntity(ctx, clash, date(2021, 6, 1)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("duplicate (name, code): err = %v, want ErrValidation", err)
	}

	otherOrg := domain.NewEntity(uuid.New(), "Umbrella B.V.", "UMB", domain.EntityTypeBV, "NL", date(2021, 1, 1))
	if _, err := store.PutEntity(ctx, otherOrg, date(2021, 1, 1)); err != nil {
		t.Fatalf("same (name, code) in a different organization must be allowed: %v", err)
	}
}

func TestNameCodeUniquenessCoversBackdatedCreates(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	holder := domain.NewEntity(orgID, "Acme LLC", "ACME", domain.EntityTypeLLC, "US-DE", date(2021, 1, 1))
	created, err := store.PutEntity(ctx, holder, date(2021, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	// The earlier effective date does not make the pair free: both entities
	// would be visible side by side from 2021 onward.
	backdated := domain.NewEntity(orgID, "Acme LLC", "ACME", domain.EntityTypeLLC, "US-DE", date(2020, 1, 1))
	if _, err := store.PutEntity(ctx, backdated, date(2020, 1, 1)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("backdated duplicate (name, code): err = %v, want ErrValidation", err)
	}

	listed, err := store.ListEntities(ctx, orgID, date(2022, 1, 1), nil)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("duplicate pair visible at a later date: %d entities", len(listed))
	}

	// Once the holder renames away from the pair, a new identity may take it
	// from the rename date onward.
	if _, err := store.PutEntity(ctx, created.WithName("Acme Holdings LLC").WithCode("ACME-H"), date(2022, 1, 1)); err != nil {
		t.Fatalf("PutEntity rename: %v", err)
	}
	successor := domain.NewEntity(orgID, "Acme LLC", "ACME", domain.EntityTypeLLC, "US-DE", date(2022, 1, 1))
	if _, err := store.PutEntity(ctx, successor, date(2022, 1, 1)); err != nil {
		t.Fatalf("freed (name, code) must be reusable after the rename: %v", err)
	}
}

func TestTerminationHidesEntityFromLaterReads(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()

	entity := domain.NewEntity(orgID, "Wayne Ltda", "WAYNE", domain.EntityTypeLtda, "BR", date(2020, 1, 1))
	created, err := store.PutEntity(ctx, entity, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	if _, err := store.TerminateEntity(ctx, created.ID, date(2024, 7, 1)); err != nil {
		t.Fatalf("TerminateEntity: %v", err)
	}

	if _, err := store.GetEntity(ctx, created.ID, date(2023, 1, 1)); err != nil {
		t.Errorf("read before termination should succeed: %v", err)
	}
	if _, err := store.GetEntity(ctx, created.ID, date(2024, 7, 1)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("read on termination date: err = %v, want ErrNotFound", err)
	}

	listed, err := store.ListEntities(ctx, orgID, date(2025, 1, 1), nil)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("terminated entity still listed: %d entities", len(listed))
	}
}

func TestListEntitiesAppliesFilter(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	orgID := uuid.New()
	asOf := date(2024, 1, 1)

	seed := []domain.Entity{
		domain.NewEntity(orgID, "Stark Industries Inc", "STARK", domain.EntityTypeCorporation, "US-NY", date(2020, 1, 1)),
		domain.NewEntity(orgID, "Stark Europe GmbH", "STARK-EU", domain.EntityTypeGmbH, "DE", date(2021, 1, 1)),
		domain.NewEntity(orgID, "Pym Partners", "PYM", domain.EntityTypePartnership, "US-CA", date(2022, 1, 1)),
	}
	for _, e := range seed {
		if _, err := store.PutEntity(ctx, e, e.EffectiveFrom); err != nil {
			t.Fatalf("PutEntity %s: %v", e.Code, err)
		}
	}

	got, err := store.ListEntities(ctx, orgID, asOf, &domain.EntityFilter{NameContains: "stark"})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("NameContains filter: got %d entities, want 2", len(got))
	}

	got, err = store.ListEntities(ctx, orgID, asOf, &domain.EntityFilter{EntityTypes: []domain.EntityType{domain.EntityTypeGmbH}})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(got) != 1 || got[0].Code != "STARK-EU" {
		t.Fatalf("EntityTypes filter: got %v", got)
	}
}

type failingVersionRepo struct {
	repository.EntityVersionRepository
	err error
}

func (r *failingVersionRepo) AppendWithChange(context.Context, domain.Entity, domain.ChangeRecord) (domain.Entity, error) {
	return domain.Entity{}, r.err
}

func TestFailedWriteLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()
	ledgerSvc := ledger.NewService(mem.ChangeLog())
	boom := errors.New("storage offline")
	store := NewStore(&failingVersionRepo{EntityVersionRepository: mem.EntityVersions(), err: boom}, ledgerSvc)
	orgID := uuid.New()

	entity := domain.NewEntity(orgID, "Vandelay Industries Inc", "VAN", domain.EntityTypeCorporation, "US-NY", date(2022, 1, 1))
	if _, err := store.PutEntity(ctx, entity, date(2022, 1, 1)); !errors.Is(err, boom) {
		t.Fatalf("PutEntity: err = %v, want the storage error", err)
	}

	if _, err := store.Versions(ctx, entity.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("failed write left versions behind: err = %v", err)
	}
	records, err := ledgerSvc.History(ctx, entity.ID, 0, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("failed write left %d ledger records behind", len(records))
	}
}

func TestMutationsFeedTheChangeLedger(t *testing.T) {
	ctx := context.Background()
	store, ledgerSvc := newTestStore()
	orgID := uuid.New()

	entity := domain.NewEntity(orgID, "Hooli S.A.", "HOOLI", domain.EntityTypeSA, "FR", date(2022, 1, 1))
	created, err := store.PutEntity(ctx, entity, date(2022, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	if _, err := store.PutEntity(ctx, created.WithJurisdiction("LU"), date(2023, 1, 1)); err != nil {
		t.Fatalf("PutEntity update: %v", err)
	}

	records, err := ledgerSvc.History(ctx, created.ID, 0, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 ledger records, got %d", len(records))
	}
	if records[0].Operation != domain.ChangeOpCreate || records[1].Operation != domain.ChangeOpUpdate {
		t.Fatalf("operations = %s, %s", records[0].Operation, records[1].Operation)
	}

	var sawJurisdiction bool
	for _, change := range records[1].Changes {
		if change.Field == "jurisdiction" && change.Old == "FR" && change.New == "LU" {
			sawJurisdiction = true
		}
	}
	if !sawJurisdiction {
		t.Errorf("update record missing jurisdiction change: %+v", records[1].Changes)
	}
}
