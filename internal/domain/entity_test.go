package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEntityVisibilityWindow(t *testing.T) {
	entity := NewEntity(uuid.New(), "Window Co", "WC", EntityTypeCorporation, "US-NY", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	entity = entity.WithTermination(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		asOf    time.Time
		visible bool
	}{
		{time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		if got := entity.VisibleAt(tc.asOf); got != tc.visible {
			t.Errorf("VisibleAt(%s) = %v, want %v", tc.asOf.Format("2006-01-02"), got, tc.visible)
		}
	}
}

func TestEntityValidateRequiredFields(t *testing.T) {
	valid := NewEntity(uuid.New(), "Valid Co", "VC", EntityTypeGmbH, "DE", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid entity, got %v", err)
	}

	missingName := valid.WithName("  ")
	if err := missingName.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}

	badType := valid
	badType.EntityType = "HOLDCO"
	if err := badType.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for unknown type, got %v", err)
	}

	badTermination := valid.WithTermination(valid.EffectiveFrom)
	if err := badTermination.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for termination at effective date, got %v", err)
	}
}

func TestParseEntityType(t *testing.T) {
	parsed, err := ParseEntityType(" llc ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != EntityTypeLLC {
		t.Errorf("expected LLC, got %s", parsed)
	}

	if _, err := ParseEntityType("conglomerate"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWithMutatorsDoNotAliasMaps(t *testing.T) {
	entity := NewEntity(uuid.New(), "Immutable Co", "IC", EntityTypeTrust, "JE", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	entity = entity.WithAttribute("ein", "12-3456789")

	updated := entity.WithAttribute("ein", "98-7654321")
	if entity.Attributes["ein"] != "12-3456789" {
		t.Errorf("original version mutated: %v", entity.Attributes)
	}
	if updated.Attributes["ein"] != "98-7654321" {
		t.Errorf("updated version missing change: %v", updated.Attributes)
	}

	withApp := entity.WithAppField("tax", "filing_status", "consolidated")
	if len(entity.AppFields) != 0 {
		t.Errorf("original app fields mutated: %v", entity.AppFields)
	}
	if withApp.AppFields["tax"]["filing_status"] != "consolidated" {
		t.Errorf("app field not set: %v", withApp.AppFields)
	}
}

func TestCheckGroupLeader(t *testing.T) {
	org := uuid.New()
	entity := uuid.New()

	existing := []JurisdictionFiling{
		NewJurisdictionFiling(org, entity, "US-FED", "us-consolidated", 1, true),
		NewJurisdictionFiling(org, entity, "US-NY", "us-consolidated", 2, false),
	}

	follower := NewJurisdictionFiling(org, uuid.New(), "US-CA", "us-consolidated", 2, false)
	if err := CheckGroupLeader(existing, follower); err != nil {
		t.Errorf("non-leader filing should pass: %v", err)
	}

	rival := NewJurisdictionFiling(org, uuid.New(), "US-TX", "us-consolidated", 1, true)
	if err := CheckGroupLeader(existing, rival); !errors.Is(err, ErrValidation) {
		t.Errorf("expected second leader to be rejected, got %v", err)
	}

	otherGroup := NewJurisdictionFiling(org, uuid.New(), "UK", "uk-group", 1, true)
	if err := CheckGroupLeader(existing, otherGroup); err != nil {
		t.Errorf("leader in a different group should pass: %v", err)
	}
}
