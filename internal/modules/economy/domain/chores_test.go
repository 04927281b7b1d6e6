package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"chorely/internal/modules/economy/domain"
	apperrors "chorely/internal/platform/errors"
)

func TestAddChore(t *testing.T) {
	t.Parallel()
	list := []string{"Dishes"}
	next, added, err := domain.AddChore(list, "  Water   plants ")
	if err != nil || !added {
		t.Fatalf("expected chore added, got %v %v", added, err)
	}
	if !reflect.DeepEqual(next, []string{"Dishes", "Water plants"}) {
		t.Fatalf("unexpected list %v", next)
	}
	if len(list) != 1 {
		t.Fatalf("input list must not change")
	}
	same, added, err := domain.AddChore(next, "dishes")
	if err != nil || added || len(same) != 2 {
		t.Fatalf("case-insensitive duplicate should be a no-op, got %v %v %v", same, added, err)
	}
	if _, _, err := domain.AddChore(next, "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveChore(t *testing.T) {
	t.Parallel()
	list := domain.DefaultChores()
	next, err := domain.RemoveChore(list, "make BED")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(next) != len(list)-1 {
		t.Fatalf("expected one fewer chore, got %v", next)
	}
	for _, c := range next {
		if c == "Make bed" {
			t.Fatalf("chore still present")
		}
	}
	if list[6] != "Make bed" {
		t.Fatalf("input list must not change, got %v", list)
	}
	if _, err := domain.RemoveChore(next, "Make bed"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
