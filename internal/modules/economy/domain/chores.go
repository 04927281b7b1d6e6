package domain

import (
	"slices"
	"strings"

	apperrors "chorely/internal/platform/errors"
)

var defaultChores = []string{
	"Dishes",
	"Laundry",
	"Vacuum",
	"Trash",
	"Wipe counters",
	"Clean bathroom",
	"Make bed",
	"Tidy room",
	"Mop floors",
}

func DefaultChores() []string {
	return slices.Clone(defaultChores)
}

func NormalizeChoreName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func DedupeChores(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = NormalizeChoreName(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// AddChore appends name unless an entry with the same case-insensitive name
// exists. added is false for that no-op case.
func AddChore(list []string, name string) (next []string, added bool, err error) {
	name = NormalizeChoreName(name)
	if name == "" {
		return list, false, apperrors.Invalid("chore", "name is required")
	}
	for _, existing := range list {
		if strings.EqualFold(existing, name) {
			return list, false, nil
		}
	}
	return append(slices.Clip(list), name), true, nil
}

func RemoveChore(list []string, name string) ([]string, error) {
	name = NormalizeChoreName(name)
	idx := slices.Index(list, name)
	if idx < 0 {
		for i, existing := range list {
			if strings.EqualFold(existing, name) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return list, apperrors.ErrNotFound
	}
	return slices.Delete(slices.Clone(list), idx, idx+1), nil
}
