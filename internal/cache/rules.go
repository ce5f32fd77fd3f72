package cache

import "strings"

// Mutation names a write that may stale cached reads.
type Mutation string

const (
	MutationSessionWrite Mutation = "session-write"
	MutationUserWrite    Mutation = "user-write"
)

// Rules declares, per mutation kind, which key-prefix templates go stale.
// Templates may contain the {user} placeholder, expanded with the acting
// user's ID at invalidation time. Keeping the mapping in one table instead
// of scattering InvalidatePrefix calls across handlers mirrors the
// tree-structured key convention the whole read side uses.
type Rules map[Mutation][]Key

// DefaultRules covers the cached read paths: per-user stats, the shared
// leaderboard, and admin aggregates. Every template here must correspond
// to a key prefix some handler actually caches under.
func DefaultRules() Rules {
	return Rules{
		MutationSessionWrite: {
			Key{"user", "stats", "{user}"},
			Key{"leaderboard"},
			Key{"admin", "stats"},
		},
		MutationUserWrite: {
			Key{"admin", "stats"},
		},
	}
}

// Apply expands every template for the mutation and invalidates the
// matching prefixes. Unknown mutations are a no-op.
func (rules Rules) Apply(store *Store, mutation Mutation, userID string) int {
	removed := 0
	for _, template := range rules[mutation] {
		removed += store.InvalidatePrefix(expandTemplate(template, userID))
	}
	return removed
}

func expandTemplate(template Key, userID string) Key {
	expanded := make(Key, len(template))
	for index, segment := range template {
		expanded[index] = strings.ReplaceAll(segment, "{user}", userID)
	}
	return expanded
}
