// Package taxonomy provides the per-role, per-level keyword and verb tables
// consumed by the scoring and validation engines. Tables are loaded once at
// startup and passed by reference, keeping the engines role-agnostic.
package taxonomy

import "strings"

// Experience levels recognized by the analyzer.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelLead      = "lead"
	LevelExecutive = "executive"
)

// GenericRole is the fallback role id used when a requested role is unknown.
const GenericRole = "generic"

// Profile is the role/level slice of the taxonomy used for one evaluation.
type Profile struct {
	Role        string   `json:"role"`
	Level       string   `json:"level"`
	Keywords    []string `json:"keywords"`
	StrongVerbs []string `json:"strong_verbs"`
	MetricHints []string `json:"metric_hints,omitempty"`
}

// YearRange is the expected total-experience band for a level, in years.
type YearRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// levelRanges maps each level to its expected experience band.
var levelRanges = map[string]YearRange{
	LevelEntry:     {Min: 0, Max: 3},
	LevelMid:       {Min: 2, Max: 6},
	LevelSenior:    {Min: 5, Max: 12},
	LevelLead:      {Min: 8, Max: 15},
	LevelExecutive: {Min: 12, Max: 100},
}

// RangeForLevel returns the expected experience band for a level.
// Unknown levels resolve to the mid band.
func RangeForLevel(level string) YearRange {
	if r, ok := levelRanges[normalize(level)]; ok {
		return r
	}
	return levelRanges[LevelMid]
}

// KnownLevel reports whether level is one of the recognized levels.
func KnownLevel(level string) bool {
	_, ok := levelRanges[normalize(level)]
	return ok
}

// Store holds the loaded role tables.
type Store struct {
	roles map[string]roleEntry
}

type roleEntry struct {
	Keywords    []string
	StrongVerbs []string
	MetricHints []string
}

// NewStore returns a Store populated with the embedded default tables.
func NewStore() *Store {
	return &Store{roles: defaultRoles()}
}

// Lookup resolves a (role, level) pair to a Profile. The second return value
// reports whether the role and level were both recognized; on a miss the
// generic profile is returned so evaluation can always proceed.
func (s *Store) Lookup(role, level string) (Profile, bool) {
	roleID := normalize(role)
	levelID := normalize(level)

	entry, roleKnown := s.roles[roleID]
	if !roleKnown {
		roleID = GenericRole
		entry = s.roles[GenericRole]
	}

	levelKnown := KnownLevel(levelID)
	if !levelKnown {
		levelID = LevelMid
	}

	return Profile{
		Role:        roleID,
		Level:       levelID,
		Keywords:    entry.Keywords,
		StrongVerbs: entry.StrongVerbs,
		MetricHints: entry.MetricHints,
	}, roleKnown && levelKnown
}

// Roles lists the role ids available in the store.
func (s *Store) Roles() []string {
	roles := make([]string, 0, len(s.roles))
	for id := range s.roles {
		roles = append(roles, id)
	}
	return roles
}

// normalize lowercases and converts spaces to hyphens so "Software Engineer"
// and "software-engineer" resolve to the same table.
func normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.ReplaceAll(id, " ", "-")
}
