// Package taxonomy provides the static skill-relation table used by the
// skill matcher. The table maps a canonical skill name to the set of skills
// considered interchangeable enough to satisfy a requirement for it.
//
// Relations in the authored data are not guaranteed symmetric ("react" lists
// "next.js", but "next.js" has no entry of its own). The matcher compensates
// with a reverse-lookup pass; the table itself preserves the data as authored.
package taxonomy

import "strings"

// Taxonomy is an immutable skill-relation table. Construct one with New or
// LoadFile and pass it by value injection; there is no package-level table.
type Taxonomy struct {
	relations map[string][]string
}

// New builds a Taxonomy from a relation table. Keys and values are normalized
// (lowercased, trimmed) and the input map is copied, so later mutation of the
// argument does not affect the taxonomy.
func New(relations map[string][]string) *Taxonomy {
	t := &Taxonomy{relations: make(map[string][]string, len(relations))}
	for skill, related := range relations {
		key := Normalize(skill)
		if key == "" {
			continue
		}
		seen := make(map[string]struct{}, len(related))
		entries := make([]string, 0, len(related))
		for _, r := range related {
			norm := Normalize(r)
			if norm == "" || norm == key {
				continue
			}
			if _, dup := seen[norm]; dup {
				continue
			}
			seen[norm] = struct{}{}
			entries = append(entries, norm)
		}
		t.relations[key] = entries
	}
	return t
}

// Default returns the built-in taxonomy table.
func Default() *Taxonomy {
	return New(defaultRelations)
}

// Related returns the related-skill set for a skill, or an empty slice when
// the skill has no entry. Unknown skills are not an error. The returned slice
// is a copy; callers may not mutate the table through it.
func (t *Taxonomy) Related(skill string) []string {
	related, ok := t.relations[Normalize(skill)]
	if !ok || len(related) == 0 {
		return nil
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}

// Len returns the number of canonical entries in the table.
func (t *Taxonomy) Len() int {
	return len(t.relations)
}

// Normalize canonicalizes a skill string for lookup and comparison.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
