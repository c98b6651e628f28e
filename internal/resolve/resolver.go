// ABOUTME: Header resolver mapping target fields to actual export columns.
// ABOUTME: Layered match order: exact, substring containment, Levenshtein fuzzy.
package resolve

import (
	"strings"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/models"
)

const (
	// acceptThreshold is the floor the best candidate must clear for a
	// field to be mapped at all.
	acceptThreshold = 0.6

	// fuzzyFloor is the minimum normalized edit similarity for the fuzzy
	// tier to produce a candidate.
	fuzzyFloor = 0.7

	substringWeight = 0.9
)

// Mapping maps a target field name to the header string it resolved to,
// verbatim as it appears in the file. Unresolved fields are absent.
type Mapping map[string]string

// Indices converts a Mapping into column positions for the given header
// row. Fields whose header is not found (should not happen for a mapping
// produced from the same row) are absent.
func (m Mapping) Indices(headers []string) map[string]int {
	out := make(map[string]int, len(m))
	for field, header := range m {
		for i, h := range headers {
			if h == header {
				out[field] = i
				break
			}
		}
	}
	return out
}

// Resolver matches export headers against the static and learned alias
// tiers. Confirmed matches feed the learned tier so header drift in a
// vendor's next format revision resolves faster.
type Resolver struct {
	store alias.Store
}

// New creates a Resolver backed by the given learned alias store.
func New(store alias.Store) *Resolver {
	return &Resolver{store: store}
}

// Columns resolves every target field of the category against the actual
// header row. Fields whose best candidate does not clear the acceptance
// threshold are left unmapped; the caller defaults them per record.
func (r *Resolver) Columns(c models.Category, headers []string) (Mapping, error) {
	mapping := make(Mapping)

	for _, field := range alias.Fields(c) {
		aliases, err := r.effectiveAliases(c, field)
		if err != nil {
			return nil, err
		}

		header, confidence := bestMatch(headers, aliases)
		if confidence <= acceptThreshold {
			continue
		}
		mapping[field] = header

		// Confirmed match joins the learned tier.
		if err := r.store.Put(c, field, header); err != nil {
			return nil, err
		}
	}

	return mapping, nil
}

// effectiveAliases is the union of the static and learned tiers for a field.
func (r *Resolver) effectiveAliases(c models.Category, field string) ([]string, error) {
	learned, err := r.store.Get(c, field)
	if err != nil {
		return nil, err
	}
	static := alias.Static(c, field)

	out := make([]string, 0, len(static)+len(learned))
	out = append(out, static...)
	for _, l := range learned {
		seen := false
		for _, s := range static {
			if s == l {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, l)
		}
	}
	return out, nil
}

// bestMatch scans every (header, alias) pair and keeps the single
// best-scoring header. An exact match wins outright and stops the scan.
func bestMatch(headers, aliases []string) (string, float64) {
	var best string
	var bestConfidence float64

	for _, header := range headers {
		norm := strings.ToLower(strings.TrimSpace(header))
		for _, a := range aliases {
			if norm == a {
				return header, 1.0
			}

			if c := substringConfidence(norm, a); c > bestConfidence {
				best, bestConfidence = header, c
				continue
			}

			if sim := Similarity(norm, a); sim > fuzzyFloor && sim > bestConfidence {
				best, bestConfidence = header, sim
			}
		}
	}
	return best, bestConfidence
}

// substringConfidence scores containment in either direction, weighted by
// the length ratio of the longer string to the shorter. Returns 0 when
// neither string contains the other.
func substringConfidence(header, a string) float64 {
	if !strings.Contains(header, a) && !strings.Contains(a, header) {
		return 0
	}
	lh := float64(len([]rune(header)))
	la := float64(len([]rune(a)))
	if lh == 0 || la == 0 {
		return 0
	}
	ratio := la / lh
	if lh/la > ratio {
		ratio = lh / la
	}
	return ratio * substringWeight
}
