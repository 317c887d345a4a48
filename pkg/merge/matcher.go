package merge

import (
	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/constants"
	"github.com/modsmith/modmerge/pkg/logging"
	"github.com/modsmith/modmerge/pkg/similarity"
)

// matcher resolves an incoming record to at most one record from a pool of
// unmatched candidates. GUID lookup wins outright; otherwise candidates are
// scored with the configured heuristics. A matched candidate leaves the
// pool, so no two incoming records can claim the same counterpart.
type matcher struct {
	heur *HeuristicsOptions
	norm similarity.Normalizer

	pool    []*components.Component
	claimed []bool
	byGUID  map[string]int // GUID -> pool index, first occurrence wins
}

// newMatcher builds a matcher over the candidate pool. The pool slice is
// not copied; candidates are only ever marked claimed, never mutated.
func newMatcher(pool []*components.Component, heur *HeuristicsOptions) *matcher {
	m := &matcher{
		heur:    heur,
		norm:    heur.normalizer(),
		pool:    pool,
		claimed: make([]bool, len(pool)),
		byGUID:  make(map[string]int, len(pool)),
	}
	for i, c := range pool {
		if c.HasGUID() {
			if _, ok := m.byGUID[c.GUID]; !ok {
				m.byGUID[c.GUID] = i
			}
		}
	}
	return m
}

// Match returns the pool record matching the given component, or nil. The
// returned record is removed from the pool.
func (m *matcher) Match(c *components.Component) *components.Component {
	// Exact GUID hit is final: heuristics are skipped entirely.
	if c.HasGUID() {
		if i, ok := m.byGUID[c.GUID]; ok && !m.claimed[i] {
			return m.claim(i, "guid")
		}
	}

	best := -1
	bestScore := 0.0
	for i, candidate := range m.pool {
		if m.claimed[i] {
			continue
		}
		if score := m.score(c, candidate); score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 || bestScore < m.heur.MinNameSimilarity {
		return nil
	}

	logging.Debug().
		Str("name", c.Name).
		Str("candidate", m.pool[best].Name).
		Float64("score", bestScore).
		Msg("heuristic match accepted")
	return m.claim(best, "heuristic")
}

// score computes the weighted heuristic similarity of two components.
func (m *matcher) score(a, b *components.Component) float64 {
	score := 0.0

	// Exact comparisons require a non-blank value: two blank authors are
	// not evidence of identity.
	if m.heur.UseNameExact {
		if na, nb := m.norm.Normalize(a.Name), m.norm.Normalize(b.Name); na != "" && na == nb {
			score += 1.0
		}
	}
	if m.heur.UseAuthorExact {
		if na, nb := m.norm.Normalize(a.Author), m.norm.Normalize(b.Author); na != "" && na == nb {
			score += 1.0
		}
	}
	if m.heur.UseNameSimilarity {
		score += m.norm.Jaccard(a.Name, b.Name)
	}
	if m.heur.UseAuthorSimilarity {
		score += constants.AuthorSimilarityWeight * m.norm.Jaccard(a.Author, b.Author)
	}

	// Domain comparison is a last resort: only consulted when the
	// name/author evidence alone would not clear the bar.
	if score < 0.5 && m.heur.MatchByDomainIfNoNameAuthorMatch {
		hostA := similarity.Host(a.FirstLink())
		hostB := similarity.Host(b.FirstLink())
		if hostA != "" && hostA == hostB {
			score += constants.DomainMatchScore
		}
	}

	return score
}

// claim removes the pool entry at i and returns it.
func (m *matcher) claim(i int, method string) *components.Component {
	m.claimed[i] = true
	c := m.pool[i]
	if c.HasGUID() {
		delete(m.byGUID, c.GUID)
	}
	logging.Debug().
		Str("guid", c.GUID).
		Str("name", c.Name).
		Str("method", method).
		Msg("matched component")
	return c
}
