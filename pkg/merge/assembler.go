package merge

import (
	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/logging"
)

// engine runs one merge over two owned component lists. The lists passed to
// run must belong to the engine; the public entry points clone caller input
// as needed before handing it over.
type engine struct {
	opts *Options
	heur *HeuristicsOptions
}

func newEngine(opts *Options) *engine {
	return &engine{opts: opts, heur: opts.heuristics()}
}

// run assembles the merged list and applies the exclude post-filters.
func (e *engine) run(existing, incoming []*components.Component) []*components.Component {
	var result []*components.Component
	if e.opts.UseExistingOrder {
		result = e.assembleExistingFirst(existing, incoming)
	} else {
		result = e.assembleIncomingFirst(existing, incoming)
	}
	return e.applyExcludes(result, existing, incoming)
}

// assembleIncomingFirst starts from the incoming list, merges matched
// existing records into it, then reinserts unmatched existing entries near
// their original neighbors.
func (e *engine) assembleIncomingFirst(existing, incoming []*components.Component) []*components.Component {
	result := incoming
	m := newMatcher(existing, e.heur)

	// counterpart maps an existing entry to the result entry that
	// represents it, whether by match or by reinsertion.
	counterpart := make(map[*components.Component]*components.Component, len(existing))

	for _, target := range result {
		donor := m.Match(target)
		if donor == nil {
			continue
		}
		e.mergeComponent(target, donor, e.opts.PreferExisting)
		counterpart[donor] = target
	}

	// Reinsert unmatched existing entries. The insertion point is the
	// result position of the first later sibling from the original
	// existing order that already has a counterpart; with no such sibling
	// the entry goes to the end.
	for idx, ex := range existing {
		if _, ok := counterpart[ex]; ok {
			continue
		}

		clone := ex.Clone()
		at := len(result)
		for j := idx + 1; j < len(existing); j++ {
			c, ok := counterpart[existing[j]]
			if !ok {
				continue
			}
			if pos := indexOf(result, c); pos >= 0 {
				at = pos
			}
			break
		}

		result = insertAt(result, at, clone)
		counterpart[ex] = clone
		logging.Debug().
			Str("guid", ex.GUID).
			Str("name", ex.Name).
			Int("position", at).
			Msg("reinserted unmatched existing component")
	}

	return result
}

// assembleExistingFirst starts from the existing list and merges incoming
// records into it in place. Unmatched incoming entries are appended only
// when the add-new policy allows it.
func (e *engine) assembleExistingFirst(existing, incoming []*components.Component) []*components.Component {
	result := existing
	m := newMatcher(result, e.heur)
	donorWins := e.opts.PreferExisting.invert()

	for _, inc := range incoming {
		target := m.Match(inc)
		if target != nil {
			e.mergeComponent(target, inc, donorWins)
			continue
		}
		if e.opts.AddNewComponents {
			result = append(result, inc.Clone())
		} else {
			logging.Debug().
				Str("guid", inc.GUID).
				Str("name", inc.Name).
				Msg("dropping unmatched incoming component (add-new disabled)")
		}
	}

	return result
}

// mergeComponent applies the donor record into the target record. In
// incoming-first assembly the donor is the existing side; in existing-first
// assembly it is the incoming side. Structural merges are direction-aware
// so the existing side's manual tuning survives either way.
func (e *engine) mergeComponent(target, donor *components.Component, donorWins FieldPreferences) {
	donorIsExisting := !e.opts.UseExistingOrder

	reconcileGUID(target, donor)
	reconcileScalars(target, donor, donorWins, e.heur.SkipBlankUpdates)
	unionCollections(target, donor)

	if e.opts.PreferExisting.Links {
		if donorIsExisting {
			target.Links = components.CloneLinks(donor.Links)
		}
	} else {
		mergeLinks(target, donor, donorIsExisting)
	}

	if e.opts.PreferExisting.Instructions {
		if donorIsExisting {
			target.Instructions = components.CloneInstructions(donor.Instructions)
		}
	} else {
		mergeInstructions(&target.Instructions, donor.Instructions, donorIsExisting)
	}

	if e.opts.PreferExisting.Options {
		if donorIsExisting {
			target.Options = components.CloneOptions(donor.Options)
		}
	} else {
		mergeOptionList(&target.Options, donor.Options, donorIsExisting)
	}
}

// applyExcludes drops result entries per the exclude switches: entries with
// no incoming counterpart GUID (ExcludeExistingOnly) or no existing
// counterpart GUID (ExcludeIncomingOnly).
func (e *engine) applyExcludes(result, existing, incoming []*components.Component) []*components.Component {
	if !e.opts.ExcludeExistingOnly && !e.opts.ExcludeIncomingOnly {
		return result
	}

	existingGUIDs := guidSet(existing)
	incomingGUIDs := guidSet(incoming)

	filtered := make([]*components.Component, 0, len(result))
	for _, c := range result {
		if e.opts.ExcludeExistingOnly && !incomingGUIDs[c.GUID] {
			logging.Debug().Str("guid", c.GUID).Str("name", c.Name).Msg("excluding existing-only component")
			continue
		}
		if e.opts.ExcludeIncomingOnly && !existingGUIDs[c.GUID] {
			logging.Debug().Str("guid", c.GUID).Str("name", c.Name).Msg("excluding incoming-only component")
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func guidSet(list []*components.Component) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, c := range list {
		if c.HasGUID() {
			set[c.GUID] = true
		}
	}
	return set
}

func indexOf(list []*components.Component, c *components.Component) int {
	for i, entry := range list {
		if entry == c {
			return i
		}
	}
	return -1
}

func insertAt(list []*components.Component, i int, c *components.Component) []*components.Component {
	if i >= len(list) {
		return append(list, c)
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = c
	return list
}
