package merge

import (
	"strings"

	"github.com/modsmith/modmerge/pkg/components"
)

// mergeInstructions merges the donor's instruction list into the target's
// using the structural key (Action, Destination), case-insensitive. New
// keys are deep-copied and appended. On a key conflict the incoming side's
// instruction wins, with one exception: when both sides agree on Action,
// Source, Destination, and Arguments, the existing side's Source list is
// kept verbatim so manually tuned paths survive a re-merge.
//
// donorIsExisting marks the donor as the existing side; the assembler sets
// it according to which list the merge started from.
func mergeInstructions(target *[]*components.Instruction, donor []*components.Instruction, donorIsExisting bool) {
	if len(donor) == 0 {
		return
	}
	if len(*target) == 0 {
		*target = components.CloneInstructions(donor)
		return
	}

	index := make(map[string]int, len(*target))
	for i, in := range *target {
		if _, ok := index[in.Key()]; !ok {
			index[in.Key()] = i
		}
	}

	for _, donorIn := range donor {
		i, known := index[donorIn.Key()]
		if !known {
			index[donorIn.Key()] = len(*target)
			*target = append(*target, donorIn.Clone())
			continue
		}

		current := (*target)[i]
		if donorIsExisting {
			// Target already carries the incoming version; only the
			// existing side's tuned Source may carry over.
			if instructionsEquivalent(current, donorIn) {
				current.Source = append([]string(nil), donorIn.Source...)
			}
			continue
		}

		replacement := donorIn.Clone()
		if instructionsEquivalent(current, donorIn) {
			replacement.Source = append([]string(nil), current.Source...)
		}
		(*target)[i] = replacement
	}
}

// instructionsEquivalent reports whether two instructions agree on Action,
// Source, Destination, and Arguments, comparing case-insensitively.
func instructionsEquivalent(a, b *components.Instruction) bool {
	if !strings.EqualFold(a.Action.String(), b.Action.String()) {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(a.Destination), strings.TrimSpace(b.Destination)) {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(a.Arguments), strings.TrimSpace(b.Arguments)) {
		return false
	}
	if len(a.Source) != len(b.Source) {
		return false
	}
	for i := range a.Source {
		if !strings.EqualFold(a.Source[i], b.Source[i]) {
			return false
		}
	}
	return true
}

// mergeOptionList merges the donor's options into the target's, keyed by
// trimmed lower-cased Name. Unknown names are deep-copied wholesale; known
// names reconcile in place: the incoming side's description wins when
// non-blank, the existing side's GUID and selection state survive, and the
// reference sets union.
func mergeOptionList(target *[]*components.Option, donor []*components.Option, donorIsExisting bool) {
	if len(donor) == 0 {
		return
	}
	if len(*target) == 0 {
		*target = components.CloneOptions(donor)
		return
	}

	index := make(map[string]int, len(*target))
	for i, o := range *target {
		if _, ok := index[o.Key()]; !ok {
			index[o.Key()] = i
		}
	}

	for _, donorOpt := range donor {
		i, known := index[donorOpt.Key()]
		if !known {
			index[donorOpt.Key()] = len(*target)
			*target = append(*target, donorOpt.Clone())
			continue
		}

		current := (*target)[i]

		// A blank GUID adopts the other side's; on a conflict of two
		// non-empty GUIDs the existing side's is kept.
		if strings.TrimSpace(current.GUID) == "" {
			current.GUID = donorOpt.GUID
		} else if donorIsExisting && strings.TrimSpace(donorOpt.GUID) != "" {
			current.GUID = donorOpt.GUID
		}

		if donorIsExisting {
			// The user's selection lives on the existing side.
			current.IsSelected = donorOpt.IsSelected
			if isBlank(current.Description) {
				current.Description = donorOpt.Description
			}
		} else if !isBlank(donorOpt.Description) {
			current.Description = donorOpt.Description
		}

		current.Restrictions = unionStrings(current.Restrictions, donorOpt.Restrictions)
		current.Dependencies = unionStrings(current.Dependencies, donorOpt.Dependencies)

		mergeInstructions(&current.Instructions, donorOpt.Instructions, donorIsExisting)
	}
}
