package merge

import (
	"strings"

	"github.com/modsmith/modmerge/pkg/components"
)

// reconcileScalars applies per-field precedence: a donor value replaces the
// target's only when the donor side wins that field and the value is
// non-blank. Blank donors never overwrite anything.
func reconcileScalars(target, donor *components.Component, donorWins FieldPreferences, skipBlank bool) {
	overwrite(&target.Name, donor.Name, donorWins.Name, skipBlank)
	overwrite(&target.Author, donor.Author, donorWins.Author, skipBlank)
	overwrite(&target.Description, donor.Description, donorWins.Description, skipBlank)
	overwrite(&target.Directions, donor.Directions, donorWins.Directions, skipBlank)
	overwrite(&target.Tier, donor.Tier, donorWins.Tier, skipBlank)
	overwrite(&target.InstallationMethod, donor.InstallationMethod, donorWins.InstallationMethod, skipBlank)

	// Category is replaced wholesale under precedence rather than unioned.
	if len(donor.Category) > 0 && (donorWins.Category || len(target.Category) == 0) {
		target.Category = append([]string(nil), donor.Category...)
	}
}

// overwrite replaces *dst with the donor value when the donor side wins the
// field, or when the target is blank: a blank value never beats a non-blank
// one in either direction. A winning blank donor clears the field only when
// skip-blank is off.
func overwrite(dst *string, donor string, wins, skipBlank bool) {
	if isBlank(donor) {
		if !skipBlank && wins {
			*dst = donor
		}
		return
	}
	if wins || isBlank(*dst) {
		*dst = donor
	}
}

// reconcileGUID applies the identity rule: an empty GUID is a "not yet
// identified" sentinel and never overwrites a non-empty one. When both
// sides carry different non-empty GUIDs the donor's wins; after a
// heuristic, GUID-less match the donor is treated as authoritative.
func reconcileGUID(target, donor *components.Component) {
	switch {
	case !donor.HasGUID():
		// keep target's
	case !target.HasGUID():
		target.GUID = donor.GUID
	case target.GUID != donor.GUID:
		target.GUID = donor.GUID
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
