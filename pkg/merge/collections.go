package merge

import (
	"strings"

	"github.com/modsmith/modmerge/pkg/components"
)

// unionCollections unions the donor's GUID-set fields and Language tags
// into the target. Union never removes a target entry, so these collections
// can only grow across merges.
func unionCollections(target, donor *components.Component) {
	target.Dependencies = unionStrings(target.Dependencies, donor.Dependencies)
	target.Restrictions = unionStrings(target.Restrictions, donor.Restrictions)
	target.InstallBefore = unionStrings(target.InstallBefore, donor.InstallBefore)
	target.InstallAfter = unionStrings(target.InstallAfter, donor.InstallAfter)
	target.Language = unionStrings(target.Language, donor.Language)
}

// unionStrings appends donor entries missing from target, comparing
// case-insensitively and skipping blanks. Target order is preserved; new
// entries keep the donor's relative order.
func unionStrings(target, donor []string) []string {
	if len(donor) == 0 {
		return target
	}

	seen := make(map[string]struct{}, len(target))
	for _, s := range target {
		seen[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	result := target
	for _, s := range donor {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}
	return result
}
