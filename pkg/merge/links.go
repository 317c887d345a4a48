package merge

import (
	"github.com/modsmith/modmerge/pkg/components"
)

// mergeLinks merges the donor's link map into the target's. Donor URLs
// absent from the target are deep-copied in; for URLs present on both
// sides, filenames the target does not know yet are added. For shared
// filenames the existing side's flag wins regardless of direction, so
// manual yes/no decisions survive re-merge; donorFlagsWin marks the donor
// as the existing side.
func mergeLinks(target, donor *components.Component, donorFlagsWin bool) {
	if len(donor.Links) == 0 {
		return
	}

	if target.Links == nil {
		target.Links = make(map[string]components.FileMap, len(donor.Links))
	}

	for _, url := range donor.URLs() {
		if isBlank(url) {
			continue
		}

		files, ok := target.Links[url]
		if !ok {
			target.Links[url] = components.CloneFileMap(donor.Links[url])
			continue
		}

		if files == nil {
			files = make(components.FileMap, len(donor.Links[url]))
			target.Links[url] = files
		}
		for name, flag := range donor.Links[url] {
			if _, exists := files[name]; !exists || donorFlagsWin {
				files[name] = flag
			}
		}
	}
}
