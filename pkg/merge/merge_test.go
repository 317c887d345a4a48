package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/errors"
)

func comp(guid, name string) *components.Component {
	return &components.Component{GUID: guid, Name: name}
}

func names(list []*components.Component) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestMergeListsGUIDMatchWinsOverHeuristics(t *testing.T) {
	// Same GUID, completely different names: GUID identity is final.
	existing := []*components.Component{
		{GUID: "g1", Name: "Old Name", Description: "kept around"},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Renamed Mod"},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merged, 1)

	assert.Equal(t, "g1", merged[0].GUID)
	assert.Equal(t, "Renamed Mod", merged[0].Name)
	// Blank incoming description never overwrites.
	assert.Equal(t, "kept around", merged[0].Description)
}

func TestMergeListsHeuristicNameMatch(t *testing.T) {
	// No shared GUID; "Force Jump Fix" vs "Force Jump Fix v2" shares three
	// of four tokens, clearing the 0.5 threshold.
	existing := []*components.Component{
		{GUID: "g-old", Name: "Force Jump Fix", Author: "alice", Directions: "install last"},
	}
	incoming := []*components.Component{
		{Name: "Force Jump Fix v2", Author: "bob"},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merged, 1)

	// The GUID-less side adopts the identified GUID.
	assert.Equal(t, "g-old", merged[0].GUID)
	assert.Equal(t, "Force Jump Fix v2", merged[0].Name)
	assert.Equal(t, "install last", merged[0].Directions)
}

func TestMergeListsNoMatchBelowThreshold(t *testing.T) {
	existing := []*components.Component{
		{Name: "Widescreen Patch", Author: "alice"},
	}
	incoming := []*components.Component{
		{Name: "Force Jump Fix", Author: "bob"},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Force Jump Fix", "Widescreen Patch"}, names(merged))
}

func TestMergeListsDomainFallback(t *testing.T) {
	links := func(url string) map[string]components.FileMap {
		return map[string]components.FileMap{url: {}}
	}

	existing := []*components.Component{
		{GUID: "g1", Name: "Widescreen Patch", Author: "alice", Links: links("https://mods.example.com/a.zip")},
	}
	incoming := []*components.Component{
		{Name: "Force Jump Fix", Author: "bob", Links: links("https://mods.example.com/b.zip")},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merged, 1, "shared link host should match the pair")
	assert.Equal(t, "g1", merged[0].GUID)

	// With the domain fallback disabled the pair stays apart.
	opts := DefaultOptions()
	opts.Heuristics.MatchByDomainIfNoNameAuthorMatch = false
	merged, err = MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Len(t, merged, 2)
}

func TestMergeListsPreservesRelativeOrder(t *testing.T) {
	existing := []*components.Component{
		comp("a", "Alpha"), comp("b", "Beta"), comp("c", "Gamma"),
	}
	incoming := []*components.Component{comp("b", "Beta")}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)

	// Alpha is reinserted before Beta, Gamma keeps its place after.
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(merged))
}

func TestMergeListsIncomingOrderWins(t *testing.T) {
	existing := []*components.Component{
		comp("a", "Alpha"), comp("b", "Beta"),
	}
	incoming := []*components.Component{
		comp("b", "Beta"), comp("a", "Alpha"), comp("c", "Gamma"),
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Alpha", "Gamma"}, names(merged))
}

func TestMergeListsExistingOrder(t *testing.T) {
	existing := []*components.Component{
		comp("a", "Alpha"), comp("b", "Beta"),
	}
	incoming := []*components.Component{
		comp("c", "Gamma"), comp("b", "Beta"),
	}

	opts := DefaultOptions()
	opts.UseExistingOrder = true
	merged, err := MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(merged))

	// With add-new disabled, unmatched incoming entries are dropped.
	opts.AddNewComponents = false
	merged, err = MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, names(merged))
}

func TestMergeListsFieldPrecedence(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Local Name", Description: "local description", Tier: "1"},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Upstream Name", Description: "upstream description", Tier: "2"},
	}

	// Default: incoming wins every field.
	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Upstream Name", merged[0].Name)
	assert.Equal(t, "2", merged[0].Tier)

	// Prefer existing Name only: Name kept, Tier still replaced.
	opts := DefaultOptions()
	opts.PreferExisting.Name = true
	merged, err = MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Equal(t, "Local Name", merged[0].Name)
	assert.Equal(t, "upstream description", merged[0].Description)
	assert.Equal(t, "2", merged[0].Tier)
}

func TestMergeListsBlankNeverOverwrites(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Mod", Author: "alice", Description: "original"},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Mod", Author: "   ", Description: ""},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "alice", merged[0].Author)
	assert.Equal(t, "original", merged[0].Description)
}

func TestMergeListsEmptyGUIDNeverOverwrites(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Force Jump Fix", Author: "alice"},
	}
	incoming := []*components.Component{
		{Name: "Force Jump Fix", Author: "alice"},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "g1", merged[0].GUID)
}

func TestMergeListsCollectionsUnion(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Mod", Dependencies: []string{"dep-a", "DEP-C", " "}, Language: []string{"English"}},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Mod", Dependencies: []string{"dep-b", "dep-c"}, Language: []string{"German"}},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)

	// The result assembles from the incoming side; existing-only entries
	// are appended. Dedup is case-insensitive and blanks are skipped.
	assert.Equal(t, []string{"dep-b", "dep-c", "dep-a"}, merged[0].Dependencies)
	assert.Equal(t, []string{"German", "English"}, merged[0].Language)
}

func TestMergeListsLinksKeepManualFlags(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Mod", Links: map[string]components.FileMap{
			"https://example.com/mod.zip": {"mod.zip": components.DownloadNo},
		}},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Mod", Links: map[string]components.FileMap{
			"https://example.com/mod.zip": {
				"mod.zip":   components.DownloadYes,
				"patch.zip": components.DownloadYes,
			},
			"https://mirror.example.com/mod.zip": {"mod.zip": components.DownloadYes},
		}},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)

	got := merged[0].Links
	require.Len(t, got, 2)
	// The manual "no" decision survives; the new filename and URL arrive.
	assert.Equal(t, components.DownloadNo, got["https://example.com/mod.zip"]["mod.zip"])
	assert.Equal(t, components.DownloadYes, got["https://example.com/mod.zip"]["patch.zip"])
	assert.Equal(t, components.DownloadYes, got["https://mirror.example.com/mod.zip"]["mod.zip"])
}

func TestMergeListsIdempotent(t *testing.T) {
	existing := []*components.Component{
		{GUID: "a", Name: "Alpha", Dependencies: []string{"x"}},
		{GUID: "b", Name: "Beta"},
		{GUID: "c", Name: "Gamma"},
	}
	incoming := []*components.Component{
		{GUID: "b", Name: "Beta", Dependencies: []string{"y"}},
	}

	once, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)

	twice, err := MergeLists(once, incoming, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMergeListsDoesNotMutateInputs(t *testing.T) {
	existing := []*components.Component{
		{GUID: "g1", Name: "Mod", Dependencies: []string{"dep-a"}},
	}
	incoming := []*components.Component{
		{GUID: "g1", Name: "Renamed", Dependencies: []string{"dep-b"}},
	}

	merged, err := MergeLists(existing, incoming, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Mod", existing[0].Name)
	assert.Equal(t, []string{"dep-a"}, existing[0].Dependencies)
	assert.Equal(t, []string{"dep-b"}, incoming[0].Dependencies)

	// Result shares no containers with either input.
	merged[0].Dependencies[0] = "changed"
	assert.Equal(t, "dep-a", existing[0].Dependencies[0])
	assert.Equal(t, "dep-b", incoming[0].Dependencies[0])
}

func TestMergeListsExcludes(t *testing.T) {
	existing := []*components.Component{comp("a", "Alpha"), comp("b", "Beta")}
	incoming := []*components.Component{comp("b", "Beta"), comp("c", "Gamma")}

	opts := DefaultOptions()
	opts.ExcludeExistingOnly = true
	merged, err := MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Gamma"}, names(merged))

	opts = DefaultOptions()
	opts.ExcludeIncomingOnly = true
	merged, err = MergeLists(existing, incoming, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Alpha"}, names(merged))
}

func TestMergeListsNilArguments(t *testing.T) {
	valid := []*components.Component{comp("a", "Alpha")}

	_, err := MergeLists(nil, valid, DefaultOptions())
	assert.True(t, errors.IsInvalidInput(err))

	_, err = MergeLists(valid, nil, DefaultOptions())
	assert.True(t, errors.IsInvalidInput(err))

	_, err = MergeLists(valid, valid, nil)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestMergeInto(t *testing.T) {
	target := []*components.Component{
		{GUID: "g1", Name: "Mod", Description: "local"},
	}
	donor := []*components.Component{
		{GUID: "g1", Name: "Mod", Description: "upstream"},
		{GUID: "g2", Name: "New Mod"},
	}

	err := MergeInto(&target, donor, DefaultHeuristics(), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, target, 2)
	assert.Equal(t, "upstream", target[0].Description, "donor wins fields under the default precedence")

	// Donor list is never mutated or shared.
	target[1].Name = "changed"
	assert.Equal(t, "New Mod", donor[1].Name)
}

func TestMergeIntoNilArguments(t *testing.T) {
	list := []*components.Component{comp("a", "Alpha")}

	err := MergeInto(nil, list, DefaultHeuristics(), DefaultOptions())
	assert.True(t, errors.IsInvalidInput(err))

	err = MergeInto(&list, list, nil, DefaultOptions())
	assert.True(t, errors.IsInvalidInput(err))
}
