package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsmith/modmerge/pkg/components"
)

func TestMergeInstructionsAppendsNewKeys(t *testing.T) {
	target := []*components.Instruction{
		{Action: components.ActionExtract, Source: []string{"mod.zip"}, Destination: "workspace"},
	}
	donor := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"music/"}, Destination: "music"},
	}

	mergeInstructions(&target, donor, false)

	require.Len(t, target, 2)
	assert.Equal(t, components.ActionCopy, target[1].Action)
	// The appended instruction is a copy, not the donor's pointer.
	require.NotSame(t, donor[0], target[1])
}

func TestMergeInstructionsIncomingReplacesOnConflict(t *testing.T) {
	target := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"old/"}, Destination: "override", Arguments: "old-args"},
	}
	donor := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"new/"}, Destination: "Override", Arguments: "new-args"},
	}

	// Donor is the incoming side: same (Action, Destination) key, so the
	// incoming instruction wins wholesale.
	mergeInstructions(&target, donor, false)

	require.Len(t, target, 1)
	assert.Equal(t, []string{"new/"}, target[0].Source)
	assert.Equal(t, "new-args", target[0].Arguments)
}

func TestMergeInstructionsKeepsTunedSourceWhenEquivalent(t *testing.T) {
	// Existing side tuned only the Source casing; everything else agrees.
	existing := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"Portraits/Custom"}, Destination: "override"},
	}
	incoming := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"portraits/custom"}, Destination: "override"},
	}

	// Existing-first direction: incoming donor replaces, but the tuned
	// Source survives.
	target := components.CloneInstructions(existing)
	mergeInstructions(&target, incoming, false)
	require.Len(t, target, 1)
	assert.Equal(t, []string{"Portraits/Custom"}, target[0].Source)

	// Incoming-first direction: the incoming version is already in place
	// and adopts the existing side's Source.
	target = components.CloneInstructions(incoming)
	mergeInstructions(&target, existing, true)
	require.Len(t, target, 1)
	assert.Equal(t, []string{"Portraits/Custom"}, target[0].Source)
}

func TestMergeInstructionsExistingDonorNeverReplaces(t *testing.T) {
	target := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"new/"}, Destination: "override", Arguments: "new-args"},
	}
	donor := []*components.Instruction{
		{Action: components.ActionCopy, Source: []string{"old/"}, Destination: "override", Arguments: "old-args"},
	}

	// Donor is the existing side and the instructions differ beyond
	// Source: the incoming version stays.
	mergeInstructions(&target, donor, true)

	require.Len(t, target, 1)
	assert.Equal(t, []string{"new/"}, target[0].Source)
	assert.Equal(t, "new-args", target[0].Arguments)
}

func TestMergeInstructionsEmptyTarget(t *testing.T) {
	var target []*components.Instruction
	donor := []*components.Instruction{
		{Action: components.ActionExtract, Destination: "workspace"},
	}

	mergeInstructions(&target, donor, false)

	require.Len(t, target, 1)
	require.NotSame(t, donor[0], target[0])
}

func TestMergeOptionListAppendsUnknownNames(t *testing.T) {
	target := []*components.Option{{Name: "Core"}}
	donor := []*components.Option{{Name: "HD Textures"}}

	mergeOptionList(&target, donor, false)

	require.Len(t, target, 2)
	assert.Equal(t, "HD Textures", target[1].Name)
	require.NotSame(t, donor[0], target[1])
}

func TestMergeOptionListGUIDRules(t *testing.T) {
	t.Run("blank adopts donor", func(t *testing.T) {
		target := []*components.Option{{Name: "Core"}}
		donor := []*components.Option{{Name: "core", GUID: "opt-1"}}

		mergeOptionList(&target, donor, false)
		assert.Equal(t, "opt-1", target[0].GUID)
	})

	t.Run("existing side wins a conflict", func(t *testing.T) {
		// Incoming-first: target carries the incoming GUID, donor the
		// existing one.
		target := []*components.Option{{Name: "Core", GUID: "opt-new"}}
		donor := []*components.Option{{Name: "core", GUID: "opt-old"}}

		mergeOptionList(&target, donor, true)
		assert.Equal(t, "opt-old", target[0].GUID)

		// Existing-first: target already holds the existing GUID.
		target = []*components.Option{{Name: "Core", GUID: "opt-old"}}
		donor = []*components.Option{{Name: "core", GUID: "opt-new"}}

		mergeOptionList(&target, donor, false)
		assert.Equal(t, "opt-old", target[0].GUID)
	})
}

func TestMergeOptionListSelectionAndDescription(t *testing.T) {
	// Incoming-first: the user's selection on the existing side carries
	// over; the incoming description stays because it is non-blank.
	target := []*components.Option{
		{Name: "Core", Description: "upstream text"},
	}
	donor := []*components.Option{
		{Name: "core", Description: "local text", IsSelected: true},
	}

	mergeOptionList(&target, donor, true)

	assert.True(t, target[0].IsSelected)
	assert.Equal(t, "upstream text", target[0].Description)

	// A blank incoming description is filled from the existing side.
	target = []*components.Option{{Name: "Core"}}
	mergeOptionList(&target, donor, true)
	assert.Equal(t, "local text", target[0].Description)
}

func TestMergeOptionListUnionsAndNestedInstructions(t *testing.T) {
	target := []*components.Option{
		{
			Name:         "Core",
			Dependencies: []string{"dep-a"},
			Instructions: []*components.Instruction{
				{Action: components.ActionCopy, Source: []string{"a/"}, Destination: "override"},
			},
		},
	}
	donor := []*components.Option{
		{
			Name:         "core",
			Dependencies: []string{"DEP-A", "dep-b"},
			Instructions: []*components.Instruction{
				{Action: components.ActionMove, Source: []string{"b/"}, Destination: "music"},
			},
		},
	}

	mergeOptionList(&target, donor, false)

	assert.Equal(t, []string{"dep-a", "dep-b"}, target[0].Dependencies)
	require.Len(t, target[0].Instructions, 2)
	assert.Equal(t, components.ActionMove, target[0].Instructions[1].Action)
}
