// Package modmerge reconciles two ordered lists of mod-installation
// components — an existing local manifest and an incoming update — into one
// coherent list without discarding user customizations or upstream author
// changes.
//
// This root package is a thin façade over pkg/merge; the engine, data
// model, codecs, and validator live under pkg/.
package modmerge

import (
	"context"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/merge"
	"github.com/modsmith/modmerge/pkg/validate"
)

// Component is one installable mod unit.
type Component = components.Component

// Options holds list-level merge switches and per-field precedence flags.
type Options = merge.Options

// HeuristicsOptions configures identity matching and normalization.
type HeuristicsOptions = merge.HeuristicsOptions

// DefaultOptions returns the default merge configuration: incoming order
// and incoming wins every field.
func DefaultOptions() *Options {
	return merge.DefaultOptions()
}

// DefaultHeuristics returns the default matching configuration.
func DefaultHeuristics() *HeuristicsOptions {
	return merge.DefaultHeuristics()
}

// MergeLists merges the existing and incoming lists into a new list
// without mutating either input.
func MergeLists(existing, incoming []*Component, opts *Options) ([]*Component, error) {
	return merge.MergeLists(existing, incoming, opts)
}

// MergeInto merges the donor list into the target list in place.
func MergeInto(target *[]*Component, donor []*Component, heur *HeuristicsOptions, opts *Options) error {
	return merge.MergeInto(target, donor, heur, opts)
}

// MergeListsContext is the context-aware variant of MergeLists; it runs
// the pre-merge URL validation pass when enabled and a resolver is given.
func MergeListsContext(ctx context.Context, existing, incoming []*Component, opts *Options, sequential bool, resolver validate.Resolver) ([]*Component, error) {
	return merge.MergeListsContext(ctx, existing, incoming, opts, sequential, resolver)
}

// MergeIntoContext is the context-aware variant of MergeInto.
func MergeIntoContext(ctx context.Context, target *[]*Component, donor []*Component, heur *HeuristicsOptions, opts *Options, sequential bool, resolver validate.Resolver) error {
	return merge.MergeIntoContext(ctx, target, donor, heur, opts, sequential, resolver)
}
