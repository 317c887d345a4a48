package merge

import (
	"context"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/errors"
	"github.com/modsmith/modmerge/pkg/logging"
	"github.com/modsmith/modmerge/pkg/validate"
)

// MergeLists merges the existing and incoming lists into a new list. The
// inputs are deep-copied first and never mutated.
func MergeLists(existing, incoming []*components.Component, opts *Options) ([]*components.Component, error) {
	if err := validateArgs(existing, incoming, opts); err != nil {
		return nil, err
	}

	e := newEngine(opts)
	result := e.run(components.CloneList(existing), components.CloneList(incoming))

	logging.Info().
		Int("existing", len(existing)).
		Int("incoming", len(incoming)).
		Int("merged", len(result)).
		Msg("merged component lists")
	return result, nil
}

// MergeInto merges the donor list into the target list in place: *target
// is replaced with the merged result. The donor list is never mutated and
// shares no sub-objects with the result.
func MergeInto(target *[]*components.Component, donor []*components.Component, heur *HeuristicsOptions, opts *Options) error {
	if target == nil {
		return errors.NewValidationError("target", nil, "list pointer cannot be nil")
	}
	if err := validateArgs(*target, donor, opts); err != nil {
		return err
	}
	if heur == nil {
		return errors.NewValidationError("heuristics", nil, "cannot be nil")
	}

	e := &engine{opts: opts, heur: heur}
	*target = e.run(*target, components.CloneList(donor))
	return nil
}

// MergeListsContext is the context-aware variant of MergeLists. When the
// heuristics enable link validation and a resolver is supplied, the URL
// validator runs over both lists before the merge. Cancellation aborts
// in-flight probes; outstanding URLs are treated as unresolved rather than
// failing the merge.
func MergeListsContext(ctx context.Context, existing, incoming []*components.Component, opts *Options, sequential bool, resolver validate.Resolver) ([]*components.Component, error) {
	if err := validateArgs(existing, incoming, opts); err != nil {
		return nil, err
	}

	ex := components.CloneList(existing)
	inc := components.CloneList(incoming)
	validateLinks(ctx, opts.heuristics(), sequential, resolver, ex, inc)

	e := newEngine(opts)
	return e.run(ex, inc), nil
}

// MergeIntoContext is the context-aware variant of MergeInto.
func MergeIntoContext(ctx context.Context, target *[]*components.Component, donor []*components.Component, heur *HeuristicsOptions, opts *Options, sequential bool, resolver validate.Resolver) error {
	if target == nil {
		return errors.NewValidationError("target", nil, "list pointer cannot be nil")
	}
	if err := validateArgs(*target, donor, opts); err != nil {
		return err
	}
	if heur == nil {
		return errors.NewValidationError("heuristics", nil, "cannot be nil")
	}

	donorCopy := components.CloneList(donor)
	validateLinks(ctx, heur, sequential, resolver, *target, donorCopy)

	e := &engine{opts: opts, heur: heur}
	*target = e.run(*target, donorCopy)
	return nil
}

// validateLinks runs the pre-merge link validation pass when it is both
// enabled and possible.
func validateLinks(ctx context.Context, heur *HeuristicsOptions, sequential bool, resolver validate.Resolver, lists ...[]*components.Component) {
	if !heur.ValidateExistingLinksBeforeReplace || resolver == nil {
		return
	}
	validate.New(resolver).FilterLists(ctx, sequential, lists...)
}

// validateArgs rejects nil lists and nil options before any mutation.
func validateArgs(existing, incoming []*components.Component, opts *Options) error {
	if existing == nil {
		return errors.NewValidationError("existing", nil, "list cannot be nil")
	}
	if incoming == nil {
		return errors.NewValidationError("incoming", nil, "list cannot be nil")
	}
	if opts == nil {
		return errors.NewValidationError("options", nil, "cannot be nil")
	}
	return nil
}
