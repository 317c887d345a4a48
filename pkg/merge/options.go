// Package merge implements the component-list reconciliation engine:
// GUID-first and heuristic identity matching, per-field precedence
// reconciliation, set-union merge of reference collections, structural
// merge of nested instructions and options, and order-preserving assembly
// of the final list.
//
// The engine mutates a shared, non-thread-safe object graph and is
// intentionally non-reentrant: callers must never invoke a merge
// concurrently on the same lists.
package merge

import (
	"github.com/modsmith/modmerge/pkg/constants"
	"github.com/modsmith/modmerge/pkg/similarity"
)

// FieldPreferences selects, per field, whether the existing side's value
// survives a merge. A false flag means the incoming side wins that field.
type FieldPreferences struct {
	Name               bool `json:"name" yaml:"name" mapstructure:"name"`
	Author             bool `json:"author" yaml:"author" mapstructure:"author"`
	Description        bool `json:"description" yaml:"description" mapstructure:"description"`
	Directions         bool `json:"directions" yaml:"directions" mapstructure:"directions"`
	Tier               bool `json:"tier" yaml:"tier" mapstructure:"tier"`
	InstallationMethod bool `json:"installation_method" yaml:"installation_method" mapstructure:"installation_method"`
	Category           bool `json:"category" yaml:"category" mapstructure:"category"`
	Links              bool `json:"links" yaml:"links" mapstructure:"links"`
	Instructions       bool `json:"instructions" yaml:"instructions" mapstructure:"instructions"`
	Options            bool `json:"options" yaml:"options" mapstructure:"options"`
}

// invert flips every preference. The reconciler works in donor/target terms;
// when the donor is the incoming side the per-field "prefer existing" flags
// read backwards, and inverting them restores the caller's intent.
func (p FieldPreferences) invert() FieldPreferences {
	return FieldPreferences{
		Name:               !p.Name,
		Author:             !p.Author,
		Description:        !p.Description,
		Directions:         !p.Directions,
		Tier:               !p.Tier,
		InstallationMethod: !p.InstallationMethod,
		Category:           !p.Category,
		Links:              !p.Links,
		Instructions:       !p.Instructions,
		Options:            !p.Options,
	}
}

// Options holds the list-level merge switches plus the per-field
// precedence flags.
type Options struct {
	// ExcludeExistingOnly drops result entries whose GUID is absent from
	// the incoming list.
	ExcludeExistingOnly bool `json:"exclude_existing_only" yaml:"exclude_existing_only" mapstructure:"exclude_existing_only"`

	// ExcludeIncomingOnly drops result entries whose GUID is absent from
	// the existing list.
	ExcludeIncomingOnly bool `json:"exclude_incoming_only" yaml:"exclude_incoming_only" mapstructure:"exclude_incoming_only"`

	// UseExistingOrder assembles the result in the existing list's order
	// instead of the incoming list's order.
	UseExistingOrder bool `json:"use_existing_order" yaml:"use_existing_order" mapstructure:"use_existing_order"`

	// AddNewComponents allows unmatched incoming entries to be appended
	// when assembling in existing order.
	AddNewComponents bool `json:"add_new_components" yaml:"add_new_components" mapstructure:"add_new_components"`

	// PreferExisting selects, per field, whether the existing side wins.
	PreferExisting FieldPreferences `json:"prefer_existing" yaml:"prefer_existing" mapstructure:"prefer_existing"`

	// Heuristics configures identity matching and normalization.
	// Nil means DefaultHeuristics.
	Heuristics *HeuristicsOptions `json:"heuristics,omitempty" yaml:"heuristics,omitempty" mapstructure:"heuristics"`
}

// DefaultOptions returns the default merge configuration: incoming order,
// incoming wins every field, new components allowed.
func DefaultOptions() *Options {
	return &Options{
		AddNewComponents: true,
		Heuristics:       DefaultHeuristics(),
	}
}

// heuristics returns the configured heuristics or the defaults.
func (o *Options) heuristics() *HeuristicsOptions {
	if o.Heuristics != nil {
		return o.Heuristics
	}
	return DefaultHeuristics()
}

// HeuristicsOptions configures identity matching for records without a GUID
// counterpart, plus the normalization applied to both sides of every string
// comparison.
type HeuristicsOptions struct {
	// Exact comparisons, each worth 1.0 when they hit
	UseNameExact   bool `json:"use_name_exact" yaml:"use_name_exact" mapstructure:"use_name_exact"`
	UseAuthorExact bool `json:"use_author_exact" yaml:"use_author_exact" mapstructure:"use_author_exact"`

	// Token-Jaccard comparisons; author similarity is weighted at 0.5
	UseNameSimilarity   bool `json:"use_name_similarity" yaml:"use_name_similarity" mapstructure:"use_name_similarity"`
	UseAuthorSimilarity bool `json:"use_author_similarity" yaml:"use_author_similarity" mapstructure:"use_author_similarity"`

	// MatchByDomainIfNoNameAuthorMatch adds 0.6 when both sides' first
	// link URLs share a host and the running score is still below 0.5.
	MatchByDomainIfNoNameAuthorMatch bool `json:"match_by_domain" yaml:"match_by_domain" mapstructure:"match_by_domain"`

	// MinNameSimilarity is the acceptance threshold for the best score.
	MinNameSimilarity float64 `json:"min_name_similarity" yaml:"min_name_similarity" mapstructure:"min_name_similarity"`

	// SkipBlankUpdates skips field overwrites whose donor value is blank.
	SkipBlankUpdates bool `json:"skip_blank_updates" yaml:"skip_blank_updates" mapstructure:"skip_blank_updates"`

	// ValidateExistingLinksBeforeReplace runs the URL validator over both
	// lists' link maps before merging them. Requires a resolution
	// collaborator; only the context-aware entry points honor it.
	ValidateExistingLinksBeforeReplace bool `json:"validate_existing_links" yaml:"validate_existing_links" mapstructure:"validate_existing_links"`

	// Normalization flags, applied identically to both sides
	IgnoreCase        bool `json:"ignore_case" yaml:"ignore_case" mapstructure:"ignore_case"`
	IgnorePunctuation bool `json:"ignore_punctuation" yaml:"ignore_punctuation" mapstructure:"ignore_punctuation"`
	TrimWhitespace    bool `json:"trim_whitespace" yaml:"trim_whitespace" mapstructure:"trim_whitespace"`
}

// DefaultHeuristics returns the default matching configuration.
func DefaultHeuristics() *HeuristicsOptions {
	return &HeuristicsOptions{
		UseNameExact:                     true,
		UseAuthorExact:                   true,
		UseNameSimilarity:                true,
		UseAuthorSimilarity:              true,
		MatchByDomainIfNoNameAuthorMatch: true,
		MinNameSimilarity:                constants.DefaultMinNameSimilarity,
		SkipBlankUpdates:                 true,
		IgnoreCase:                       true,
		IgnorePunctuation:                true,
		TrimWhitespace:                   true,
	}
}

// normalizer builds the string normalizer for the configured flags.
func (h *HeuristicsOptions) normalizer() similarity.Normalizer {
	return similarity.Normalizer{
		IgnoreCase:        h.IgnoreCase,
		IgnorePunctuation: h.IgnorePunctuation,
		TrimWhitespace:    h.TrimWhitespace,
	}
}
