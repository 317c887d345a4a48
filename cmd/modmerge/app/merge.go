package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modsmith/modmerge/pkg/codec"
	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/merge"
	"github.com/modsmith/modmerge/pkg/validate"
)

// newMergeCommand creates the merge subcommand.
func (a *App) newMergeCommand() *cobra.Command {
	var (
		existingPath     string
		incomingPath     string
		outputPath       string
		strategy         string
		useExistingOrder bool
		validateLinks    bool
		sequential       bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge an incoming manifest into an existing one",
		Long: `Merge loads the existing and incoming manifests, reconciles them with
the selected strategy, and writes the merged manifest to the output path.
Formats are inferred from file extensions (.yaml, .yml, .toml).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			existing, err := codec.LoadFile(existingPath)
			if err != nil {
				return err
			}
			incoming, err := codec.LoadFile(incomingPath)
			if err != nil {
				return err
			}

			opts, err := merge.OptionsForStrategy(merge.Strategy(strategy))
			if err != nil {
				return err
			}
			a.applyConfig(opts)
			if useExistingOrder {
				opts.UseExistingOrder = true
			}
			if validateLinks {
				opts.Heuristics.ValidateExistingLinksBeforeReplace = true
			}

			// The CLI has no download-resolution backend; link validation
			// falls through to the HTTP existence probes.
			var resolver validate.Resolver
			if opts.Heuristics.ValidateExistingLinksBeforeReplace {
				resolver = probeOnlyResolver{}
			}

			merged, err := merge.MergeListsContext(cmd.Context(), existing, incoming, opts, sequential, resolver)
			if err != nil {
				return err
			}

			if err := codec.SaveFile(outputPath, merged); err != nil {
				return err
			}

			a.logger.Info().
				Int("existing", len(existing)).
				Int("incoming", len(incoming)).
				Int("merged", len(merged)).
				Str("output", outputPath).
				Msg("manifest merge complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&existingPath, "existing", "e", "", "path to the existing manifest (required)")
	cmd.Flags().StringVarP(&incomingPath, "incoming", "i", "", "path to the incoming manifest (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path for the merged manifest (required)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", a.config.Strategy, "merge strategy: prefer-incoming, prefer-existing, incoming-only")
	cmd.Flags().BoolVar(&useExistingOrder, "use-existing-order", false, "assemble the result in the existing manifest's order")
	cmd.Flags().BoolVar(&validateLinks, "validate-links", a.config.ValidateLinks, "probe link URLs before merging and drop dead ones")
	cmd.Flags().BoolVar(&sequential, "sequential", a.config.Sequential, "probe links one at a time instead of concurrently")
	_ = cmd.MarkFlagRequired("existing")
	_ = cmd.MarkFlagRequired("incoming")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// probeOnlyResolver resolves nothing, sending every URL to the existence
// probe pass.
type probeOnlyResolver struct{}

func (probeOnlyResolver) PreResolve(context.Context, *components.Component, []string, bool) (map[string][]string, error) {
	return nil, nil
}

// applyConfig folds the config-file defaults into the strategy options.
func (a *App) applyConfig(opts *merge.Options) {
	if a.config.UseExistingOrder {
		opts.UseExistingOrder = true
	}
	opts.AddNewComponents = a.config.AddNewComponents

	heur := opts.Heuristics
	if heur == nil {
		heur = merge.DefaultHeuristics()
		opts.Heuristics = heur
	}
	if a.config.MinNameSimilarity > 0 {
		heur.MinNameSimilarity = a.config.MinNameSimilarity
	}
	heur.ValidateExistingLinksBeforeReplace = a.config.ValidateLinks
}

// newStrategiesCommand lists the recognized merge strategies.
func (a *App) newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available merge strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range merge.AllStrategies() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s, s.Description())
			}
			return nil
		},
	}
}
