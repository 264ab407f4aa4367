package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/mengfei0517/robocasa/pkg/errors"
	"github.com/mengfei0517/robocasa/pkg/graphio"
	"github.com/mengfei0517/robocasa/pkg/pipeline"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		seed    uint64
		retries int
		catalog string
		output  string
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <document.yaml>",
		Short: "Resolve a scene-layout document into a concrete scene",
		Long: `Resolve reads a declarative scene-layout document, orders its entity
dependency graph, computes concrete positions and sizes, expands stacks,
and samples randomized object placements with the given seed.

The resolved scene is written as JSON to --output, or stdout when omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spin := newSpinnerWithContext(cmd.Context(), "resolving scene")
			spin.Start()

			prog := newProgress(logger)
			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				DocumentPath: args[0],
				Seed:         seed,
				RetryBudget:  retries,
				CatalogPath:  catalog,
				Refresh:      refresh,
				Logger:       logger,
			})
			if err != nil {
				spin.StopWithError("resolution failed")
				return apperrors.FromResolution(err)
			}
			spin.Stop()
			prog.done(fmt.Sprintf("Resolved %d entities", len(result.Scene.Entities)))

			if output != "" {
				if err := graphio.WriteSceneFile(result.Scene, output); err != nil {
					return err
				}
				printSuccess("Scene written")
				printFile(output)
			} else if err := graphio.WriteScene(result.Scene, os.Stdout); err != nil {
				return err
			}

			printStats(result.Stats.EntityCount, result.Stats.EdgeCount, result.CacheInfo.SceneHit)
			if result.Stats.SynthesizedCount > 0 {
				printDetail("%d synthesized stack levels", result.Stats.SynthesizedCount)
			}
			printKeyValue("pass", result.Scene.PassID)
			printKeyValue("seed", fmt.Sprintf("%d", result.Scene.Seed))
			printNewline()
			printNextStep("Inspect the scene interactively", fmt.Sprintf("scenegen inspect %s --seed %d", args[0], result.Scene.Seed))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "random seed for placement sampling")
	cmd.Flags().IntVar(&retries, "retries", pipeline.DefaultRetryBudget, "placement rejection-sampling budget")
	cmd.Flags().StringVar(&catalog, "catalog", "", "TOML fixture-catalog override file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write scene JSON to file instead of stdout")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and recompute")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")

	return cmd
}
