package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mengfei0517/robocasa/pkg/depgraph"
	"github.com/mengfei0517/robocasa/pkg/document"
	apperrors "github.com/mengfei0517/robocasa/pkg/errors"
	"github.com/mengfei0517/robocasa/pkg/graphio"
)

// graphCommand creates the graph export command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph <document.yaml>",
		Short: "Export a document's entity dependency graph",
		Long: `Graph builds the symbolic dependency graph of a scene-layout document
without resolving it, and exports it as JSON, Graphviz DOT, or a rendered
SVG. Useful for debugging cyclic or unresolved references.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			g, err := depgraph.Build(doc)
			if err != nil {
				return apperrors.FromResolution(err)
			}

			var data []byte
			switch format {
			case "json":
				if data, err = graphio.MarshalGraph(g); err != nil {
					return err
				}
			case "dot":
				data = []byte(graphio.ToDOT(g))
			case "svg":
				if data, err = graphio.RenderSVG(cmd.Context(), g); err != nil {
					return err
				}
			default:
				return apperrors.New(apperrors.ErrCodeInvalidInput, "invalid format %q (must be one of: json, dot, svg)", format)
			}

			if output == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Graph exported")
			printFile(output)
			printStats(g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: json, dot, or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
