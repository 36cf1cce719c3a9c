// Package pipeline handles the transformation pipeline commands
package pipeline

import (
	"jcarver/finpipe/cmd/root"
	"jcarver/finpipe/internal/pipeline"

	"github.com/spf13/cobra"
)

var layer string

// Cmd represents the pipeline command
var Cmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Rebuild the staging and marts layers from the raw tables",
	Long: `Run the transformation pipeline. Each layer fully rebuilds its output
tables from the layer below, so runs are repeatable. Use --layer to rebuild a
single layer instead of all of them.`,
	RunE: pipelineFunc,
}

func init() {
	Cmd.Flags().StringVar(&layer, "layer", "", "Run a single layer (staging or marts)")
}

func pipelineFunc(cmd *cobra.Command, args []string) error {
	tableStore, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := tableStore.Close(); err != nil {
			root.Log.WithError(err).Warn("failed to close store")
		}
	}()

	tax, err := root.LoadTaxonomy()
	if err != nil {
		return err
	}

	p := pipeline.New(tableStore, tax, root.Log)
	if layer != "" {
		return p.RunLayer(cmd.Context(), layer)
	}
	return p.RunAll(cmd.Context())
}
