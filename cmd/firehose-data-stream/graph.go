package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var (
		configPath       string
		outputFormat     string
		clusterByService bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate DOT graph of pipeline dependencies",
		Long: `Generate a DOT or Mermaid format graph showing resource dependencies.

The output can be rendered with Graphviz:
    firehose-data-stream graph -c config.yaml | dot -Tpng -o deps.png

Or used in GitHub markdown (Mermaid format):
    firehose-data-stream graph -c config.yaml -f mermaid

Examples:
    firehose-data-stream graph -c config.yaml
    firehose-data-stream graph -c config.yaml --cluster       # cluster by service
    firehose-data-stream graph -c config.yaml -f mermaid      # mermaid format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(configPath, outputFormat, clusterByService)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().BoolVar(&clusterByService, "cluster", false, "Cluster resources by AWS service")

	return cmd
}

func runGraph(configPath, format string, cluster bool) error {
	pipe, err := loadPipeline(configPath)
	if err != nil {
		return err
	}

	tmpl, err := pipe.Template()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{
		Format:           graphFormat,
		ClusterByService: cluster,
	}

	return gen.Generate(tmpl, os.Stdout)
}
