// Command firehose-data-stream synthesizes the CloudFormation template for a
// CloudWatch-Logs-to-Firehose log delivery pipeline.
//
// Usage:
//
//	firehose-data-stream build -c config.yaml      Synthesize the template
//	firehose-data-stream validate -c config.yaml   Check the expanded pipeline
//	firehose-data-stream preflight -c config.yaml  Check the target AWS account
//	firehose-data-stream version                   Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "firehose-data-stream",
		Short: "Synthesize CloudWatch-to-Firehose log delivery templates",
		Long: `firehose-data-stream expands a log delivery configuration into a CloudFormation template.

Describe the pipeline in YAML:

    cloudwatch_log_group_names:
      - app-logs
    destination_bucket_arn: arn:aws:s3:::audit-archive

Then synthesize CloudFormation JSON:

    firehose-data-stream build -c config.yaml`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newValidateCmd(),
		newListCmd(),
		newLintCmd(),
		newGraphCmd(),
		newDiffCmd(),
		newPreflightCmd(),
		newWatchCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("firehose-data-stream %s\n", getVersion())
		},
	}
}
