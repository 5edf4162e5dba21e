package cmd

import (
	"github.com/ironsheep/colourspace-mcp/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout (the default command)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	server.Version = Version
	logger.Debug("Starting MCP server", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	return server.NewWithLogger(logger).Run()
}
