package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  *slog.Logger
)

// Version information, set from main.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "colourspace-mcp",
	Short: "Colour adjustments in HSL, HSV and LCh, as an MCP server and CLI",
	Long: `colourspace-mcp saturates, desaturates, lightens, darkens and hue-shifts
images in the HSL, HSV or CIE LCh colour models, and blends images toward a
flat colour.

Run without a subcommand (or with "serve") it speaks the Model Context
Protocol over stdin/stdout. The adjust, mix and sample subcommands work on
image files directly.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// SetVersionInfo records build metadata reported by --version and the MCP
// initialize response.
func SetVersionInfo(version, buildTime, gitCommit string) {
	Version, BuildTime, GitCommit = version, buildTime, gitCommit
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./colourspace.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("colourspace")
	}

	viper.SetEnvPrefix("COLOURSPACE_MCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogging builds the process logger. Logs go to stderr; stdout belongs to
// MCP traffic and command output.
func initLogging() {
	level, err := parseLogLevel(viper.GetString("log_level"))
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("Invalid log level, using info", "error", err)
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
