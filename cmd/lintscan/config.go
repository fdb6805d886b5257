package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lintscan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect lintscan configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a config file and print the effective settings",
	Long: `Validate a config file and print the effective settings.
With no argument the nearest lintscan.toml/.yaml above the working directory is used.
A directory argument starts the search there.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigCheck,
}

func init() {
	configCmd.AddCommand(configCheckCmd)
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	cfg, err := loadConfig(cmd, target)
	out := cmd.OutOrStdout()
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("invalid:"), err)
		return err
	}
	fmt.Fprintln(out, color.New(color.FgGreen, color.Bold).Sprint("ok"))
	key := color.New(color.FgCyan)
	for _, line := range cfg.Summary() {
		name, value, found := strings.Cut(line, ": ")
		if !found {
			fmt.Fprintf(out, "  %s\n", line)
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", key.Sprint(name+":"), value)
	}
	return nil
}

// loadConfig resolves the config in priority order: explicit target
// (file or directory), --config, then discovery from the working directory.
// LINTSCAN_* environment variables override the [scan] section.
func loadConfig(cmd *cobra.Command, target string) (*config.Config, error) {
	cfg, err := readConfig(cmd, target)
	if err != nil {
		return nil, err
	}
	return cfg.WithEnv(os.LookupEnv)
}

func readConfig(cmd *cobra.Command, target string) (*config.Config, error) {
	if target == "" {
		flag, err := cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("failed to get config flag: %w", err)
		}
		target = flag
	}
	if target == "" {
		return config.Discover(".")
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", target, err)
	}
	if info.IsDir() {
		return config.Discover(filepath.Clean(target))
	}
	return config.Load(target)
}
