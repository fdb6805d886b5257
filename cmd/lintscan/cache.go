package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lintscan/internal/driver"
	"lintscan/internal/trace"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the result cache",
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := cacheDir(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached scan result",
	Args:  cobra.NoArgs,
	RunE:  runCacheClean,
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}

func cacheDir(cmd *cobra.Command) (string, error) {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return "", err
	}
	if dir := cfg.CacheDir(); dir != "" {
		if filepath.IsAbs(dir) || cfg.Path() == "" {
			return dir, nil
		}
		return filepath.Join(filepath.Dir(cfg.Path()), dir), nil
	}
	return driver.DefaultCacheDir()
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	dir, err := cacheDir(cmd)
	if err != nil {
		return err
	}
	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeRun, "cache-clean", 0).WithExtra("dir", dir)
	defer span.End("")

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "cache directory not found")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	cache, err := driver.OpenCache(dir)
	if err != nil {
		return err
	}
	if err := cache.Clean(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", dir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed cached results in %s\n", dir)
	return nil
}
