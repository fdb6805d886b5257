package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lintscan/internal/trace"
)

// setupTracing reads the trace flags and attaches a tracer to the command
// context. Without --trace-level the config's trace_level is used.
func setupTracing(cmd *cobra.Command) error {
	root := cmd.Root()

	output, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	if levelStr == "" {
		if cfg, err := loadConfig(cmd, ""); err == nil {
			levelStr = cfg.TraceLevel()
		}
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace alone turns on phase tracing
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	format, ok := trace.ParseFormat(formatStr)
	if !ok {
		return fmt.Errorf("invalid trace format %q (must be auto, text or ndjson)", formatStr)
	}

	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return err
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

func closeTracing(cmd *cobra.Command) error {
	tracer := trace.FromContext(cmd.Context())
	if err := tracer.Flush(); err != nil {
		return err
	}
	return tracer.Close()
}
