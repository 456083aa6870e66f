package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/talvik/gamestrings/internal/cli"
	"codeberg.org/talvik/gamestrings/internal/logging"
	"codeberg.org/talvik/gamestrings/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cmd.SilenceUsage = true

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}

	logger := logging.New(level)
	if flags.LogFile != "" {
		fileLogger, err := logging.NewFile(flags.LogFile, level)
		if err != nil {
			return fmt.Errorf("failed to set up file logging: %w", err)
		}
		logger = fileLogger
	}

	proc, err := processor.New(flags, logger)
	if err != nil {
		return err
	}
	defer proc.Close()

	return proc.Run(args)
}
