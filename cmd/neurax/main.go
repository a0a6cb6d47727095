// Package main provides the neurax CLI: device inspection, layer
// benchmarks and the image-blur demo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Cetic99/neurax"
	"github.com/Cetic99/neurax/device"
	"github.com/Cetic99/neurax/internal/logging"
)

var (
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	root := &cobra.Command{
		Use:           "neurax",
		Short:         "NEURAX neural network accelerator tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "device configuration file (YAML)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also log JSON to this file (rotated)")

	root.AddCommand(
		versionCommand(),
		infoCommand(),
		benchCommand(),
		blurCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show library version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), neurax.GetVersion())
		},
	}
}

// newLogger builds the CLI logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level: flagLogLevel,
		File:  flagLogFile,
	})
}

// openDevice loads the configuration (file or defaults) and opens a
// session with the CLI logger attached.
func openDevice(log *zap.Logger) (*device.Device, error) {
	cfg := device.DefaultConfig()
	if flagConfig != "" {
		var err error
		if cfg, err = device.LoadConfig(flagConfig); err != nil {
			return nil, err
		}
	}
	return device.Open(cfg, device.WithLogger(log))
}
