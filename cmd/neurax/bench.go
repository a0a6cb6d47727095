package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Cetic99/neurax/engine"
)

func benchCommand() *cobra.Command {
	var (
		layer      string
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a layer on the current device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			dev, err := openDevice(log)
			if err != nil {
				return err
			}
			defer dev.Close()

			fmt.Printf("Benchmarking %s for %d iterations...\n", layer, iterations)

			ms, err := engine.BenchmarkLayer(dev, layer, iterations)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Total time:    %.2f ms\n", ms)
			fmt.Printf("Per iteration: %.2f ms\n", ms/float64(iterations))
			return nil
		},
	}

	cmd.Flags().StringVar(&layer, "layer", engine.LayerConv2D,
		"layer to benchmark: conv2d, pooling or activation")
	cmd.Flags().IntVar(&iterations, "iterations", 10, "number of iterations")
	return cmd
}
