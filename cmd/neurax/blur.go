package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cetic99/neurax/engine"
	"github.com/Cetic99/neurax/internal/imaging"
	"github.com/Cetic99/neurax/tensor"
)

func blurCommand() *cobra.Command {
	var (
		inPath       string
		outPath      string
		kernelSize   int
		sigma        float64
		createSample bool
	)

	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Apply a Gaussian blur to a BMP image via the convolution engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if createSample {
				sample, err := imaging.SampleImage(256, 256)
				if err != nil {
					return err
				}
				defer sample.Release()
				if err := imaging.SaveBMP(inPath, sample); err != nil {
					return err
				}
				fmt.Printf("Sample image created: %s\n", inPath)
				return nil
			}

			if outPath == "" {
				return fmt.Errorf("--output is required")
			}

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

			input, err := imaging.LoadBMP(inPath)
			if err != nil {
				return err
			}
			defer input.Release()

			weights, err := imaging.GaussianKernel(kernelSize, sigma)
			if err != nil {
				return err
			}
			defer weights.Release()

			// Same-size output: odd kernel with pad = size/2 keeps the
			// spatial dimensions.
			output, err := tensor.New(input.Width(), input.Height(), 3, 1, tensor.Uint8)
			if err != nil {
				return err
			}
			defer output.Release()

			cfg := tensor.ConvConfig{
				KernelWidth:    kernelSize,
				KernelHeight:   kernelSize,
				StrideX:        1,
				StrideY:        1,
				PaddingX:       kernelSize / 2,
				PaddingY:       kernelSize / 2,
				InputChannels:  3,
				OutputChannels: 3,
				Activation:     tensor.Linear,
			}

			if err := engine.Conv2D(dev, input, weights, nil, cfg, output); err != nil {
				return err
			}

			if err := imaging.SaveBMP(outPath, output); err != nil {
				return err
			}
			fmt.Printf("Blurred %s -> %s (kernel=%d, sigma=%.2f)\n", inPath, outPath, kernelSize, sigma)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "input", "", "input BMP file")
	cmd.Flags().StringVar(&outPath, "output", "", "output BMP file")
	cmd.Flags().IntVar(&kernelSize, "kernel-size", 5, "odd blur kernel size in [3,11]")
	cmd.Flags().Float64Var(&sigma, "sigma", 1.0, "Gaussian sigma")
	cmd.Flags().BoolVar(&createSample, "create-sample", false, "write a sample image to --input and exit")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	return cmd
}
