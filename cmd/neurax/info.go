package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Cetic99/neurax"
	"github.com/Cetic99/neurax/device"
)

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show device information and live status",
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

			printInfo(dev.Info())
			return nil
		},
	}
}

func printInfo(info device.Info) {
	header := color.New(color.FgCyan, color.Bold)
	header.Println("NEURAX Device Information")
	header.Println("=========================")

	fmt.Printf("Version:               %s\n", neurax.GetVersion())
	fmt.Printf("Hardware acceleration: %s\n", yesNo(info.HardwareAvailable, "Yes", "No (CPU emulation)"))
	fmt.Printf("Base address:          0x%08X\n", info.Config.BaseAddress)
	fmt.Printf("Memory size:           %d bytes\n", info.Config.MemorySize)
	fmt.Printf("Max kernel size:       %d\n", info.Config.MaxKernelSize)
	fmt.Printf("Multipliers:           %d\n", info.Config.NumMultipliers)
	fmt.Printf("Default data type:     %s\n", info.Config.DataType)
	fmt.Printf("Initialized:           %s\n", yesNo(info.Initialized, "Yes", "No"))

	if info.HardwareAvailable {
		fmt.Printf("Hardware status:       0x%08X\n", info.Status.Raw)
		fmt.Printf("  Busy:  %s\n", yesNo(info.Status.Busy, "Yes", "No"))
		fmt.Printf("  Done:  %s\n", yesNo(info.Status.Done, "Yes", "No"))
		fmt.Printf("  Error: %s\n", yesNo(info.Status.Error, "Yes", "No"))
	}
}

func yesNo(b bool, yes, no string) string {
	if b {
		return color.GreenString(yes)
	}
	return color.YellowString(no)
}
