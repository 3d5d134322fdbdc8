package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "lvlabel",
	Short: "Connected-component labeling for binary images",
	Long: `lvlabel assigns a dense integer identifier to every maximal group of
adjacent foreground cells in a binary image, under 4- or 8-connectivity.

Examples:
  lvlabel label grid.txt                 # label a '0'/'1' text grid
  cat grid.txt | lvlabel label           # same, from stdin
  lvlabel label --conn 8 grid.txt        # only the 8-neighborhood labeling
  lvlabel image --threshold 96 scan.png  # threshold an image and measure blobs`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML config file (runes, threshold, connectivity)")
}
