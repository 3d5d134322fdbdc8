package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/gridio"
	"github.com/katalvlaran/lvlabel/label"
)

var labelConn string

var labelCmd = &cobra.Command{
	Use:   "label [file]",
	Short: "Label a textual binary grid",
	Long: `Read a grid of background/foreground runes ('0'/'1' by default), one row
per line, from a file or stdin; print its size, an ASCII rendering, and
the requested connected-component labelings.

Examples:
  lvlabel label grid.txt
  printf '101\n101\n111\n' | lvlabel label
  lvlabel label --conn 4 grid.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().StringVar(&labelConn, "conn", "",
		`connectivity: "4", "8" or "both" (overrides config)`)
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if labelConn != "" {
		cfg.Connectivity = labelConn
	}
	conns, err := cfg.connectivities()
	if err != nil {
		return err
	}
	opts, err := cfg.decodeOptions()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	grid, err := gridio.Decode(in, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Image size is %dx%d.\n", len(grid[0]), len(grid))

	fmt.Fprintln(out, "\n[Binary image]")
	if err := gridio.RenderBinary(out, grid); err != nil {
		return err
	}

	for _, conn := range conns {
		labels, err := label.Label(grid, conn)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n[Labeled image (%s)]\n", conn)
		if err := gridio.RenderLabels(out, labels); err != nil {
			return err
		}
	}

	return nil
}
