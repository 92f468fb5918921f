package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/billboard/layout"
)

func newFitsCmd(flags *globalFlags) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "fits <input>",
		Short: "Report whether every case fits at a fixed font size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("--size must not be negative, got %d", size)
			}
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.closeLog()

			boards, err := readBillboards(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return writeFits(cmd, boards, size)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 1, "Font size to test")
	return cmd
}

func writeFits(cmd *cobra.Command, boards []layout.Billboard, size int) error {
	out := cmd.OutOrStdout()
	failed := 0
	for i, b := range boards {
		if err := b.Validate(); err != nil {
			failed++
			fmt.Fprintf(out, "Case #%d: error: %v\n", i+1, err)
			continue
		}
		lines, ok := b.Pack(size)
		fmt.Fprintf(out, "Case #%d: %t (%d lines)\n", i+1, ok, len(lines))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases are invalid", failed, len(boards))
	}
	return nil
}
