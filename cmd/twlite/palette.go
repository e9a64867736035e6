package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twlite/internal/report"
	"github.com/yacobolo/twlite/internal/tables"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the named colors usable in text-, bg- and border- utilities",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		families, err := selectFamilies(k.String("family"))
		if err != nil {
			return err
		}
		report.PrintPalette(os.Stdout, families, report.ShouldUseColors(getBoolWithFallback("color", "color", false)))
		return nil
	},
}

func init() {
	paletteCmd.Flags().String("family", "", "Only list one color family (e.g. slate)")
}

// selectFamilies groups the built-in palette and keeps only the named family
// when one is given.
func selectFamilies(name string) ([]report.Family, error) {
	families, err := report.GroupPalette(tables.Palette)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return families, nil
	}

	for _, f := range families {
		if f.Name == name {
			return []report.Family{f}, nil
		}
	}
	return nil, fmt.Errorf("unknown palette family %q", name)
}
