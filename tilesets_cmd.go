package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"tilecollapse/pkg/tilesets"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tilesets",
		Short: "List the built-in tilesets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(color.Style{color.FgMagenta, color.OpBold}.Sprint(gotext.Get("TILESETS_HEADER")))
			for _, name := range tilesets.Names() {
				c, _ := tilesets.Lookup(name)
				ts, warnings, err := c.Build()
				if err != nil {
					return fmt.Errorf("tileset %s: %w", name, err)
				}
				fmt.Printf("  %-13s %2d tiles  %s\n", name, ts.Len(), color.Style{color.FgGray}.Sprint(c.Description()))
				for _, w := range warnings {
					logger.Debug().Str("tileset", name).Str("tile", w.Visual).Str("direction", w.Direction.String()).Msg("tileset-warning")
				}
			}
			return nil
		},
	})
}
