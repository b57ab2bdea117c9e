package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tilecollapse/pkg/locale"
)

var (
	verbose bool
	lang    string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tilecollapse",
	Short: "Fill grids with tiles whose edges fit together",
	Long: `tilecollapse fills a grid with tiles so that every pair of touching
tiles is compatible, using Wave Function Collapse. Tiles come from a
built-in tileset or from a PNG atlas whose edge pixels decide which tiles
may touch.

Examples:
  tilecollapse solve --tileset pipes -W 40 -H 20
  tilecollapse solve --atlas tiles.png --render window --seed 7
  tilecollapse batch --tileset terrain -n 4
  tilecollapse tilesets`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()

		if err := locale.Init(lang); err != nil {
			logger.Warn().Err(err).Msg("locale-unavailable")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every attempt")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", locale.DefaultLanguage, "Message catalog language")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.Style{color.FgRed, color.OpBold}.Sprint(err.Error()))
		os.Exit(1)
	}
}
