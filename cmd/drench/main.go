package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/drencher/drench/config"
)

var (
	cfg       *config.Config
	flagDebug bool
)

var mainCommand = &cobra.Command{
	Use:   "drench",
	Short: "the drench board game, with AI and human players",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if flagDebug || cfg.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	mainCommand.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
