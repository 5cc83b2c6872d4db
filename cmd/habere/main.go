// Command habere runs the Habere Dunelm property game: an automated
// simulator driven by simple policies, plus utility subcommands for
// inspecting the deed economics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aidanfhague/Habere-Dunelm/internal/config"
)

var version = "dev" // set via ldflags during build

func main() {
	cmd := &cli.Command{
		Name:    "habere",
		Usage:   "Durham-flavoured property game engine",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config/config.yaml",
				Usage: "path to configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "run an automated game between policy-driven players",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "override the RNG seed (dice and deck shuffles)",
					},
					&cli.IntFlag{
						Name:  "turns",
						Usage: "override the maximum number of turns",
					},
					&cli.StringSliceFlag{
						Name:  "player",
						Usage: "player name (repeat for each player)",
					},
					&cli.BoolFlag{
						Name:  "trades",
						Usage: "enable set-hunting trade proposals",
					},
					&cli.BoolFlag{
						Name:  "record",
						Usage: "record a replay of the game",
					},
					&cli.StringFlag{
						Name:  "replay-dir",
						Value: "replays",
						Usage: "directory for saved replays",
					},
				},
				Action: runSimulate,
			},
			{
				Name:   "deeds",
				Usage:  "print the deed economics table",
				Action: runDeeds,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
