package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AnotherFoxGuy/mofilereader/pkg/catalog"
	"github.com/AnotherFoxGuy/mofilereader/pkg/config"
	"github.com/AnotherFoxGuy/mofilereader/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands.
func SetContainer(c *di.Container) {
	container = c
}

type contextKey string

const (
	readerContextKey contextKey = "reader"
	configContextKey contextKey = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mocat",
	Short: "mocat - gettext MO catalog reader",
	Long: `mocat reads compiled gettext catalogs (.mo files) and answers
translation lookups, with optional disambiguation contexts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		setupLogging(cfg.Logging.Level)

		reader, err := catalog.NewReader(catalog.Options{Encoding: cfg.Encoding})
		if err != nil {
			return fmt.Errorf("failed to create reader: %w", err)
		}
		if cfg.CatalogPath != "" {
			if err := reader.Open(cfg.CatalogPath); err != nil {
				return fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogPath, err)
			}
			log.Debug().Str("catalog", cfg.CatalogPath).Int("entries", reader.Count()).Msg("catalog loaded")
		}

		ctx := context.WithValue(cmd.Context(), readerContextKey, reader)
		ctx = context.WithValue(ctx, configContextKey, cfg)
		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Path to the .mo catalog file")
	rootCmd.PersistentFlags().StringP("encoding", "e", "", "Catalog character set (IANA name, default UTF-8)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
}

// resolveConfig layers configuration: defaults, then the config file,
// then MOCAT_* environment variables, then explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	} else if !config.ConfigExists(configPath) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath, _ = cmd.Flags().GetString("catalog")
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding, _ = cmd.Flags().GetString("encoding")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}

	return cfg, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// readerFromCmd fetches the catalog reader prepared by the root command.
func readerFromCmd(cmd *cobra.Command) (*catalog.Reader, error) {
	reader, ok := cmd.Context().Value(readerContextKey).(*catalog.Reader)
	if !ok {
		return nil, fmt.Errorf("reader not found in command context")
	}
	return reader, nil
}

// configFromCmd fetches the resolved configuration.
func configFromCmd(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configContextKey).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("config not found in command context")
	}
	return cfg, nil
}
