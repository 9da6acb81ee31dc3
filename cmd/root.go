package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dicepass/dicepass/internal/common/clock"
	"github.com/dicepass/dicepass/internal/common/uuid"
	"github.com/dicepass/dicepass/internal/config"
	"github.com/dicepass/dicepass/internal/dice"
	"github.com/dicepass/dicepass/internal/handlers/cli"
	"github.com/dicepass/dicepass/internal/models"
	"github.com/dicepass/dicepass/internal/repositories/wordlist"
	"github.com/dicepass/dicepass/internal/services/passphrase"
)

const (
	lengthKey   = "generate.length"
	presetKey   = "generate.preset"
	wordlistKey = "generate.wordlist"
	entropyKey  = "generate.entropy"
)

// errWordlistUnreadable is shown to the user verbatim when a custom
// wordlist cannot be read.
var errWordlistUnreadable = errors.New("Couldn't read the wordlist. Make sure the file exists.")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "dicepass",
	Short:        "Generates strong Diceware passphrases.",
	Version:      "1.0.0",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		length, err := resolveLength(cfg.Generate.Length)
		if err != nil {
			return err
		}

		// Logger
		logger := newLogger(cfg.Log)

		// Wordlist
		repo, err := buildWordlistRepo(cfg.Generate.Wordlist, logger)
		if err != nil {
			return err
		}

		// Formatting preset. The delimiter flag matters even when set to
		// an empty string, so presence is checked rather than the value.
		var delimiter *string
		if cmd.Flags().Changed("delimiter") {
			value, _ := cmd.Flags().GetString("delimiter")
			delimiter = &value
		}
		capitalize, _ := cmd.Flags().GetBool("capitalize")

		preset, err := resolvePreset(cfg.Generate.Preset, capitalize, delimiter)
		if err != nil {
			return err
		}

		svc, err := passphrase.New(&passphrase.Config{
			Length:        length,
			Preset:        preset,
			WordlistRepo:  repo,
			DiceRoller:    dice.New(),
			Clock:         clock.New(),
			UUIDGenerator: uuid.New(),
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("build passphrase service: %w", err)
		}

		handler, err := cli.New(&cli.Config{
			PassphraseService: svc,
			Logger:            logger,
			Out:               cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("build CLI handler: %w", err)
		}

		return handler.Run(cmd.Context(), &cli.RunInput{
			ShowEntropy: cfg.Generate.Entropy,
		})
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
	rootCmd.Flags().IntP("length", "l", 6, "How much words to generate.")
	rootCmd.Flags().StringP("wordlist", "w", "", "Path to a custom wordlist.")
	rootCmd.Flags().BoolP("entropy", "e", false, "Show entropy of the passphrase.")
	rootCmd.Flags().BoolP("capitalize", "c", false, "Capitalize words.")
	rootCmd.Flags().StringP("delimiter", "d", "", "Delimiter to use for joining words.")
	rootCmd.Flags().StringP("preset", "p", "", "Formatting preset to use.")

	bindFlagToViper(lengthKey, rootCmd.Flags().Lookup("length"))
	bindFlagToViper(wordlistKey, rootCmd.Flags().Lookup("wordlist"))
	bindFlagToViper(entropyKey, rootCmd.Flags().Lookup("entropy"))
	bindFlagToViper(presetKey, rootCmd.Flags().Lookup("preset"))
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newLogger builds the process logger from config. Logs go to stderr so
// generated passphrases stay alone on stdout.
func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// buildWordlistRepo returns the embedded wordlist unless a custom path
// was configured.
func buildWordlistRepo(path string, logger *logrus.Logger) (wordlist.Repository, error) {
	if path == "" {
		return wordlist.NewEmbedded()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Error("failed to read wordlist file")
		return nil, errWordlistUnreadable
	}

	return wordlist.NewMemory(&wordlist.Config{
		Lines: strings.Split(strings.TrimRight(string(data), "\n"), "\n"),
	})
}

// resolveLength validates the configured word count. Negative values
// are rejected; zero falls through so the service default applies.
func resolveLength(length int) (int, error) {
	if length < 0 {
		return 0, fmt.Errorf("invalid length %d (must not be negative)", length)
	}

	return length, nil
}

// resolvePreset turns the preset flags into a formatting preset. The
// capitalize and delimiter flags take precedence over a named preset.
func resolvePreset(name string, capitalize bool, delimiter *string) (models.Preset, error) {
	if name != "" && !models.KnownPresetName(name) {
		return models.Preset{}, fmt.Errorf("invalid preset %q (possible values: pascal, kebab, snake)", name)
	}

	preset := models.PresetFromName(name)

	if capitalize {
		preset = models.NewArbitraryPreset(true, nil)
	}

	if delimiter != nil {
		preset = models.NewArbitraryPreset(capitalize, delimiter)
	}

	return preset, nil
}
