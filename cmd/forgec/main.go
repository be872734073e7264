package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peterkuimelis/forgec/internal/card"
	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/config"
	"github.com/peterkuimelis/forgec/internal/convert"
	"github.com/peterkuimelis/forgec/internal/forge"
	"github.com/peterkuimelis/forgec/internal/observability"
	"github.com/peterkuimelis/forgec/internal/report"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "forgec",
		Short:         "Compile Cockatrice card databases to Forge card scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newCompileCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the forgec version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "forgec version %s\n", version)
		},
	})

	return cmd
}

// loadConfig reads the config file when given, otherwise the defaults.
func loadConfig(path, logLevel, logFormat string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}

func newConvertCmd() *cobra.Command {
	var (
		outDir     string
		configPath string
		logLevel   string
		logFormat  string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "convert <database.xml>",
		Short: "Convert every card of a database to script files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, logLevel, logFormat)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var rec report.Recorder = report.NewMemoryRecorder()
			if !quiet {
				rec = report.NewTextRecorder(cmd.OutOrStdout())
			}

			cv := convert.New(cfg.OutputDir, compiler.New(cfg.CompilerOptions()...), logger, rec)
			sum, err := cv.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Converted %d of %d card(s), skipped %d, output in %s\n",
				sum.Converted, sum.Found, sum.Skipped, cfg.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to forgec YAML config")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log format: json or console")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-card event output")
	return cmd
}

func newCompileCmd() *cobra.Command {
	var (
		name       string
		manaCost   string
		typeLine   string
		pt         string
		loyalty    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "compile [rules text]",
		Short: "Compile one card's rules text and print the script",
		Long: `Compile one card's rules text and print the Forge script to stdout.
The text is taken from the arguments, or from stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, "", "")
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(data)
			}

			c := card.Card{
				Name:     name,
				ManaCost: manaCost,
				Type:     typeLine,
				PT:       pt,
				Loyalty:  loyalty,
				Text:     card.DecodeEntities(strings.TrimSpace(text)),
			}
			script := compiler.New(cfg.CompilerOptions()...).Compile(c.Text)
			fmt.Fprintln(cmd.OutOrStdout(), forge.Render(c, script))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Unnamed Card", "card name")
	cmd.Flags().StringVar(&manaCost, "mana", "", "mana cost, Cockatrice notation (e.g. 1BB)")
	cmd.Flags().StringVar(&typeLine, "type", "", "type line (e.g. 'Creature - Human Wizard')")
	cmd.Flags().StringVar(&pt, "pt", "", "power/toughness (e.g. 2/2)")
	cmd.Flags().StringVar(&loyalty, "loyalty", "", "loyalty (planeswalkers)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to forgec YAML config")
	return cmd
}
