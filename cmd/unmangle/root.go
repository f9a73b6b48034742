package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hexlattice/unmangle/config"
	"github.com/hexlattice/unmangle/estree"
	"github.com/hexlattice/unmangle/rename"
	"github.com/hexlattice/unmangle/suggest"
)

var (
	cfgFile     string
	verbose     bool
	selectNames []string
	selectLines []int
	noSuggest   bool
	noComments  bool
	noXrefs     bool

	fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "unmangle <input.js> [output.js]",
	Short: "Rename and annotate functions in minified JavaScript",
	Long: `Unmangle rewrites minified or obfuscated JavaScript into something a
human can read: every identifier gets a unique name, anonymous functions
get stable names, and an AI collaborator suggests descriptive names and
comments for each function. Without an output path the result goes to
stdout.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringSliceVar(&selectNames, "functions", nil, "Only process functions with these names")
	rootCmd.Flags().IntSliceVar(&selectLines, "lines", nil, "Only process functions declared on these lines")
	rootCmd.Flags().BoolVar(&noSuggest, "no-suggest", false, "Skip AI name suggestions")
	rootCmd.Flags().BoolVar(&noComments, "no-comments", false, "Skip AI comments")
	rootCmd.Flags().BoolVar(&noXrefs, "no-xrefs", false, "Skip cross-reference suffixes and comments")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if len(selectNames) > 0 {
		cfg.Rename.Functions = selectNames
	}
	if len(selectLines) > 0 {
		cfg.Rename.Lines = selectLines
	}
	if noXrefs {
		cfg.Rename.XrefSuffix = false
		cfg.Rename.XrefComments = false
	}
	if noSuggest {
		cfg.OpenAI.SuggestNames = false
	}
	if noComments {
		cfg.OpenAI.AddComments = false
	}

	source, err := afero.ReadFile(fs, args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	pipeline, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output, err := pipeline.Run(ctx, string(source))
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if err := afero.WriteFile(fs, args[1], []byte(output), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}
		color.Green("Wrote %s", args[1])
		return nil
	}
	fmt.Print(output)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(), nil
}

func buildPipeline(cfg *config.Config, log *logrus.Logger) (*rename.Pipeline, error) {
	p := &rename.Pipeline{
		Parser:         &estree.CommandParser{Command: cfg.Parser.Command},
		Selection:      rename.NewSelection(cfg.Rename.Functions, cfg.Rename.Lines),
		XrefSuffix:     cfg.Rename.XrefSuffix,
		XrefComments:   cfg.Rename.XrefComments,
		OverridePrefix: cfg.Rename.OverridePrefix,
		Log:            log,
	}

	if cfg.OpenAI.SuggestNames || cfg.OpenAI.AddComments {
		client, err := suggest.NewClient(suggest.Options{
			Model:       cfg.OpenAI.Model,
			BaseURL:     cfg.OpenAI.BaseURL,
			MaxTokens:   cfg.OpenAI.MaxTokens,
			Temperature: cfg.OpenAI.Temperature,
			Log:         log,
		})
		if err != nil {
			return nil, err
		}
		if cfg.OpenAI.SuggestNames {
			p.Namer = client
		}
		if cfg.OpenAI.AddComments {
			p.Describer = client
		}
	}
	return p, nil
}
