package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notegen"
)

// settings collects flag values shared by the commands.
type settings struct {
	verbose    bool
	configPath string
	source     string
	table      int
	format     string
	pkg        string
	typeName   string
	include    []string
	output     string

	logger *slog.Logger
}

// Execute builds the root command and runs it. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:   "notegen",
		Short: "Generate a Go note/frequency table from a published reference table",
		Long: `notegen reads a table of note names and frequencies (by default the one
published at ` + notegen.DefaultURI + `) and prints Go source declaring
one constant per note name, with Frequency, String and parsing support.

Redirect the output to a file, or use --output to replace it atomically:

  notegen --package notes > notes_gen.go`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if s.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(s.logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, s)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&s.configPath, "config", "c", "", "Config file (default: nearest notegen.yaml)")
	flags.StringVarP(&s.source, "source", "s", "", "Table URL or file (default: "+notegen.DefaultURI+")")
	flags.IntVar(&s.table, "table", notegen.DefaultTableIndex, "Index of the <table> element holding the notes (HTML only)")
	flags.StringVar(&s.format, "format", "", "Table format: html, csv or yaml (default: from extension)")
	flags.StringArrayVar(&s.include, "include", nil, "Only keep aliases matching this glob (repeatable)")
	rootCmd.Flags().StringVar(&s.pkg, "package", "", "Package name of the generated file (default: notes)")
	rootCmd.Flags().StringVar(&s.typeName, "type", "", "Name of the generated type (default: Note)")
	rootCmd.Flags().StringVarP(&s.output, "output", "o", "", "Write to this file instead of stdout")

	rootCmd.AddCommand(newCatalogCmd(s))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolve merges the config file with the flags; flags that were set win.
func (s *settings) resolve(cmd *cobra.Command) (string, []notegen.Option, error) {
	cfg := &notegen.Config{}
	path := s.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := notegen.FindConfig(wd); err == nil {
				path = found
			}
		}
	}
	if path != "" {
		loaded, err := notegen.LoadConfig(path)
		if err != nil {
			return "", nil, err
		}
		cfg = loaded
		s.logger.Debug("config loaded", "path", path)
	}

	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	if changed("source") || cfg.Source == "" {
		cfg.Source = s.source
	}
	if changed("table") || cfg.Table == nil {
		table := s.table
		cfg.Table = &table
	}
	if changed("format") {
		cfg.Format = s.format
	}
	if changed("package") {
		cfg.Package = s.pkg
	}
	if changed("type") {
		cfg.Type = s.typeName
	}
	if changed("include") {
		cfg.Include = s.include
	}
	if changed("output") || cfg.Output == "" {
		cfg.Output = s.output
	}
	s.output = cfg.Output

	opts := append(cfg.Options(),
		notegen.WithLogger(s.logger),
		notegen.WithGenerator("notegen"),
	)
	return cfg.Source, opts, nil
}

func runGenerate(cmd *cobra.Command, s *settings) error {
	uri, opts, err := s.resolve(cmd)
	if err != nil {
		return err
	}

	svc, err := notegen.New(uri, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	var buf bytes.Buffer
	if err := svc.Generate(cmd.Context(), &buf); err != nil {
		return fmt.Errorf("failed to generate notes: %w", err)
	}
	s.logger.Debug("generator state", "state", svc.State())

	if s.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	size := buf.Len()
	if err := notegen.WriteArtifact(s.output, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.output, err)
	}
	s.logger.Info("notes written", "path", s.output, "bytes", size)
	return nil
}
