// Package main provides the CLI entry point for rotagrid.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rotagrid/pkg/rotagrid"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/config"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/output"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/render"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	configPath string
	verbose    bool
	logger     *zap.Logger

	// generate
	outputPath string
	format     string

	// inspect
	inspectOutput string
	pretty        bool
	sheetsDir     string
	verify        bool
	rows          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "rotagrid",
		Short: "Generate a rotation comparison scoring template",
		Long: `rotagrid writes a scoring template with one sheet per class and one
blank row per spec, source and rotation type, ready for manual scoring.

Without the workbook writer (binaries built with -tags noxlsx) it falls back
to a directory of CSV files named after the output path: <stem>_csv/.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runGenerate,
	}

	defaultFormat := rotagrid.DefaultFormat(writer.DetectCapability())
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Taxonomy YAML file (default: built-in taxonomy)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&c.outputPath, "output", "o", rotagrid.DefaultOutput, "Output file path")
	rootCmd.Flags().StringVarP(&c.format, "format", "f", string(defaultFormat), "Output format: workbook or delimited-text (excel and csv are accepted)")

	rootCmd.AddCommand(c.newInspectCmd(), c.newTaxonomyCmd())
	return rootCmd
}

func (c *cli) initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if c.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	tax, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	format, err := rotagrid.ParseFormat(c.format)
	if err != nil {
		return err
	}

	res, err := rotagrid.Generate(tax, rotagrid.Options{
		Output: c.outputPath,
		Format: format,
		Logger: c.logger,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	render.Result(cmd.OutOrStdout(), res)
	return nil
}

func (c *cli) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [artifact]",
		Short: "Read a generated workbook or CSV directory back as JSON",
		Long: `inspect reads a workbook (.xlsx) or a CSV directory produced by rotagrid
and prints its sheets as JSON. With --verify it checks that the artifact
holds exactly the rows of the taxonomy; with --rows it prints the recovered
rows and their scores instead of the raw sheets.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runInspect,
	}

	cmd.Flags().StringVarP(&c.inspectOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&c.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().BoolVar(&c.verify, "verify", false, "Check the artifact against the taxonomy")
	cmd.Flags().BoolVar(&c.rows, "rows", false, "Output recovered rows with parsed scores")
	return cmd
}

func (c *cli) runInspect(cmd *cobra.Command, args []string) error {
	art, err := rotagrid.Inspect(args[0])
	if err != nil {
		return err
	}

	tax, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	var recovered []models.GridRow
	if c.verify || c.rows {
		if c.verify {
			if err := rotagrid.Verify(art, tax); err != nil {
				return err
			}
		}
		if recovered, err = rotagrid.Recover(art, tax); err != nil {
			return err
		}
	}

	var jsonData []byte
	if c.rows {
		jsonData, err = output.RowsToJSON(recovered, tax.Evaluators, c.pretty)
	} else {
		jsonData, err = output.ToJSON(art, c.pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case c.inspectOutput != "":
		if err := os.WriteFile(c.inspectOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case c.verify && !c.rows:
		render.Verified(out, art, recovered)
	case c.sheetsDir == "":
		fmt.Fprintln(out, string(jsonData))
	}

	if c.sheetsDir != "" {
		if err := writeSheetFiles(art, c.sheetsDir, c.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	return nil
}

func writeSheetFiles(art *models.Artifact, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range art.Sheets {
		sheet := &art.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func (c *cli) newTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the active taxonomy as YAML",
		Long: `taxonomy prints the taxonomy rotagrid would use, as YAML. Save it, edit
the classes, sources, rotation types or evaluators, and pass it back with
--config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tax, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			data, err := config.Marshal(tax)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
