package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2txt/internal/convert"
	"github.com/pdiddy/docx2txt/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-dir] [output-dir]",
	Short: "Convert .docx files in a directory to .txt",
	Long: `Convert reads every file ending in .docx directly inside input-dir (not
subdirectories) and writes its paragraph text to output-dir/<name>.txt, one
paragraph per line. Existing .txt files are overwritten. A document that
cannot be read or written is reported and skipped; the rest of the batch
continues.

input-dir defaults to the current directory; output-dir defaults to
input-dir. The native backend parses documents in-process; the pandoc
backend runs the pandoc/core image through docker or podman.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("backend", string(types.BackendNative), "document reader: native or pandoc")
	convertCmd.Flags().String("report", "", "write a YAML report of the run to this file")
	_ = viper.BindPFlag("backend", convertCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("report", convertCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(viper.GetViper(), args)
	if err != nil {
		return err
	}
	log.Debug("input: %s, output: %s, backend: %s", cfg.InputDir, cfg.OutputDir, cfg.Backend)

	reader, err := newReader(cfg.Backend, log)
	if err != nil {
		return err
	}

	req := cfg.Request()
	sum, err := convert.Run(reader, req, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		rep := convert.NewReport(req, cfg.Backend, sum, time.Now())
		if err := convert.WriteReport(cfg.ReportPath, rep); err != nil {
			return err
		}
		log.Info("report written to %s", cfg.ReportPath)
	}

	if sum.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", sum.Failed)
	}
	return nil
}

// resolveConfig merges viper settings with positional arguments, which take
// precedence, and validates the result.
func resolveConfig(v *viper.Viper, args []string) (types.ConversionConfig, error) {
	var cfg types.ConversionConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if len(args) > 0 {
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
