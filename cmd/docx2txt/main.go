// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docx2txt CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2txt/internal/logger"
	"github.com/pdiddy/docx2txt/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envPrefix namespaces environment overrides, e.g. DOCX2TXT_INPUT_DIR.
const envPrefix = "DOCX2TXT"

var (
	// log carries diagnostics to stderr; replaced in PersistentPreRunE.
	log = logger.Discard()

	// configUsed is the config file viper read, if any.
	configUsed string
)

// rootCmd is the base command for the docx2txt CLI.
var rootCmd = &cobra.Command{
	Use:   "docx2txt",
	Short: "Convert Word documents to plain text",
	Long: `docx2txt converts every .docx document in a directory into a UTF-8 .txt
file with the same base name. Each paragraph becomes one line.

Directories can be given as arguments, through DOCX2TXT_INPUT_DIR and
DOCX2TXT_OUTPUT_DIR, or in a docx2txt.yaml config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		log = logger.New(os.Stderr, level)
		if configUsed != "" {
			log.Info("using config file: %s", configUsed)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docx2txt.yaml or ~/.config/docx2txt/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", types.DefaultLogLevel, "diagnostics level: debug, info, warn, or error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configureViper(viper.GetViper(), cfgFile)

	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	}
}

// configureViper registers defaults, config search paths, and the
// environment prefix on v.
func configureViper(v *viper.Viper, cfgFile string) {
	v.SetDefault("input_dir", "")
	v.SetDefault("output_dir", "")
	v.SetDefault("backend", string(types.BackendNative))
	v.SetDefault("report", "")
	v.SetDefault("log_level", types.DefaultLogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("docx2txt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "docx2txt"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
