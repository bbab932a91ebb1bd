/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/genes/internal/iofs"
	"github.com/gnames/genes/internal/iologger"
	genes "github.com/gnames/genes/pkg"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", genes.Version, genes.Build),
		Use:     "genes",
		Short:   "Curates Entrez Gene data into lookup tables",
		Long: `genes turns NCBI Entrez Gene dumps into clean tables for
gene symbol lookup and outdated gene ID resolution.

Workflow:
  1. Download: fetch gene_info and gene_history, record their versions
  2. Process:  filter one organism, resolve merged IDs, publish TSV tables
  3. Load:     copy the published tables into PostgreSQL

Configuration: ~/.config/genes/config.yaml
Raw sources:   ~/.config/genes/sources.yaml
Logs:          ~/.local/share/genes/logs/genes.log

Examples:
  genes download
  genes process
  genes load`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionFlag(cmd)
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for genes")

	rootCmd.AddCommand(
		getDownloadCmd(),
		getProcessCmd(),
		getLoadCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// defaults until config.yaml is read
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"sources_file", config.SourcesFilePath(homeDir),
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	return iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are bound one by one and match the persistent
	// fields of config.ToOptions().
	v.SetEnvPrefix("GENES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("raw_dir", "GENES_RAW_DIR")
	v.BindEnv("data_dir", "GENES_DATA_DIR")

	v.BindEnv("download.timeout", "GENES_DOWNLOAD_TIMEOUT")

	v.BindEnv("process.tax_id", "GENES_PROCESS_TAX_ID")
	v.BindEnv("process.with_synonyms", "GENES_PROCESS_WITH_SYNONYMS")
	v.BindEnv("process.with_xrefs", "GENES_PROCESS_WITH_XREFS")

	v.BindEnv("database.host", "GENES_DATABASE_HOST")
	v.BindEnv("database.port", "GENES_DATABASE_PORT")
	v.BindEnv("database.user", "GENES_DATABASE_USER")
	v.BindEnv("database.password", "GENES_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GENES_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GENES_DATABASE_SSL_MODE")

	v.BindEnv("log.level", "GENES_LOG_LEVEL")
	v.BindEnv("log.format", "GENES_LOG_FORMAT")
	v.BindEnv("log.destination", "GENES_LOG_DESTINATION")

	v.AutomaticEnv()
}
