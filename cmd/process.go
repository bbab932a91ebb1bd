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
	"context"
	"os"
	"os/signal"

	"github.com/gnames/genes/internal/ioprocess"
	"github.com/gnames/genes/internal/iosources"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getProcessCmd returns the process command.
func getProcessCmd() *cobra.Command {
	var (
		taxID        int
		withSynonyms bool
		withXrefs    bool
	)

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Build gene tables from raw Entrez Gene files",
		Long: `Curate downloaded Entrez Gene files into published tables.

This command:
  1. Reads gene_info and gene_history from the raw directory
  2. Keeps records of one organism (--tax-id, 9606 by default)
  3. Resolves chains of merged gene IDs to current genes
  4. Publishes into the data directory:
     - genes.tsv
     - updater.tsv
     - chromosome-symbol-map.tsv
     - genes-xrefs.tsv (unless disabled)
     - versions.json
  5. Reports data problems (merge cycles, dangling merges,
     ambiguous symbols) as warnings

Outputs are replaced only after all of them are ready.

Examples:
  genes process

  # Mouse genes, without synonyms in the chromosome map
  genes process --tax-id 10090 --with-synonyms=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProcess(cmd, taxID, withSynonyms, withXrefs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	processCmd.Flags().IntVarP(
		&taxID, "tax-id", "t", 9606,
		"NCBI taxonomy ID of the organism",
	)
	processCmd.Flags().BoolVar(
		&withSynonyms, "with-synonyms", true,
		"add unambiguous synonyms to the chromosome map",
	)
	processCmd.Flags().BoolVar(
		&withXrefs, "with-xrefs", true,
		"publish genes-xrefs.tsv",
	)

	return processCmd
}

func runProcess(
	cmd *cobra.Command,
	taxID int,
	withSynonyms bool,
	withXrefs bool,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var processOpts []config.Option
	if cmd.Flags().Changed("tax-id") {
		processOpts = append(processOpts, config.OptProcessTaxID(taxID))
	}
	if cmd.Flags().Changed("with-synonyms") {
		processOpts = append(
			processOpts,
			config.OptProcessWithSynonyms(&withSynonyms),
		)
	}
	if cmd.Flags().Changed("with-xrefs") {
		processOpts = append(
			processOpts,
			config.OptProcessWithXrefs(&withXrefs),
		)
	}
	if len(processOpts) > 0 {
		cfg.Update(processOpts)
	}

	p := ioprocess.New(cfg, iosources.New(cfg))
	_, err := p.Process(ctx)
	return err
}
