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

	"github.com/gnames/genes/internal/iodownload"
	"github.com/gnames/genes/internal/iosources"
	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getDownloadCmd returns the download command.
func getDownloadCmd() *cobra.Command {
	var sourceNames []string

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download raw Entrez Gene files",
		Long: `Fetch raw Entrez Gene files and record their versions.

This command:
  1. Reads sources.yaml to find the URLs of raw files
  2. Downloads every source (or the ones given by --source)
     into the raw directory
  3. Records retrieval time, modification time and SHA-256
     of each file in versions.json next to the raw files

A failed download leaves the previous file and its versions.json
entry untouched.

Raw sources are configured in: ~/.config/genes/sources.yaml

Examples:
  # Download all sources
  genes download

  # Download gene_history only
  genes download -s gene_history`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDownload(cmd, sourceNames)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	downloadCmd.Flags().StringSliceVarP(
		&sourceNames, "source", "s", []string{},
		"names of sources to download (empty = all)",
	)

	return downloadCmd
}

func runDownload(cmd *cobra.Command, sourceNames []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cmd.Flags().Changed("source") {
		cfg.Update([]config.Option{config.OptDownloadSources(sourceNames)})
	}

	d := iodownload.New(cfg, iosources.New(cfg))
	_, err := d.Download(ctx)
	return err
}
