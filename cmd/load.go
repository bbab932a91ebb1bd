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
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gnames/genes/internal/iodb"
	"github.com/gnames/genes/internal/ioload"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load published gene tables into PostgreSQL",
		Long: `Copy published gene tables into a PostgreSQL database.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates or updates tables genes, gene_updates,
     chromosome_symbols, gene_xrefs and raw_versions
  3. Replaces their content with the files from the data directory
     in a single transaction

Run 'genes process' first to publish the tables.

Database settings are read from ~/.config/genes/config.yaml
or GENES_DATABASE_* environment variables.

Examples:
  genes load
  GENES_DATABASE_HOST=db.example.org genes load`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad()
			if err != nil {
				printLoadError(err)
			}
			return err
		},
	}

	return loadCmd
}

func runLoad() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	l := ioload.New(cfg, op)
	if _, err := l.Load(ctx); err != nil {
		return err
	}

	fmt.Println(gnlib.FormatMessage(
		"\n<em>Gene tables are loaded into %s.</em>\n",
		[]any{cfg.Database.Database},
	))
	return nil
}

func printLoadError(err error) {
	var connErr iodb.ConnectionError
	if errors.As(err, &connErr) {
		gnlib.PrintUserMessage(err)
		return
	}
	gn.PrintErrorMessage(err)
}
