// Package main provides the genes CLI application.
// genes curates NCBI Entrez Gene data into gene lookup tables.
package main

import "github.com/gnames/genes/cmd"

func main() {
	cmd.Execute()
}
