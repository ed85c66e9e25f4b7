// The command "hewikiextract" builds a structured lexicographic database
// from a Hebrew Wiktionary dump.
//
// It scans an XML (uncompressed or .bz2, local or HTTP/HTTPS) export,
// walks each page's wikitext into a section tree, and assembles one Entry
// per level-2 heading (one part-of-speech/homograph per entry). Results
// are written as a JSON array of pages.
//
// Example usages:
//
//	# Extract from a local dump:
//	hewikiextract extract hewiktionary-latest-pages-articles.xml.bz2 --out pages.json
//
//	# Stream directly from Wikimedia over HTTPS:
//	hewikiextract extract --url https://dumps.wikimedia.org/hewiktionary/latest/hewiktionary-latest-pages-articles.xml.bz2
//
//	# Re-check a previously produced extraction against its invariants:
//	hewikiextract validate pages.json
package main

import (
	"context"
	"log"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const helpText = `hewikiextract - Hebrew Wiktionary structured-lexicon extractor

Usage:
  hewikiextract extract [flags] <path-or-URL>
      Parse a local dump file (or, with --url, an HTTP/HTTPS source) and
      write a JSON array of pages, one per kept dump page.

  hewikiextract validate <pages.json>
      Re-parse a previously produced JSON file and check it against the
      extractor's invariants, exiting non-zero on the first violation.
`

func main() {
	log.SetFlags(log.Lshortfile)

	root := &cobra.Command{
		Use:   "hewikiextract",
		Short: "Hebrew Wiktionary structured-lexicon extractor",
		Long:  helpText,
	}
	root.AddCommand(newExtractCmd())
	root.AddCommand(newValidateCmd())

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}
