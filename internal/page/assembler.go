// Package page partitions one dump page's revision text into level-2
// sections and builds one lexicon.Page, isolating any per-page failure
// so it never reaches the Dump Driver.
package page

import (
	"fmt"
	"log"

	"github.com/temporal-IPA/hewiktparse/internal/entry"
	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
	"github.com/temporal-IPA/hewiktparse/internal/wikitext"
)

// Input is the subset of a dump <page>/<revision> the assembler needs —
// the XML shape itself is internal/dump's concern.
type Input struct {
	Pid        int
	RevisionID int
	Sha1       string
	Title      string
	Text       string
}

// Assemble builds a Page from in. Any failure inside section partition
// or entry assembly is caught, logged with the page title, and reported
// as an error: a malformed page is dropped, never fatal to the dump.
func Assemble(in Input) (p *lexicon.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("page %q (pid %d): dropped: %v", in.Title, in.Pid, r)
			p, err = nil, fmt.Errorf("page %q: %v", in.Title, r)
		}
	}()

	top := wikitext.BuildSections(in.Text)
	levelTwo := wikitext.CollectByLevel(top, 2)

	entries := make([]lexicon.Entry, 0, len(levelTwo))
	for _, sec := range levelTwo {
		entries = append(entries, entry.Assemble(sec))
	}

	return &lexicon.Page{
		Pid:        in.Pid,
		RevisionID: in.RevisionID,
		Sha1:       in.Sha1,
		Title:      in.Title,
		Entries:    entries,
	}, nil
}
