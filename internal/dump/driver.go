// Package dump iterates <page> elements of a MediaWiki export, filters
// by namespace and title, and invokes the Page Assembler with per-page
// failure isolation.
package dump

import (
	"encoding/xml"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
	"github.com/temporal-IPA/hewiktparse/internal/page"
	"github.com/temporal-IPA/hewiktparse/internal/progress"
	"golang.org/x/sync/errgroup"
)

// Driver streams a dump and assembles kept pages. Workers bounds how
// many pages are assembled concurrently; pages are independent and may
// be processed in parallel, with no ordering contract on the result.
// Workers <= 0 means sequential processing.
type Driver struct {
	Workers int

	// OnProgress, if set, is invoked after every progress.Step pages
	// scanned (and once more at the end) with the running scanned and
	// kept counts. It is called from Run's own goroutine, never
	// concurrently, so it may drive an unsynchronized progress.Reporter.
	OnProgress func(scanned, kept int)
}

// Run reads the <mediawiki> document from r and returns every kept,
// successfully assembled Page. A page is kept when its <ns> is "0" and
// its title contains no ASCII letter; a page that fails assembly is
// logged and dropped (page.Assemble's own isolation boundary), never
// aborting the rest of the dump. Only an I/O or XML-decode fatal error
// on the stream itself is returned.
func (d Driver) Run(r io.Reader) ([]*lexicon.Page, error) {
	dec := xml.NewDecoder(r)

	limit := d.Workers
	if limit <= 0 {
		limit = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(limit)

	var (
		mu      sync.Mutex
		pages   []*lexicon.Page
		scanned int
		kept    atomic.Int64
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = g.Wait()
			return pages, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}

		var raw Page
		if err := dec.DecodeElement(&raw, &se); err != nil {
			log.Printf("dump: malformed <page> element: %v", err)
			continue
		}
		scanned++
		if d.OnProgress != nil && scanned%progress.Step == 0 {
			d.OnProgress(scanned, int(kept.Load()))
		}
		if raw.Ns != "0" || hasASCIILetter(raw.Title) {
			continue
		}

		in := page.Input{
			Pid:        raw.ID,
			RevisionID: raw.Revision.ID,
			Sha1:       raw.Revision.Sha1,
			Title:      raw.Title,
			Text:       raw.Revision.Text,
		}
		g.Go(func() error {
			p, err := page.Assemble(in)
			if err != nil {
				// page.Assemble already logged the diagnostic; the driver
				// simply continues with the next page.
				return nil
			}
			mu.Lock()
			pages = append(pages, p)
			mu.Unlock()
			kept.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return pages, err
	}
	if d.OnProgress != nil {
		d.OnProgress(scanned, int(kept.Load()))
	}
	return pages, nil
}

func hasASCIILetter(title string) bool {
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
