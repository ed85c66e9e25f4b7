package dump

import "encoding/xml"

// Page and Revision mirror the subset of the MediaWiki export format
// this extractor consumes. Field shape is grounded on
// stephen-mw-wikireader_fastparser/xml/xml.go's own Page/Revision
// structs, which already match this subset element-for-element.
type Page struct {
	XMLName  xml.Name `xml:"page"`
	Title    string   `xml:"title"`
	Ns       string   `xml:"ns"`
	ID       int      `xml:"id"`
	Revision Revision `xml:"revision"`
}

type Revision struct {
	ID   int    `xml:"id"`
	Sha1 string `xml:"sha1"`
	Text string `xml:"text"`
}
