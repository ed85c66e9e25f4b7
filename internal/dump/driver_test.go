package dump

import (
	"strings"
	"testing"
)

const sampleDump = `<mediawiki>
<page>
  <title>שלום</title>
  <ns>0</ns>
  <id>1</id>
  <revision>
    <id>10</id>
    <sha1>aaa</sha1>
    <text>== שלום ==
{{ניתוח דקדוקי|שלום|מין=זכר}}
# ברכה.
</text>
  </revision>
</page>
<page>
  <title>hello</title>
  <ns>0</ns>
  <id>2</id>
  <revision>
    <id>11</id>
    <sha1>bbb</sha1>
    <text>== hello ==
# greeting.
</text>
  </revision>
</page>
<page>
  <title>שיחה:שלום</title>
  <ns>1</ns>
  <id>3</id>
  <revision>
    <id>12</id>
    <sha1>ccc</sha1>
    <text>not relevant</text>
  </revision>
</page>
</mediawiki>`

func TestDriverRunFiltersAndAssembles(t *testing.T) {
	d := Driver{Workers: 2}
	pages, err := d.Run(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1 (ns filter + ASCII-letter title filter): %+v", len(pages), pages)
	}
	if pages[0].Title != "שלום" {
		t.Errorf("page title = %q", pages[0].Title)
	}
	if len(pages[0].Entries) != 1 {
		t.Errorf("entries = %+v", pages[0].Entries)
	}
}

func TestHasASCIILetter(t *testing.T) {
	if !hasASCIILetter("hello") {
		t.Error("hasASCIILetter(hello) = false")
	}
	if hasASCIILetter("שלום") {
		t.Error("hasASCIILetter(שלום) = true")
	}
}
