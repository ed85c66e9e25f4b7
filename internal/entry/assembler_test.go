package entry

import (
	"testing"

	"github.com/temporal-IPA/hewiktparse/internal/wikitext"
)

func section(t *testing.T, text string) *wikitext.Section {
	t.Helper()
	entries := wikitext.CollectByLevel(wikitext.BuildSections(text), 2)
	if len(entries) != 1 {
		t.Fatalf("got %d level-2 sections, want 1", len(entries))
	}
	return entries[0]
}

func TestAssembleBasicGreeting(t *testing.T) {
	sec := section(t, "== שלום ==\n{{ניתוח דקדוקי|שלום|מין=זכר|חלק דיבר=שם עצם}}\n# ברכה.\n")
	e := Assemble(sec)

	if e.Title != "שלום" {
		t.Errorf("title = %q", e.Title)
	}
	if e.GrammaticalInfo == nil || e.GrammaticalInfo.Gender == nil || *e.GrammaticalInfo.Gender != "male" {
		t.Errorf("grammatical info = %+v", e.GrammaticalInfo)
	}
	if e.GrammaticalInfo.PartOfSpeech == nil || *e.GrammaticalInfo.PartOfSpeech != "noun" {
		t.Errorf("part of speech = %+v", e.GrammaticalInfo.PartOfSpeech)
	}
	if len(e.Definitions) != 1 || e.Definitions[0].Definition != "ברכה." {
		t.Errorf("definitions = %+v", e.Definitions)
	}
}

func TestAssembleTranslations(t *testing.T) {
	sec := section(t, "== שלום ==\n# ברכה.\n\n=== תרגום ===\n* {{ת|en|hello}}\n* {{ת|en|peace}}\n* {{ת|fr|bonjour}}\n")
	e := Assemble(sec)

	if len(e.Translations["en"]) != 2 || e.Translations["en"][0] != "hello" || e.Translations["en"][1] != "peace" {
		t.Errorf("en translations = %+v", e.Translations["en"])
	}
	if len(e.Translations["fr"]) != 1 || e.Translations["fr"][0] != "bonjour" {
		t.Errorf("fr translations = %+v", e.Translations["fr"])
	}
}

func TestAssembleRegisterAndBorrowed(t *testing.T) {
	sec := section(t, "== מילה ==\n# '''בהשאלה''' מילה נרדפת {{משלב|סלנג}}\n")
	e := Assemble(sec)

	if len(e.Definitions) != 1 {
		t.Fatalf("definitions = %+v", e.Definitions)
	}
	d := e.Definitions[0]
	if d.IsBorrowed {
		t.Errorf("is_borrowed = true, want false (bold text is not the borrowed template)")
	}
	if d.Register == nil || *d.Register != "סלנג" {
		t.Errorf("register = %v, want סלנג", d.Register)
	}
}

func TestAssembleExample(t *testing.T) {
	sec := section(t, "== מילה ==\n# הגדרה\n#:* {{משל|דוגמה|ספר|עמוד 3}}\n")
	e := Assemble(sec)
	if len(e.Definitions) != 1 || len(e.Definitions[0].Examples) != 1 {
		t.Fatalf("definitions = %+v", e.Definitions)
	}
	ex := e.Definitions[0].Examples[0]
	if ex.Text != "דוגמה" || ex.Kind != "משל" || len(ex.Source) != 2 {
		t.Errorf("example = %+v", ex)
	}
}

func TestAssembleSynonymsNotDoubleBound(t *testing.T) {
	sec := section(t, "== מילה ==\n# הגדרה\n\n=== מילים נרדפות ===\n* [[דומה]]\n\n=== ניגודים ===\n* [[הפוך]]\n")
	e := Assemble(sec)
	if len(e.Synonyms) != 1 || e.Synonyms[0].Link == nil || e.Synonyms[0].Link.Link != "דומה" {
		t.Errorf("synonyms = %+v", e.Synonyms)
	}
	if len(e.Antonyms) != 1 || e.Antonyms[0].Link == nil || e.Antonyms[0].Link.Link != "הפוך" {
		t.Errorf("antonyms = %+v", e.Antonyms)
	}
}

func TestAssembleEtymologyEmptyWhenNoList(t *testing.T) {
	sec := section(t, "== מילה ==\n# הגדרה\n\n=== גיזרון ===\nפסקת פרוזה ללא רשימה.\n")
	e := Assemble(sec)
	if len(e.Etymology) != 0 {
		t.Errorf("etymology = %+v, want empty (non-list fallback)", e.Etymology)
	}
}
