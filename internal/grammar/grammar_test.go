package grammar

import "testing"

func TestNormalizeGenderAndPOS(t *testing.T) {
	info := Normalize(map[string]string{"מין": "זכר", "חלק דיבר": "שם עצם"})
	if info.Gender == nil || *info.Gender != "male" {
		t.Errorf("gender = %v", info.Gender)
	}
	if info.PartOfSpeech == nil || *info.PartOfSpeech != "noun" {
		t.Errorf("part_of_speech = %v", info.PartOfSpeech)
	}
}

func TestNormalizeUnknownGenderAbsent(t *testing.T) {
	info := Normalize(map[string]string{"מין": "לא ידוע"})
	if info.Gender != nil {
		t.Errorf("gender = %v, want absent", info.Gender)
	}
}

func TestNormalizeRootSingle(t *testing.T) {
	info := Normalize(map[string]string{"שורש": "{{שרש|כתב}}"})
	if info.Root == nil || *info.Root != "כתב" {
		t.Errorf("root = %v", info.Root)
	}
}

func TestNormalizeRoot3(t *testing.T) {
	info := Normalize(map[string]string{"שורש": "{{שרש3|כ|ת|ב}}"})
	if info.Root == nil || *info.Root != "כתב" {
		t.Errorf("root = %v, want כתב", info.Root)
	}
}

func TestNormalizePronunciation(t *testing.T) {
	info := Normalize(map[string]string{"הגייה": "'''sh'''alom"})
	if info.Pronunciation == nil {
		t.Fatal("pronunciation absent")
	}
	if got, want := *info.Pronunciation, "'ʃalom"; got != want {
		t.Errorf("pronunciation = %q, want %q", got, want)
	}
}

func TestParseFormTagged(t *testing.T) {
	d := ParseForm("ר' ספרים")
	if d.Tag != "plural" || d.Form != "ספרים" {
		t.Errorf("ParseForm = %+v", d)
	}
	d2 := ParseForm("נ' ספרה")
	if d2.Tag != "female" || d2.Form != "ספרה" {
		t.Errorf("ParseForm = %+v", d2)
	}
}

func TestParseFormColonVariant(t *testing.T) {
	d := ParseForm("ר': ספרים")
	if d.Tag != "plural" || d.Form != "ספרים" {
		t.Errorf("ParseForm colon variant = %+v", d)
	}
}

func TestParseFormConstructMaqaf(t *testing.T) {
	d := ParseForm("ספרי־")
	if d.Tag != "construct" || d.Form != "ספרי" {
		t.Errorf("ParseForm construct = %+v", d)
	}
}

func TestParseFormUnknown(t *testing.T) {
	d := ParseForm("צורהלאידועה")
	if d.Tag != "unknown" || d.Form != "צורהלאידועה" {
		t.Errorf("ParseForm unknown = %+v", d)
	}
}

func TestNormalizeDeclensions(t *testing.T) {
	info := Normalize(map[string]string{"נטיות": "ר' ספרים, נ' ספרה"})
	if len(info.Declensions) != 2 {
		t.Fatalf("got %d declensions, want 2: %+v", len(info.Declensions), info.Declensions)
	}
	if info.Declensions[0].Tag != "plural" || info.Declensions[1].Tag != "female" {
		t.Errorf("declensions = %+v", info.Declensions)
	}
}
