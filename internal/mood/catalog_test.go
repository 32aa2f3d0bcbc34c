package mood

import "testing"

func TestVariantsCatalog(t *testing.T) {
	got := Variants()
	want := []string{"Happy", "Calm", "Tired", "Angry", "Sad", "Stressed"}

	if len(got) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("variant %d = %q, want %q", i, got[i].Name, name)
		}
		if got[i].Tip == "" {
			t.Errorf("variant %q has empty tip", name)
		}
		if len(got[i].Questions) != 3 {
			t.Errorf("variant %q has %d questions, want 3", name, len(got[i].Questions))
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"happy", "HAPPY", "Happy"} {
		v, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) ok = false, want true", name)
		}
		if v.Name != "Happy" {
			t.Errorf("Lookup(%q).Name = %q, want %q", name, v.Name, "Happy")
		}
	}
}

func TestLookupUnknownReturnsDefault(t *testing.T) {
	v, ok := Lookup("Melancholic")
	if ok {
		t.Error("Lookup of unknown mood reported ok = true")
	}
	if v.Name != "Default" {
		t.Errorf("default variant name = %q, want %q", v.Name, "Default")
	}
	if len(v.Questions) != 3 {
		t.Errorf("default variant has %d questions, want 3", len(v.Questions))
	}
	if v.Questions[0] != "How did you feel today?" {
		t.Errorf("default first question = %q", v.Questions[0])
	}
}
