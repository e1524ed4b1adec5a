package gadget

import (
	"strings"
	"testing"
)

func TestRandomCodename_Form(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := randomCodename()
		if !strings.HasPrefix(name, codenamePrefix) {
			t.Fatalf("randomCodename() = %q, want %q prefix", name, codenamePrefix)
		}
		noun := strings.TrimPrefix(name, codenamePrefix)
		found := false
		for _, n := range codenameNouns {
			if n == noun {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("randomCodename() = %q, noun not in vocabulary", name)
		}
	}
}

func TestVocabulary_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool, len(codenameNouns))
	for _, n := range codenameNouns {
		if seen[n] {
			t.Errorf("duplicate noun %q in vocabulary", n)
		}
		seen[n] = true
	}
	if VocabularySize() != len(seen) {
		t.Errorf("VocabularySize() = %d, want %d", VocabularySize(), len(seen))
	}
}

func TestRollSuccessProbability_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p := rollSuccessProbability()
		if p < 1 || p > 100 {
			t.Fatalf("rollSuccessProbability() = %d, want 1-100", p)
		}
	}
}

func TestAssess_Display(t *testing.T) {
	g := Gadget{ID: "gdt-test1234", Name: "The Kraken", Status: StatusAvailable}

	a := assess(g)

	if a.ID != g.ID || a.Name != g.Name {
		t.Errorf("assess() lost gadget fields: %+v", a.Gadget)
	}
	if !strings.HasSuffix(a.SuccessProbability, "%") {
		t.Errorf("SuccessProbability = %q, want trailing %%", a.SuccessProbability)
	}
	if !strings.HasPrefix(a.Display, "The Kraken - ") ||
		!strings.HasSuffix(a.Display, "% mission success probability") {
		t.Errorf("Display = %q, want \"<name> - <n>%% mission success probability\"", a.Display)
	}
}
