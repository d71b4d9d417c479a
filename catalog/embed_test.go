package catalog

import "testing"

func TestCategoriesLoad(t *testing.T) {
	t.Parallel()
	cats, err := Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("catalog ships no categories")
	}
	seen := map[string]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
	for _, want := range []string{"greetings", "food", "proverb"} {
		if !seen[want] {
			t.Errorf("missing category %q", want)
		}
	}
}

func TestDifficultyLevelsCoverScale(t *testing.T) {
	t.Parallel()
	levels, err := DifficultyLevels()
	if err != nil {
		t.Fatalf("DifficultyLevels: %v", err)
	}
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i, lvl := range levels {
		if lvl.Level != i+1 {
			t.Errorf("levels out of order: index %d has level %d", i, lvl.Level)
		}
		if lvl.Name == "" || lvl.Description == "" {
			t.Errorf("level %d missing name or description", lvl.Level)
		}
	}
}

func TestRegionsLoad(t *testing.T) {
	t.Parallel()
	regions, err := Regions()
	if err != nil {
		t.Fatalf("Regions: %v", err)
	}
	if len(regions) == 0 {
		t.Fatal("catalog ships no regions")
	}
}

func TestKnownCategory(t *testing.T) {
	t.Parallel()
	if !KnownCategory("food") {
		t.Error(`KnownCategory("food") = false`)
	}
	if KnownCategory("astrophysics") {
		t.Error(`KnownCategory("astrophysics") = true`)
	}
	if KnownCategory("") {
		t.Error(`KnownCategory("") = true`)
	}
}
