package decor

import "testing"

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range Catalog {
		if seen[it.ID] {
			t.Errorf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
		if it.Cost <= 0 {
			t.Errorf("%s: non-positive cost %d", it.ID, it.Cost)
		}
		if it.Currency != Stars && it.Currency != Gems {
			t.Errorf("%s: unknown currency %q", it.ID, it.Currency)
		}
	}
}

func TestByID(t *testing.T) {
	it, ok := ByID("build-castle")
	if !ok {
		t.Fatal("castle missing")
	}
	if it.Cost != 50 || it.Currency != Stars {
		t.Errorf("castle = %+v", it)
	}
	if _, ok := ByID("moon-base"); ok {
		t.Error("unknown item resolved")
	}
}

func TestByCategory(t *testing.T) {
	trees := ByCategory("Trees")
	if len(trees) != 5 {
		t.Errorf("got %d trees, want 5", len(trees))
	}
	vehicles := ByCategory("Vehicles")
	for _, v := range vehicles {
		if v.Currency != Gems {
			t.Errorf("%s: vehicles cost gems, got %s", v.ID, v.Currency)
		}
	}
}

func TestCategoriesOrdered(t *testing.T) {
	want := []string{"Trees", "Flowers", "Buildings", "Animals", "Fun", "Vehicles", "Magic"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
