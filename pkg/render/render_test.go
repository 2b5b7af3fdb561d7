package render

import (
	"strings"
	"testing"

	"tableflip.dev/roster/pkg/profile"
)

func ann() profile.Profile {
	return *profile.New("S100", "Ann", "Lee", "a@b.com", "CS", "1", []string{"art"})
}

func bea() profile.Profile {
	return *profile.New("S200", "Bea", "Ng", "b@c.com", "SE", "2", []string{"music"})
}

func ids(els []*Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.Profile.ID)
	}
	return out
}

func TestInsertIsNewestFirst(t *testing.T) {
	r := New()
	r.Insert(ann())
	r.Insert(bea())

	want := []string{"S200", "S100"}
	if got := ids(r.Cards()); !equal(got, want) {
		t.Fatalf("gallery order = %v, want %v", got, want)
	}
	if got := ids(r.Rows()); !equal(got, want) {
		t.Fatalf("table order = %v, want %v", got, want)
	}
}

func TestRemoveByIDIsIdempotent(t *testing.T) {
	r := New()
	r.Insert(ann())

	r.RemoveByID("S999")
	if len(r.Cards()) != 1 || len(r.Rows()) != 1 {
		t.Fatalf("removing an unknown id changed the views")
	}

	r.RemoveByID("S100")
	r.RemoveByID("S100")
	if len(r.Cards()) != 0 || len(r.Rows()) != 0 {
		t.Fatalf("expected empty views after removal")
	}
}

func TestReplaceMovesToFront(t *testing.T) {
	r := New()
	r.Insert(ann())
	r.Insert(bea())

	edited := ann()
	edited.Year = "2"
	r.Replace(edited)

	if got := ids(r.Cards()); !equal(got, []string{"S100", "S200"}) {
		t.Fatalf("gallery order after replace = %v", got)
	}
	if r.Cards()[0].Profile.Year != "2" {
		t.Fatalf("replace did not carry the edit")
	}
	// Exactly one representation per view.
	count := 0
	for _, el := range r.Rows() {
		if el.Profile.ID == "S100" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one row for S100, got %d", count)
	}
}

func TestInsertMarksCardFreshUntilSettle(t *testing.T) {
	r := New()
	r.InsertCard(ann())
	if !r.Cards()[0].Fresh {
		t.Fatalf("expected fresh card after insert")
	}
	r.Settle("S100")
	if r.Cards()[0].Fresh {
		t.Fatalf("expected settled card")
	}
}

func TestApplyFilterMatchesVisibleText(t *testing.T) {
	r := New()
	r.Insert(ann())
	r.Insert(bea())

	r.ApplyFilter("LEE")
	if r.Cards()[1].Hidden || !r.Cards()[0].Hidden {
		t.Fatalf("expected case-insensitive match on name only")
	}

	r.ApplyFilter("year 2")
	if r.Cards()[0].Hidden || !r.Cards()[1].Hidden {
		t.Fatalf("expected match against the rendered year text")
	}

	r.ApplyFilter("")
	for _, el := range r.Cards() {
		if el.Hidden {
			t.Fatalf("empty query must show everything")
		}
	}
}

func TestFilterSticksAcrossMutations(t *testing.T) {
	r := New()
	r.Insert(ann())
	r.ApplyFilter("ng")

	if !r.Cards()[0].Hidden {
		t.Fatalf("expected ann hidden under filter")
	}

	r.Insert(bea())
	if r.Cards()[0].Hidden {
		t.Fatalf("expected matching insert to be visible")
	}

	edited := bea()
	edited.Last = "Smith"
	r.Replace(edited)
	if !r.Cards()[0].Hidden {
		t.Fatalf("expected replaced element re-checked against the filter")
	}
}

func TestCardEmbedsAffordancesAndSanitizedText(t *testing.T) {
	r := New()
	p := ann()
	p.First = "An\x1b[31mn"
	r.Insert(p)

	card := r.Card(r.Cards()[0])
	if !strings.Contains(card, "edit") || !strings.Contains(card, "remove") {
		t.Fatalf("card is missing its affordances:\n%s", card)
	}
	if !strings.Contains(card, "S100") {
		t.Fatalf("card affordances must carry the id:\n%s", card)
	}
	// The ESC byte is stripped; the rest of the payload stays as plain text.
	if !strings.Contains(card, "An[31mn") {
		t.Fatalf("expected control characters stripped from user text:\n%s", card)
	}
}

func TestTableListsVisibleRows(t *testing.T) {
	r := New()
	r.Insert(ann())
	r.Insert(bea())
	r.ApplyFilter("ann")

	table := r.Table()
	if !strings.Contains(table, "S100") {
		t.Fatalf("expected S100 in table:\n%s", table)
	}
	if strings.Contains(table, "S200") {
		t.Fatalf("expected S200 filtered out:\n%s", table)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
