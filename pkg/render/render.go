// Package render keeps two visual projections of the roster, a card
// gallery and a summary table, keyed by profile id and ordered
// newest-first. It owns no storage: callers insert, replace, and remove
// projections to mirror whatever the store holds.
package render

import (
	"strings"

	"tableflip.dev/roster/pkg/profile"
)

// Element is one rendered projection of a profile. Hidden tracks the
// search filter; Fresh marks a just-inserted card until its enter
// transition settles.
type Element struct {
	Profile profile.Profile
	Hidden  bool
	Fresh   bool
}

// Renderer maintains the gallery and table projections. Both are mutated
// only through Insert/Replace/RemoveByID so they cannot drift apart from
// each other, and the active filter is re-applied after every mutation so
// new elements respect it.
type Renderer struct {
	gallery []*Element
	table   []*Element
	query   string
	theme   Theme
}

func New() *Renderer {
	return &Renderer{theme: DefaultTheme()}
}

// InsertCard places a new card at the front of the gallery and starts its
// enter transition.
func (r *Renderer) InsertCard(p profile.Profile) {
	el := &Element{Profile: p, Fresh: true}
	el.Hidden = !r.matches(el)
	r.gallery = append([]*Element{el}, r.gallery...)
}

// InsertRow places a new row at the front of the table.
func (r *Renderer) InsertRow(p profile.Profile) {
	el := &Element{Profile: p}
	el.Hidden = !r.matches(el)
	r.table = append([]*Element{el}, r.table...)
}

// Insert adds both projections for the profile.
func (r *Renderer) Insert(p profile.Profile) {
	r.InsertCard(p)
	r.InsertRow(p)
}

// RemoveByID drops the profile's projections from both views. Removing an
// absent id is a no-op.
func (r *Renderer) RemoveByID(id string) {
	r.gallery = removeElement(r.gallery, id)
	r.table = removeElement(r.table, id)
}

// Replace reflects an edit: the old projections are dropped and fresh ones
// inserted at the front. Filter state on the old elements is not patched
// in place; the re-applied query rebuilds it.
func (r *Renderer) Replace(p profile.Profile) {
	r.RemoveByID(p.ID)
	r.Insert(p)
}

// Settle ends the enter transition for the given card.
func (r *Renderer) Settle(id string) {
	for _, el := range r.gallery {
		if el.Profile.ID == id {
			el.Fresh = false
		}
	}
}

// Has reports whether the given id is currently rendered in either view.
func (r *Renderer) Has(id string) bool {
	for _, el := range r.gallery {
		if el.Profile.ID == id {
			return true
		}
	}
	for _, el := range r.table {
		if el.Profile.ID == id {
			return true
		}
	}
	return false
}

// Cards exposes the gallery elements, newest-first.
func (r *Renderer) Cards() []*Element {
	return r.gallery
}

// Rows exposes the table elements, newest-first.
func (r *Renderer) Rows() []*Element {
	return r.table
}

// ApplyFilter hides every element whose visible text does not contain the
// query, case-insensitively. An empty query shows everything. The query
// sticks: mutations re-run it against the elements they touch.
func (r *Renderer) ApplyFilter(query string) {
	r.query = query
	for _, el := range r.gallery {
		el.Hidden = !r.matches(el)
	}
	for _, el := range r.table {
		el.Hidden = !r.matches(el)
	}
}

// Query returns the active filter query.
func (r *Renderer) Query() string {
	return r.query
}

func (r *Renderer) matches(el *Element) bool {
	if r.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(visibleText(el.Profile)), strings.ToLower(r.query))
}

// visibleText approximates the full text content of a rendered element,
// which is what the filter matches against.
func visibleText(p profile.Profile) string {
	parts := []string{
		p.FullName(),
		"Student No: " + p.StudentNo,
		p.Email,
		p.Prog,
		"Year " + p.Year,
		p.InterestList(),
	}
	return Clean(strings.Join(parts, " "))
}

func removeElement(els []*Element, id string) []*Element {
	out := els[:0]
	for _, el := range els {
		if el.Profile.ID != id {
			out = append(out, el)
		}
	}
	// Drop the tail so removed elements do not linger in the backing array.
	for i := len(out); i < len(els); i++ {
		els[i] = nil
	}
	return out
}
