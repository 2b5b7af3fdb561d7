package profile

import (
	"encoding/json"
	"testing"
)

func TestRow(t *testing.T) {
	p := New("S100", "Ann", "Lee", "a@b.com", "CS", "2", []string{"art", "music"})

	no, name, prog, year, interests := p.Row()
	if no != "S100" || name != "Ann Lee" || prog != "CS" || year != "Year 2" || interests != "art, music" {
		t.Fatalf("unexpected row: %q %q %q %q %q", no, name, prog, year, interests)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	p := New("S100", "Ann", "Lee", "a@b.com", "CS", "1", []string{"art"})
	c := p.Clone()
	c.Interests[0] = "chess"
	if p.Interests[0] != "art" {
		t.Fatalf("clone aliases the interests slice")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := New("S100", "Ann", "Lee", "a@b.com", "CS", "1", []string{})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Profile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != "S100" || back.HasPhoto() {
		t.Fatalf("unexpected round trip result: %#v", back)
	}
	if len(back.Interests) != 0 {
		t.Fatalf("expected empty interests, got %#v", back.Interests)
	}
}

func TestJSONOmitsAbsentPhoto(t *testing.T) {
	data, err := json.Marshal(New("S1", "A", "B", "a@b.c", "CS", "1", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"photoData"} {
		if string(data) != "" && jsonHasKey(data, key) {
			t.Fatalf("expected %q omitted, got %s", key, data)
		}
	}
}

func jsonHasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}
