package profile

import (
	"testing"
)

func validInput() RawInput {
	return RawInput{
		First:     "ann",
		Last:      "LEE",
		StudentNo: "S100",
		Email:     "a@b.com",
		Prog:      "CS",
		Year:      "1",
		Interests: []string{"art"},
	}
}

func TestValidateNormalizes(t *testing.T) {
	p, errs := Validate(validInput())
	if errs != nil {
		t.Fatalf("expected valid input, got errors: %v", errs)
	}
	if p.First != "Ann" || p.Last != "Lee" {
		t.Fatalf("expected capitalized names, got %q %q", p.First, p.Last)
	}
	if p.ID != "S100" || p.ID != p.StudentNo {
		t.Fatalf("expected id to equal student number, got id=%q studentNo=%q", p.ID, p.StudentNo)
	}
	if p.PhotoData != "" {
		t.Fatalf("expected no photo payload on a fresh profile, got %q", p.PhotoData)
	}
}

func TestValidateTrims(t *testing.T) {
	in := validInput()
	in.First = "  ann "
	in.Email = " a@b.com  "
	in.StudentNo = " S100 "

	p, errs := Validate(in)
	if errs != nil {
		t.Fatalf("expected valid input, got errors: %v", errs)
	}
	if p.First != "Ann" {
		t.Fatalf("expected trimmed first name, got %q", p.First)
	}
	if p.Email != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q", p.Email)
	}
	if p.ID != "S100" {
		t.Fatalf("expected trimmed student number as id, got %q", p.ID)
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	p, errs := Validate(RawInput{})
	if p != nil {
		t.Fatalf("expected no profile for empty input")
	}
	for _, f := range []string{"first", "last", "studentNo", "email", "prog", "year"} {
		if errs[f] == "" {
			t.Errorf("expected error for field %q", f)
		}
	}
	if len(errs) != 6 {
		t.Fatalf("expected 6 field errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateSingleBadField(t *testing.T) {
	in := validInput()
	in.Email = ""

	p, errs := Validate(in)
	if p != nil {
		t.Fatalf("expected no profile when email is empty")
	}
	if len(errs) != 1 || errs["email"] == "" {
		t.Fatalf("expected only an email error, got %v", errs)
	}
}

func TestValidateEmailShape(t *testing.T) {
	bad := []string{"plain", "a@b", "a b@c.d", "a@b c.d", "@b.c", "a@.c", "a@@b.c"}
	for _, addr := range bad {
		in := validInput()
		in.Email = addr
		if p, errs := Validate(in); p != nil || errs["email"] == "" {
			t.Errorf("expected %q to be rejected", addr)
		}
	}

	good := []string{"a@b.com", "first.last@school.edu", "x+y@sub.domain.io"}
	for _, addr := range good {
		in := validInput()
		in.Email = addr
		if _, errs := Validate(in); errs != nil {
			t.Errorf("expected %q to be accepted, got %v", addr, errs)
		}
	}
}

func TestValidateNilInterests(t *testing.T) {
	in := validInput()
	in.Interests = nil

	p, errs := Validate(in)
	if errs != nil {
		t.Fatalf("expected valid input, got errors: %v", errs)
	}
	if p.Interests == nil || len(p.Interests) != 0 {
		t.Fatalf("expected empty non-nil interests, got %#v", p.Interests)
	}
}

func TestCapWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ann", "Ann"},
		{"LEE", "Lee"},
		{"mary jane", "Mary Jane"},
		{"a  b", "A  B"}, // double space preserved as empty segment
		{"", ""},
		{"x", "X"},
		{"émile", "Émile"},
		{"örjan ÅBERG", "Örjan Åberg"},
	}
	for _, tc := range tests {
		if got := CapWords(tc.in); got != tc.want {
			t.Errorf("CapWords(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{"year": "Select year", "email": "Valid email required"}
	if got := errs.Error(); got != "invalid fields: email year" {
		t.Fatalf("unexpected error string: %q", got)
	}
}
