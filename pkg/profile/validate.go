package profile

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RawInput is a snapshot of the form fields before validation. PhotoPath
// points at a not-yet-decoded image file; it never lands in a Profile
// directly.
type RawInput struct {
	First     string
	Last      string
	StudentNo string
	Email     string
	Prog      string
	Year      string
	Interests []string
	PhotoPath string
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	b := strings.Builder{}
	b.WriteString("invalid fields:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
	}
	return b.String()
}

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CapWords folds each space-separated token to an initial capital,
// remainder lowercase. Empty tokens stay empty so runs of spaces survive
// the round trip.
func CapWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// ValidEmail is a minimal shape check, not RFC validation.
func ValidEmail(v string) bool {
	return emailRE.MatchString(v)
}

// Validate normalizes and checks a raw form snapshot. Every required field
// is checked independently so one pass surfaces all problems at once. On
// any failure the profile is nil and the error map is non-empty; on
// success the returned profile has no photo payload attached yet.
func Validate(in RawInput) (*Profile, FieldErrors) {
	errs := FieldErrors{}

	first := CapWords(strings.TrimSpace(in.First))
	last := CapWords(strings.TrimSpace(in.Last))
	studentNo := strings.TrimSpace(in.StudentNo)
	email := strings.TrimSpace(in.Email)

	if first == "" {
		errs["first"] = "First name required"
	}
	if last == "" {
		errs["last"] = "Last name required"
	}
	if studentNo == "" {
		errs["studentNo"] = "Student number required"
	}
	if email == "" || !ValidEmail(email) {
		errs["email"] = "Valid email required"
	}
	if in.Prog == "" {
		errs["prog"] = "Choose programme"
	}
	if in.Year == "" {
		errs["year"] = "Select year"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	interests := in.Interests
	if interests == nil {
		interests = []string{}
	}
	return New(studentNo, first, last, email, in.Prog, in.Year, interests), nil
}
