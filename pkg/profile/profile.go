package profile

import (
	"fmt"
	"strings"
)

// Profile is one student record. ID doubles as the storage key and is
// always the student number.
type Profile struct {
	ID        string   `json:"id"`
	First     string   `json:"first"`
	Last      string   `json:"last"`
	StudentNo string   `json:"studentNo"`
	Email     string   `json:"email"`
	Prog      string   `json:"prog"`
	Year      string   `json:"year"`
	Interests []string `json:"interests"`
	PhotoData string   `json:"photoData,omitempty"`
}

func New(studentNo, first, last, email, prog, year string, interests []string) *Profile {
	return &Profile{
		ID:        studentNo,
		First:     first,
		Last:      last,
		StudentNo: studentNo,
		Email:     email,
		Prog:      prog,
		Year:      year,
		Interests: interests,
	}
}

func (p *Profile) FullName() string {
	return fmt.Sprintf("%s %s", p.First, p.Last)
}

// HasPhoto reports whether a photo payload is attached.
func (p *Profile) HasPhoto() bool {
	return p.PhotoData != ""
}

func (p *Profile) InterestList() string {
	return strings.Join(p.Interests, ", ")
}

// Row returns the table projection of the profile.
func (p *Profile) Row() (string, string, string, string, string) {
	return p.StudentNo, p.FullName(), p.Prog, "Year " + p.Year, p.InterestList()
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.FullName(), p.StudentNo)
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored record.
func (p *Profile) Clone() *Profile {
	c := *p
	if p.Interests != nil {
		c.Interests = append([]string(nil), p.Interests...)
	}
	return &c
}
