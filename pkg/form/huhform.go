package form

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/store"
)

// BuildForm assembles the interactive add/edit form around the given input
// snapshot. Field validation runs inline so an error sits next to the
// offending field; the option sets come from config, never from the
// validator.
func BuildForm(in *profile.RawInput, cfg store.Config, submitLabel string) *huh.Form {
	required := func(msg string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(msg)
			}
			return nil
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(submitLabel),
			huh.NewInput().Title("First name").Value(&in.First).
				Validate(required("First name required")),
			huh.NewInput().Title("Last name").Value(&in.Last).
				Validate(required("Last name required")),
			huh.NewInput().Title("Student number").Value(&in.StudentNo).
				Validate(required("Student number required")),
			huh.NewInput().Title("Email").Value(&in.Email).
				Validate(func(s string) error {
					if !profile.ValidEmail(strings.TrimSpace(s)) {
						return errors.New("Valid email required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Programme").
				Options(huh.NewOptions(FormProgrammes(cfg)...)...).
				Value(&in.Prog),
			huh.NewSelect[string]().Title("Year").
				Options(huh.NewOptions(FormYears(cfg)...)...).
				Value(&in.Year),
			huh.NewMultiSelect[string]().Title("Interests").
				Options(huh.NewOptions(FormInterests(cfg)...)...).
				Value(&in.Interests),
			huh.NewInput().Title("Photo file (optional)").Value(&in.PhotoPath),
		),
	)
}

// FormProgrammes returns the programme option set, falling back to the
// defaults when no config is wired.
func FormProgrammes(cfg store.Config) []string {
	if cfg != nil {
		return cfg.Programmes()
	}
	return []string{"CS", "SE", "IT", "DS", "CE"}
}

func FormYears(cfg store.Config) []string {
	if cfg != nil {
		return cfg.Years()
	}
	return []string{"1", "2", "3", "4"}
}

func FormInterests(cfg store.Config) []string {
	if cfg != nil {
		return cfg.Interests()
	}
	return []string{"art", "music", "sports", "coding", "robotics"}
}
