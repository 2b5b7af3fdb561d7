// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/profile"
)

// ProfileOptions captures the profile field flags shared by add and edit.
type ProfileOptions struct {
	First     string
	Last      string
	StudentNo string
	Email     string
	Prog      string
	Year      string
	Interests []string
	PhotoPath string
}

// AddProfileArgs wires profile field flags on the provided command.
func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.First, "first", "", "First name.")
	cmd.Flags().StringVar(&o.Last, "last", "", "Last name.")
	cmd.Flags().StringVar(&o.StudentNo, "student-no", "", "Student number, used as the profile id.")
	cmd.Flags().StringVar(&o.Email, "email", "", "Email address.")
	cmd.Flags().StringVar(&o.Prog, "prog", "", "Programme code.")
	cmd.Flags().StringVar(&o.Year, "year", "", "Year of study.")
	cmd.Flags().StringSliceVar(&o.Interests, "interests", nil, "Interests, comma separated.")
	cmd.Flags().StringVar(&o.PhotoPath, "photo", "", "Path to a photo file.")
}

// RawInput converts the collected flags to a validator snapshot.
func (o *ProfileOptions) RawInput() profile.RawInput {
	return profile.RawInput{
		First:     o.First,
		Last:      o.Last,
		StudentNo: o.StudentNo,
		Email:     o.Email,
		Prog:      o.Prog,
		Year:      o.Year,
		Interests: o.Interests,
		PhotoPath: o.PhotoPath,
	}
}

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Collect the profile fields through an interactive form.`)
}

// ViewOptions selects which projection a read-only command prints.
type ViewOptions struct {
	Cards bool
	Table bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Cards, "cards", false, "Print the card gallery view.")
	cmd.Flags().BoolVar(&o.Table, "table", false, "Print the summary table view.")
}

// IDOptions
type IDOptions struct {
	ID string
}

// IDFromArgs joins the positional args into the target student number.
func (o *IDOptions) IDFromArgs(args []string) {
	o.ID = strings.TrimSpace(strings.Join(args, " "))
}
