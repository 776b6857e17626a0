package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/rnokpp/rnokpp"
)

// validMark renders a checksum verdict.
func validMark(valid bool) string {
	if valid {
		return pterm.Green("✓ valid")
	}
	return pterm.Red("✗ checksum mismatch")
}

// renderAnalysis prints a two-column table of decoded fields.
func renderAnalysis(w io.Writer, a rnokpp.Analysis) error {
	return pterm.DefaultTable.
		WithWriter(w).
		WithData(pterm.TableData{
			{pterm.Gray("RNOKPP"), a.ID.String()},
			{pterm.Gray("Checksum"), validMark(a.IsValid)},
			{pterm.Gray("Sex"), a.Sex.String()},
			{pterm.Gray("Date of birth"), a.DOB()},
		}).
		Render()
}

// renderValue prints the value-object label followed by its fields.
func renderValue(w io.Writer, r *rnokpp.RNOKPP) error {
	fmt.Fprintln(w, pterm.LightWhite(r.String()))
	return pterm.DefaultTable.
		WithWriter(w).
		WithData(pterm.TableData{
			{pterm.Gray("ssn"), r.SSN()},
			{pterm.Gray("is_valid"), validMark(r.IsValid())},
			{pterm.Gray("sex"), r.Sex().String()},
			{pterm.Gray("dob"), r.DOB()},
		}).
		Render()
}
