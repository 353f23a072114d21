package renaming

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/contre95/audiorename/src/music"
)

// Reporter writes the human-readable console lines of a run.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	titleStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	successStyle lipgloss.Style
	skipStyle    lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewReporter creates a Reporter. Status lines go to out, failures to errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:          out,
		errOut:       errOut,
		titleStyle:   outR.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4")),
		dimStyle:     outR.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		successStyle: outR.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		skipStyle:    outR.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		warningStyle: outR.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		errorStyle:   errR.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Banner announces the run.
func (r *Reporter) Banner(root string, dryRun bool) {
	fmt.Fprintln(r.out, r.titleStyle.Render("=== Audio batch renamer ==="))
	fmt.Fprintln(r.out, "Renames audio files below the working directory from their embedded metadata")
	fmt.Fprintln(r.out, r.dimStyle.Render("Supported formats: "+strings.Join(music.SupportedExtensions(), ", ")))
	if dryRun {
		fmt.Fprintln(r.out, r.warningStyle.Render("Dry run: no file will be renamed"))
	}
	fmt.Fprintf(r.out, "Scanning %s ...\n\n", root)
}

// Renamed reports a successful (or, in a dry run, planned) rename.
func (r *Reporter) Renamed(oldName, newName string, dryRun bool) {
	verb := "Renamed"
	if dryRun {
		verb = "Would rename"
	}
	fmt.Fprintln(r.out, r.successStyle.Render(fmt.Sprintf("✅ %s: %s -> %s", verb, oldName, newName)))
}

// Unchanged reports a file that already carries its canonical name.
func (r *Reporter) Unchanged(name string) {
	fmt.Fprintln(r.out, r.skipStyle.Render(fmt.Sprintf("⏭️  Skipped (name already correct): %s", name)))
}

// Collision reports a file left alone because its target name is taken.
func (r *Reporter) Collision(oldName, newName string) {
	fmt.Fprintln(r.out, r.warningStyle.Render(fmt.Sprintf("⚠️  Skipped (target already exists): %s -> %s", oldName, newName)))
}

// Failed reports a file that could not be processed.
func (r *Reporter) Failed(name string, err error) {
	fmt.Fprintln(r.errOut, r.errorStyle.Render(fmt.Sprintf("❌ Failed to process %q: %v", name, err)))
}

// Summary prints the final tallies.
func (r *Reporter) Summary(summary music.RunSummary) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.titleStyle.Render("=== Done ==="))
	fmt.Fprintf(r.out, "✅ Renamed: %d\n", summary.Success)
	fmt.Fprintf(r.out, "⏭️  Skipped: %d\n", summary.Skipped)
	fmt.Fprintf(r.out, "❌ Failed: %d\n", summary.Errors)
}
