package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the tm banner to w using the colors w supports.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	s1 := out.String("  _              ").Foreground(out.Color("#818cf8"))
	s2 := out.String(" | |_ _ __ ___   ").Foreground(out.Color("#a78bfa"))
	s3 := out.String(" | __| '_ ` _ \\  ").Foreground(out.Color("#c084fc"))
	s4 := out.String(" | |_| | | | | | ").Foreground(out.Color("#e879f9"))
	s5 := out.String("  \\__|_| |_| |_| ").Foreground(out.Color("#f472b6"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	fmt.Fprintln(w, s5)
	fmt.Fprintf(w, "  %s\n\n", out.String("turing machine simulator "+version).Faint())
}
