package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the stepwise ASCII banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Same palette as the node colors, cool to warm
	lines := []struct{ text, hex string }{
		{"      _                       _          ", "#60a5fa"},
		{"  ___| |_ ___ _ ____      __ (_)___  ___ ", "#4f46e5"},
		{" / __| __/ _ \\ '_ \\ \\ /\\ / / | / __|/ _ \\", "#10b981"},
		{" \\__ \\ ||  __/ |_) \\ V  V /  | \\__ \\  __/", "#6ee7b7"},
		{" |___/\\__\\___| .__/ \\_/\\_/   |_|___/\\___|", "#f59e0b"},
		{"             |_|                          ", "#facc15"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.hex)))
	}
	fmt.Fprintln(w)
}
