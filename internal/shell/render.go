package shell

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

// WriteResult prints the best region followed by per-region scores, in
// corpus order or sorted by score when ranked is set. highlight may be nil.
func WriteResult(out io.Writer, res *dialect.Result, ranked bool, highlight func(string) string) {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	best := "(none)"
	if res.Found {
		best = highlight(string(res.Best))
	}
	fmt.Fprintln(out, "\nYour dialect might be closest to:", best)
	fmt.Fprintln(out, "Detailed scores:")

	rows := make([]dialect.RegionScore, 0, len(res.Order))
	if ranked {
		rows = res.Ranked()
	} else {
		for _, r := range res.Order {
			rows = append(rows, dialect.RegionScore{Region: r, Score: res.Scores[r]})
		}
	}

	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(string(row.Region)))
	}

	for _, row := range rows {
		label := runewidth.FillRight(string(row.Region)+":", width+1)
		fmt.Fprintf(out, "  %s %d\n", label, row.Score)
	}
}
