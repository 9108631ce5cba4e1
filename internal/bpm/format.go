package bpm

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/numfmt"
)

// Formatter renders results and reports the MIME type of the text.
type Formatter func(results []Result) (doc string, mime string, err error)

// Formats returns the output format catalog: human, csv.
func Formats() *catalog.Catalog[Formatter] {
	c := catalog.New[Formatter]("bpm output format", ErrUnknownFormat)
	c.Register("human", Human)
	c.Register("csv", CSV)
	return c
}

// Human renders an aligned table, e.g. "    120 bpm -> 12 frames/beat".
func Human(results []Result) (string, string, error) {
	var sb strings.Builder
	for i, r := range results {
		b, err := numfmt.Format(r.BPM)
		if err != nil {
			return "", "", err
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%7s bpm -> %2d frames/beat", b, r.FramesPerBeat)
	}
	return sb.String(), "text/plain", nil
}

// CSV renders a bpm,frames_per_beat table with full precision tempos.
func CSV(results []Result) (string, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"bpm", "frames_per_beat"}); err != nil {
		return "", "", err
	}
	for _, r := range results {
		row := []string{
			strconv.FormatFloat(r.BPM, 'f', -1, 64),
			strconv.Itoa(r.FramesPerBeat),
		}
		if err := w.Write(row); err != nil {
			return "", "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", "", err
	}
	return strings.TrimRight(buf.String(), "\n"), "text/csv", nil
}
