package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// Write renders reports in the requested format.
func Write(w io.Writer, format string, reports []*Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, reports)
	case FormatTSV:
		return WriteTSV(w, reports)
	case FormatJSON:
		return WriteJSON(w, reports)
	}
	return fmt.Errorf("unknown report format %q", format)
}

// WriteText renders a human-readable summary. Colours follow color.NoColor.
func WriteText(w io.Writer, reports []*Report) error {
	okColor := color.New(color.FgGreen, color.Bold)
	failColor := color.New(color.FgRed, color.Bold)
	kindColor := color.New(color.FgYellow)

	for _, r := range reports {
		if r.OK() {
			if _, err := okColor.Fprintf(w, "OK   %s (%d entries)\n", r.File, r.Entries); err != nil {
				return err
			}
			continue
		}

		if _, err := failColor.Fprintf(w, "FAIL %s (%d entries, %d findings)\n", r.File, r.Entries, len(r.Findings)); err != nil {
			return err
		}
		for _, f := range r.Findings {
			line := "  " + kindColor.Sprintf("%-12s", f.Kind) + " " + f.Label
			if f.Detail != "" {
				line += ": " + f.Detail
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTSV writes one finding per row with a header line.
func WriteTSV(w io.Writer, reports []*Report) error {
	if _, err := fmt.Fprintln(w, "file\tkind\tlabel\tdetail"); err != nil {
		return err
	}
	for _, r := range reports {
		for _, f := range r.Findings {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				escapeTSV(r.File),
				f.Kind,
				escapeTSV(f.Label),
				escapeTSV(f.Detail),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON writes all reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []*Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// escapeTSV replaces tabs and newlines in a string for TSV safety.
func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
