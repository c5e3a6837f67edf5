package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/derby/core/ppn"
)

// Format names accepted by Write.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
	FormatYAML  = "yaml"
)

// Schedule is the document written by WriteJSON and WriteYAML.
type Schedule struct {
	Lanes   int          `json:"lanes" yaml:"lanes"`
	Cars    int          `json:"cars" yaml:"cars"`
	Heats   []ppn.Heat   `json:"heats" yaml:"heats,flow"`
	Quality *ppn.Quality `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// Write dispatches to the writer for format.
func Write(w io.Writer, format string, s Schedule) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		return WriteTable(w, s.Heats)
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatCSV:
		return WriteCSV(w, s.Heats)
	case FormatYAML, "yml":
		return WriteYAML(w, s)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, s Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes the schedule to w in YAML format.
func WriteYAML(w io.Writer, s Schedule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes one row per heat with a heat,lane1..laneN header.
func WriteCSV(w io.Writer, heats []ppn.Heat) error {
	cw := csv.NewWriter(w)
	lanes := width(heats)
	header := make([]string, 0, lanes+1)
	header = append(header, "heat")
	for l := 1; l <= lanes; l++ {
		header = append(header, "lane"+strconv.Itoa(l))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, h := range heats {
		if err := cw.Write(row(i, h, lanes)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes an aligned text table, one heat per line.
func WriteTable(w io.Writer, heats []ppn.Heat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	lanes := width(heats)
	header := []string{"Heat"}
	for l := 1; l <= lanes; l++ {
		header = append(header, "Lane "+strconv.Itoa(l))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}
	for i, h := range heats {
		if _, err := fmt.Fprintln(tw, strings.Join(row(i, h, lanes), "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func width(heats []ppn.Heat) int {
	n := 0
	for _, h := range heats {
		if len(h) > n {
			n = len(h)
		}
	}
	return n
}

func row(i int, h ppn.Heat, lanes int) []string {
	rec := make([]string, lanes+1)
	rec[0] = strconv.Itoa(i + 1)
	for l, c := range h {
		rec[l+1] = strconv.Itoa(c)
	}
	return rec
}
