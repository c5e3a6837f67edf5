package race

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// WriteResults writes the standings of c as a plain text report.
func WriteResults(w io.Writer, c *Card) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Race Results: %s\n\n", c.Title); err != nil {
		return err
	}
	for _, s := range c.Standings() {
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\n", s.Points, s.Vehicle.VIN, s.Vehicle.Owner); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCard writes the heat sheet: one line per heat with the vehicle number
// in each lane.
func WriteCard(w io.Writer, c *Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\n", c.Title); err != nil {
		return err
	}
	header := []string{"Heat"}
	for l := 1; l <= c.Lanes; l++ {
		header = append(header, "Lane "+strconv.Itoa(l))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for h, heat := range c.Heats {
		row := []string{strconv.Itoa(h + 1)}
		for _, res := range heat {
			row = append(row, res.Vehicle.VIN)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// ReadResults applies heat,lane,position records (all 1-based) to c. Bad
// records are reported together; the valid ones are still applied.
func ReadResults(r io.Reader, c *Card) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	var errs []error
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				errs = append(errs, err)
				continue
			}
			return err
		}
		line, _ := cr.FieldPos(0)
		var nums [3]int
		bad := false
		for i, f := range rec {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				bad = true
				break
			}
			nums[i] = n
		}
		if bad {
			// header rows and typos alike
			if line > 1 {
				errs = append(errs, fmt.Errorf("line %d: expected integers, got %q", line, strings.Join(rec, ",")))
			}
			continue
		}
		if err := c.Record(nums[0]-1, nums[1]-1, nums[2]); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
		}
	}
	return errors.Join(errs...)
}
