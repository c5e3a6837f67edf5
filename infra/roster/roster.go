// Package roster loads the vehicles entered in a race from CSV or YAML files.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/derby/core/model"
)

// ErrEmptyVIN is reported for records without a vehicle number.
var ErrEmptyVIN = errors.New("empty vehicle number")

// ReadCSV reads vin,owner,group records. An optional header row is skipped.
// Malformed records are reported together while the valid ones are returned.
func ReadCSV(r io.Reader) ([]model.Vehicle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var (
		out  []model.Vehicle
		errs []error
	)
	for first := true; ; first = false {
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
			return out, err
		}
		line, _ := cr.FieldPos(0)
		if first && isHeader(rec) {
			continue
		}
		if len(rec) != 3 {
			errs = append(errs, fmt.Errorf("line %d: expected 3 fields, got %d", line, len(rec)))
			continue
		}
		v := model.NewVehicle(rec[0], rec[1], rec[2])
		if v.VIN == "" {
			errs = append(errs, fmt.Errorf("line %d: %w", line, ErrEmptyVIN))
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "vin")
}

type yamlEntry struct {
	VIN   string `yaml:"vin"`
	Owner string `yaml:"owner"`
	Group string `yaml:"group"`
}

// ReadYAML reads a list of {vin, owner, group} entries.
func ReadYAML(r io.Reader) ([]model.Vehicle, error) {
	var entries []yamlEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	var (
		out  []model.Vehicle
		errs []error
	)
	for i, e := range entries {
		v := model.NewVehicle(e.VIN, e.Owner, e.Group)
		if v.VIN == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i+1, ErrEmptyVIN))
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

// Load reads the roster at path, choosing the format from its extension.
func Load(path string) ([]model.Vehicle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".csv", ".txt", "":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported roster format: %s", filepath.Ext(path))
	}
}
