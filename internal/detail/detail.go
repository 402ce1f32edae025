// Package detail holds the static course detail table and the presenter state machine that
// drives the single detail overlay.
package detail

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a key is not in the detail table.
var ErrNotFound = errors.New("detail: not found")

// Record is the content shown in the overlay for one key.
type Record struct {
	Title    string
	Bullets  []string
	CTALabel string
	CTAHref  string
}

func (r Record) clone() Record {
	r.Bullets = append([]string(nil), r.Bullets...)
	return r
}

// Keys returns every detail key in display order.
func Keys() []Key {
	return append([]Key(nil), keys...)
}

// ParseKey validates raw against the closed key set.
func ParseKey(raw string) (Key, error) {
	k := Key(strings.TrimSpace(raw))
	if _, ok := records[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, raw)
	}
	return k, nil
}

// Known reports whether raw names a detail record.
func Known(raw string) bool {
	_, err := ParseKey(raw)
	return err == nil
}

// Lookup returns a copy of the record for k.
func Lookup(k Key) (Record, error) {
	rec, ok := records[k]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, string(k))
	}
	return rec.clone(), nil
}

// checkTable verifies that the key list and the record table describe the same closed set and
// that every record is complete.
func checkTable(ks []Key, table map[Key]Record) error {
	var errs []error
	seen := make(map[Key]bool, len(ks))
	for _, k := range ks {
		if seen[k] {
			errs = append(errs, fmt.Errorf("detail: duplicate key %q", k))
			continue
		}
		seen[k] = true
		rec, ok := table[k]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("detail: key %q has no record", k))
		case rec.Title == "" || rec.CTALabel == "":
			errs = append(errs, fmt.Errorf("detail: record %q is missing title or call to action", k))
		case len(rec.Bullets) != bulletsPerItem:
			errs = append(errs, fmt.Errorf("detail: record %q has %d bullets, want %d", k, len(rec.Bullets), bulletsPerItem))
		}
	}
	for k := range table {
		if !seen[k] {
			errs = append(errs, fmt.Errorf("detail: record %q is not a declared key", k))
		}
	}
	return errors.Join(errs...)
}
