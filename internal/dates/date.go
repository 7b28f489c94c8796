// Package dates extracts publication and history dates per scope and
// normalizes legacy and current encodings into one canonical shape.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Date is a partially specified calendar point. Absent fields stay empty.
type Date struct {
	Year   string `json:"year,omitempty" yaml:"year,omitempty"`
	Month  string `json:"month,omitempty" yaml:"month,omitempty"`
	Day    string `json:"day,omitempty" yaml:"day,omitempty"`
	Season string `json:"season,omitempty" yaml:"season,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// HasFields reports whether any calendar field is present.
func (d Date) HasFields() bool {
	return d.Year != "" || d.Month != "" || d.Day != "" || d.Season != ""
}

// IsComplete reports whether year, month and day are all present.
func (d Date) IsComplete() bool {
	return d.Year != "" && d.Month != "" && d.Day != ""
}

// Format renders a complete date as YYYY-MM-DD. Partial dates are not
// formatted and report false.
func (d Date) Format() (string, bool) {
	if !d.IsComplete() {
		return "", false
	}
	return d.Year + "-" + d.Month + "-" + d.Day, true
}

// Time converts a complete date into a time.Time, rejecting values that do
// not name a real calendar day (e.g. 2023-02-30).
func (d Date) Time() (time.Time, error) {
	if !d.IsComplete() {
		return time.Time{}, fmt.Errorf("incomplete date %s", d)
	}
	y, errY := strconv.Atoi(d.Year)
	m, errM := strconv.Atoi(d.Month)
	day, errD := strconv.Atoi(d.Day)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, fmt.Errorf("non-numeric date %s", d)
	}
	t := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %s", d)
	}
	return t, nil
}

func (d Date) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.Year, d.Month, d.Day} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	s := strings.Join(parts, "-")
	if d.Season != "" {
		s = strings.TrimSpace(s + " " + d.Season)
	}
	return s
}

// Legacy pub-type values found in documents predating the date-type attribute.
const (
	LegacyElectronic          = "epub"
	LegacyElectronicThenPrint = "epub-ppub"
)

// ResolveDateType maps an explicit date-type and a legacy pub-type onto the
// canonical type. The explicit attribute always wins. Any other legacy value,
// ppub included, leaves the type unresolved ("").
func ResolveDateType(explicit, legacy string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	switch strings.TrimSpace(legacy) {
	case LegacyElectronic:
		return jatsmeta.DateTypePub
	case LegacyElectronicThenPrint:
		return jatsmeta.DateTypeCollection
	}
	return ""
}

// readDate reads the calendar fields of a date element, skipping empty ones.
func readDate(n jatsmeta.Node) Date {
	return Date{
		Year:   field(n, "year"),
		Month:  field(n, "month"),
		Day:    field(n, "day"),
		Season: field(n, "season"),
	}
}

func field(n jatsmeta.Node, name string) string {
	f := jatsmeta.QueryOne(n, "./"+name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Text())
}
