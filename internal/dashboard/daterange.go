package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayout is the layout used to parse and print range bounds.
const DefaultDateLayout = "2006-01-02"

// rangeSep separates the two bounds in the text form of a range.
const rangeSep = ".."

// ErrInvalidDateRange is returned for text that is not a date or range.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is an inclusive interval. From is not required to precede To.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Format renders r as "FROM..TO" using layout, or "FROM" when both bounds
// fall on the same instant.
func (r DateRange) Format(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if r.From.Equal(r.To) {
		return r.From.Format(layout)
	}
	return r.From.Format(layout) + rangeSep + r.To.Format(layout)
}

// ParseDateRange parses "FROM..TO" or a single date. Blank text yields a nil
// range (cleared).
func ParseDateRange(text, layout string) (*DateRange, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	fromText, toText, found := strings.Cut(text, rangeSep)
	if !found {
		toText = fromText
	}
	from, err := time.Parse(layout, strings.TrimSpace(fromText))
	if err != nil {
		return nil, fmt.Errorf("%w: from %q: %v", ErrInvalidDateRange, fromText, err)
	}
	to, err := time.Parse(layout, strings.TrimSpace(toText))
	if err != nil {
		return nil, fmt.Errorf("%w: to %q: %v", ErrInvalidDateRange, toText, err)
	}
	return &DateRange{From: from, To: to}, nil
}

// DateRangeSelector stores the optional range.
type DateRangeSelector struct {
	current  *DateRange
	onChange func(*DateRange)
}

// NewDateRangeSelector starts cleared. onChange is optional.
func NewDateRangeSelector(onChange func(*DateRange)) *DateRangeSelector {
	return &DateRangeSelector{onChange: onChange}
}

// Current returns the stored range, or nil.
func (s *DateRangeSelector) Current() *DateRange { return s.current }

// Set stores r (nil clears) and notifies the callback once.
func (s *DateRangeSelector) Set(r *DateRange) {
	if r != nil {
		cp := *r
		r = &cp
	}
	s.current = r
	if s.onChange != nil {
		s.onChange(r)
	}
}

// Clear is Set(nil).
func (s *DateRangeSelector) Clear() { s.Set(nil) }
