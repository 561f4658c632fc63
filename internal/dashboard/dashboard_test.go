package dashboard

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DefaultDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBranchSelectorDefaultsToFirst(t *testing.T) {
	s := NewBranchSelector(nil)
	assert.Equal(t, "main", s.Selected().ID)
	assert.Equal(t, 0, s.Index())
}

func TestBranchSelectorNotifies(t *testing.T) {
	var got []string
	s := NewBranchSelector(func(id string) { got = append(got, id) })

	require.NoError(t, s.Select("bole"))
	assert.Equal(t, "Bole Branch", s.Selected().Name)
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, []string{"bole"}, got)
}

func TestBranchSelectorRejectsUnknown(t *testing.T) {
	called := false
	s := NewBranchSelector(func(string) { called = true })
	require.NoError(t, s.Select("addis"))
	called = false

	err := s.Select("nowhere")
	assert.True(t, errors.Is(err, ErrUnknownBranch))
	assert.Equal(t, "addis", s.Selected().ID, "selection stays in the static set")
	assert.False(t, called)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-03-01..2024-03-31", "")
	require.NoError(t, err)
	assert.Equal(t, day("2024-03-01"), r.From)
	assert.Equal(t, day("2024-03-31"), r.To)
	assert.Equal(t, "2024-03-01..2024-03-31", r.Format(""))

	r, err = ParseDateRange(" 2024-05-02 ", DefaultDateLayout)
	require.NoError(t, err)
	assert.Equal(t, r.From, r.To)
	assert.Equal(t, "2024-05-02", r.Format(DefaultDateLayout))

	r, err = ParseDateRange("2024-03-31..2024-03-01", "")
	require.NoError(t, err, "reversed bounds are accepted")
	assert.True(t, r.From.After(r.To))

	r, err = ParseDateRange("   ", "")
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = ParseDateRange("yesterday", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	_, err = ParseDateRange("2024-01-01..soon", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateRangeSetThenClear(t *testing.T) {
	page := NewPage(nil, "")
	before := page.Metrics()

	var calls []*DateRange
	sel := NewDateRangeSelector(func(r *DateRange) {
		calls = append(calls, r)
		page.HandleDateRangeChange(r)
	})

	want := DateRange{From: day("2024-01-01"), To: day("2024-01-07")}
	sel.Set(&want)
	assert.Equal(t, before, page.Metrics())
	sel.Clear()

	require.Len(t, calls, 2)
	require.NotNil(t, calls[0])
	assert.Equal(t, want, *calls[0])
	assert.Nil(t, calls[1])
	assert.Nil(t, sel.Current())
	assert.Nil(t, page.DateRange())
	assert.Equal(t, before, page.Metrics(), "date range never changes metrics")
}

func TestDateRangeSetCopies(t *testing.T) {
	sel := NewDateRangeSelector(nil)
	r := DateRange{From: day("2024-01-01"), To: day("2024-01-02")}
	sel.Set(&r)
	r.From = day("1999-01-01")
	assert.Equal(t, day("2024-01-01"), sel.Current().From)
}

func TestPageBranchFlow(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	page := NewPage(log, "")
	sel := NewBranchSelector(page.HandleBranchChange)

	assert.Equal(t, "main", page.Branch())
	require.NoError(t, sel.Select("bole"))

	m := page.Metrics()
	assert.Equal(t, "$18,900", m.Sales.Value)
	assert.Equal(t, 15.3, m.Sales.Change)
	assert.Equal(t, "$16,400", m.Sales.Yesterday)
	assert.Contains(t, buf.String(), "branch=bole")
}

func TestPageUnknownBranchFallsBack(t *testing.T) {
	page := NewPage(nil, "")
	page.HandleBranchChange("ghost")
	assert.Equal(t, "$15,750", page.Metrics().Sales.Value)
}
