package dashboard

import (
	"log/slog"

	"github.com/Akashdeep-Patra/posdash/internal/metrics"
)

// Page is the state holder the header selectors report to. It passes the
// selected branch down to the metrics panel. The date range is kept but
// not used for lookups.
type Page struct {
	log       *slog.Logger
	branch    string
	dateRange *DateRange
	layout    string
}

// NewPage creates a page on the default branch. A nil logger discards.
func NewPage(log *slog.Logger, dateLayout string) *Page {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return &Page{log: log, branch: DefaultBranch().ID, layout: dateLayout}
}

// HandleBranchChange records the selected branch id.
func (p *Page) HandleBranchChange(id string) {
	p.branch = id
	p.log.Info("branch changed", "branch", id)
}

// HandleDateRangeChange records the selected range; nil means cleared.
func (p *Page) HandleDateRangeChange(r *DateRange) {
	p.dateRange = r
	if r == nil {
		p.log.Info("date range changed", "range", "cleared")
		return
	}
	p.log.Info("date range changed", "from", r.From.Format(p.layout), "to", r.To.Format(p.layout))
}

// Branch returns the selected branch id.
func (p *Page) Branch() string { return p.branch }

// DateRange returns the selected range, or nil.
func (p *Page) DateRange() *DateRange { return p.dateRange }

// DateLayout returns the layout used when printing the range.
func (p *Page) DateLayout() string { return p.layout }

// Metrics returns the headline metrics for the selected branch.
func (p *Page) Metrics() metrics.BranchMetrics { return metrics.Lookup(p.branch) }
