// Package metrics holds the static per-branch financial figures shown on the
// dashboard and the helpers that format them.
package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FallbackBranch is the bucket served for unrecognised branch ids.
const FallbackBranch = "main"

// Metric is one headline figure.
type Metric struct {
	Value        string  `json:"value"`
	Change       float64 `json:"change"`
	Transactions int     `json:"transactions"`
	Total        string  `json:"total"`
	Yesterday    string  `json:"yesterday"`
}

// BranchMetrics is the headline bucket for one branch.
type BranchMetrics struct {
	Sales     Metric `json:"sales"`
	Purchases Metric `json:"purchases"`
	Expenses  Metric `json:"expenses"`
	Profit    Metric `json:"profit"`
}

var table = map[string]BranchMetrics{
	"main": {
		Sales:     Metric{Value: "$15,750", Change: 12.5, Transactions: 28, Total: "$15,815.31", Yesterday: "$14,000"},
		Purchases: Metric{Value: "$9,200", Change: 8.3, Transactions: 18, Total: "$73,199", Yesterday: "$8,500"},
		Expenses:  Metric{Value: "$1,850", Change: -5.2, Transactions: 12, Total: "$0", Yesterday: "$1,950"},
		Profit:    Metric{Value: "$4,700", Change: 32.4, Transactions: 0, Total: "$15,815.31", Yesterday: "$3,550"},
	},
	"addis": {
		Sales:     Metric{Value: "$12,450", Change: 8.7, Transactions: 22, Total: "$12,500.25", Yesterday: "$11,500"},
		Purchases: Metric{Value: "$7,800", Change: 5.1, Transactions: 15, Total: "$65,000", Yesterday: "$7,400"},
		Expenses:  Metric{Value: "$1,650", Change: -2.8, Transactions: 10, Total: "$0", Yesterday: "$1,700"},
		Profit:    Metric{Value: "$3,000", Change: 18.2, Transactions: 0, Total: "$12,500.25", Yesterday: "$2,540"},
	},
	"bole": {
		Sales:     Metric{Value: "$18,900", Change: 15.3, Transactions: 35, Total: "$19,200.50", Yesterday: "$16,400"},
		Purchases: Metric{Value: "$11,200", Change: 12.1, Transactions: 25, Total: "$85,500", Yesterday: "$10,000"},
		Expenses:  Metric{Value: "$2,100", Change: -8.5, Transactions: 15, Total: "$0", Yesterday: "$2,300"},
		Profit:    Metric{Value: "$5,600", Change: 28.9, Transactions: 0, Total: "$19,200.50", Yesterday: "$4,350"},
	},
}

// Lookup returns the bucket for branchID, or the main bucket when the id is
// not in the table. It never fails.
func Lookup(branchID string) BranchMetrics {
	if m, ok := table[branchID]; ok {
		return m
	}
	return table[FallbackBranch]
}

// Color is the accent of a headline card.
type Color int

const (
	Green Color = iota
	Blue
	Red
	Purple
)

// Card is a headline metric ready for rendering.
type Card struct {
	Title  string
	Icon   string
	Color  Color
	Metric Metric
}

// Cards returns the four headline cards for m in display order.
func Cards(m BranchMetrics) []Card {
	return []Card{
		{Title: "Today's Sales", Icon: "$", Color: Green, Metric: m.Sales},
		{Title: "Today's Purchases", Icon: "⊞", Color: Blue, Metric: m.Purchases},
		{Title: "Today's Expenses", Icon: "▣", Color: Red, Metric: m.Expenses},
		{Title: "Today's Profit", Icon: "◔", Color: Purple, Metric: m.Profit},
	}
}

// Up reports whether the change is non-negative.
func (m Metric) Up() bool { return m.Change >= 0 }

// ChangeLabel renders the magnitude of the change, e.g. "5.2%" for -5.2.
func (m Metric) ChangeLabel() string {
	return strconv.FormatFloat(math.Abs(m.Change), 'f', -1, 64) + "%"
}

// Badge renders the arrow and magnitude, e.g. "↗ 12.5%" or "↘ 5.2%".
func (m Metric) Badge() string {
	arrow := "↗"
	if !m.Up() {
		arrow = "↘"
	}
	return arrow + " " + m.ChangeLabel()
}

// TransactionsLabel renders "N transactions".
func (m Metric) TransactionsLabel() string {
	return fmt.Sprintf("%d transactions", m.Transactions)
}

// Initials returns the first letter of each space-separated word.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}
