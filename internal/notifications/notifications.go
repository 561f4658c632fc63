// Package notifications provides the static notification feed shown in the
// header menu.
package notifications

// Kind tags a notification's severity.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
)

// Presentation is the fixed rendering entry for a Kind.
type Presentation struct {
	Glyph string
	Tone  Tone
}

// Tone is an abstract colour resolved against the active theme.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneInfo
	ToneSuccess
	ToneWarning
)

var presentations = [...]Presentation{
	KindInfo:    {Glyph: "ⓘ", Tone: ToneInfo},
	KindSuccess: {Glyph: "✓", Tone: ToneSuccess},
	KindWarning: {Glyph: "!", Tone: ToneWarning},
}

// neutral is used for values outside the declared kinds.
var neutral = Presentation{Glyph: "•", Tone: ToneNeutral}

// Present returns the rendering entry for k.
func (k Kind) Present() Presentation {
	if k < 0 || int(k) >= len(presentations) {
		return neutral
	}
	return presentations[k]
}

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	}
	return "unknown"
}

// Notification is a read-only feed entry.
type Notification struct {
	ID      int
	Title   string
	Message string
	Kind    Kind
	Time    string
}

var feed = []Notification{
	{ID: 1, Title: "Low Stock Alert", Message: "23 items are running low on stock", Kind: KindWarning, Time: "2 minutes ago"},
	{ID: 2, Title: "Payment Received", Message: "$2,450 payment received from John Smith", Kind: KindSuccess, Time: "15 minutes ago"},
	{ID: 3, Title: "New Order", Message: "Order #1234 has been placed", Kind: KindInfo, Time: "1 hour ago"},
	{ID: 4, Title: "System Update", Message: "System maintenance scheduled for tonight", Kind: KindInfo, Time: "3 hours ago"},
}

// Feed returns a copy of the static feed in display order.
func Feed() []Notification {
	out := make([]Notification, len(feed))
	copy(out, feed)
	return out
}

// Count is the badge number.
func Count() int { return len(feed) }
