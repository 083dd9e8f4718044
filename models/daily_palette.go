package models

import "time"

// DateLayout is the storage and wire format of palette-of-the-day dates.
const DateLayout = "2006-01-02"

// DailyPalette is the palette of the day, shared by every user.
type DailyPalette struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Harmony   string    `json:"harmony"`
	Palette   Palette   `json:"palette"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeDate renders t as a calendar date in its own location.
func NormalizeDate(t time.Time) string {
	return t.Format(DateLayout)
}
