package models

import "time"

// DateFormat is the calendar-day key for daily logs, YYYY-MM-DD.
const DateFormat = "2006-01-02"

// DailyLog anchors one user's intake entries for one calendar day.
// At most one exists per (user, date) pair.
type DailyLog struct {
	ID     string `bson:"_id" json:"id"`
	Date   string `bson:"date" json:"date"`
	UserID string `bson:"userId" json:"userId"`
	Notes  string `bson:"notes" json:"notes"`
}

// Today returns the current date in daily-log key form.
func Today() string {
	return time.Now().Format(DateFormat)
}
