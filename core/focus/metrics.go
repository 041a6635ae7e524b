package focus

import "time"

// dailyTargetMinutes is the daily focus goal used to scale the score.
const dailyTargetMinutes = 120

// maxStreakDays caps the streak walk.
const maxStreakDays = 365

type Metrics struct {
	DailyScore   int `json:"daily_score"`   // 0-100, today's minutes against the daily target
	Streak       int `json:"streak"`        // consecutive days ending today with at least one session
	TotalMinutes int `json:"total_minutes"` // trailing 7 days
}

// ComputeMetrics derives focus metrics from a user's sessions, anchored to the
// local calendar day containing now.
func ComputeMetrics(sessions []Session, now time.Time) Metrics {
	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var todayMinutes int
	for _, s := range sessions {
		ts := s.Timestamp.In(now.Location())
		if !ts.Before(dayStart) && ts.Before(dayEnd) {
			todayMinutes += s.DurationMinutes
		}
	}
	score := todayMinutes * 100 / dailyTargetMinutes
	if score > 100 {
		score = 100
	}

	var streak int
	for day := dayStart; streak <= maxStreakDays; day = day.AddDate(0, 0, -1) {
		if !hasSession(sessions, day, now.Location()) {
			break
		}
		streak++
	}

	weekStart := dayStart.AddDate(0, 0, -6)
	var totalMinutes int
	for _, s := range sessions {
		if !s.Timestamp.In(now.Location()).Before(weekStart) {
			totalMinutes += s.DurationMinutes
		}
	}

	return Metrics{DailyScore: score, Streak: streak, TotalMinutes: totalMinutes}
}

func hasSession(sessions []Session, day time.Time, loc *time.Location) bool {
	next := day.AddDate(0, 0, 1)
	for _, s := range sessions {
		ts := s.Timestamp.In(loc)
		if !ts.Before(day) && ts.Before(next) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
