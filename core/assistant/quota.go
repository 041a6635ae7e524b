package assistant

import (
	"time"

	"github.com/academiahq/academia/core/user"
)

// EvaluateQuota computes the remaining daily allowance for a plan given the
// number of user messages already sent today. It has no side effects and
// always returns a value.
func EvaluateQuota(plan string, used, limit int) QuotaState {
	if plan == user.PlanPro {
		return QuotaState{Limit: -1, Used: used, Remaining: -1, Unlimited: true, CanSend: true}
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return QuotaState{
		Limit:     limit,
		Used:      used,
		Remaining: remaining,
		CanSend:   remaining > 0,
	}
}

// CountToday counts user-role messages whose timestamp falls within the local
// calendar day containing now (local midnight to local midnight).
func CountToday(msgs []ChatMessage, now time.Time) int {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int
	for _, msg := range msgs {
		if msg.Role != RoleUser {
			continue
		}
		ts := msg.Timestamp.In(now.Location())
		if !ts.Before(dayStart) && ts.Before(dayEnd) {
			count++
		}
	}
	return count
}
