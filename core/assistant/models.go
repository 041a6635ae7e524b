package assistant

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// FreeDailyLimit is the default number of user messages a free-plan user may
// send per local calendar day.
const FreeDailyLimit = 10

// ChatMessage is one turn half in a user's chat history. Immutable once created.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"` // UTC
}

// QuotaState is a pure view over a user's plan and today's usage.
// Limit and Remaining are -1 when Unlimited.
type QuotaState struct {
	Limit     int  `json:"limit"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
	CanSend   bool `json:"can_send"`
}

var digitsOnlyRegex = regexp.MustCompile(`^\d+$`)

// ParseTimestamp normalizes the two legacy client timestamp encodings into a
// single instant: a digits-only string is nanoseconds since the Unix epoch,
// anything else must be RFC 3339.
func ParseTimestamp(s string) (time.Time, error) {
	if digitsOnlyRegex.MatchString(s) {
		ns, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "parsing timestamp ticks %q", s)
		}
		return time.Unix(0, ns).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing timestamp %q", s)
	}
	return t.UTC(), nil
}
