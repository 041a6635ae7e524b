package assistant

import "strings"

// MCQ block delimiters. The exact tokens are part of the message format and
// must survive round-trips through storage.
const (
	questionsStart = "QUESTIONS_START"
	questionsEnd   = "QUESTIONS_END"
)

var optionLetters = []string{"A", "B", "C", "D"}

// MCQ is a single multiple-choice question embedded in a message body.
// Correct must be a key present in Options.
type MCQ struct {
	Question    string            `json:"question"`
	Options     map[string]string `json:"options"` // letter -> text, A-D
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}

// Format serializes the MCQ into its delimited text block. Options with empty
// text are omitted.
func (q MCQ) Format() string {
	var b strings.Builder
	b.WriteString(questionsStart + "\n")
	b.WriteString("Question: " + q.Question + "\n")
	for _, letter := range optionLetters {
		if text := q.Options[letter]; text != "" {
			b.WriteString(letter + ") " + text + "\n")
		}
	}
	b.WriteString("Correct: " + q.Correct + "\n")
	b.WriteString("Explanation: " + q.Explanation + "\n")
	b.WriteString(questionsEnd)
	return b.String()
}

// ContainsMCQ reports whether content embeds an MCQ block.
func ContainsMCQ(content string) bool {
	return strings.Contains(content, questionsStart)
}

// ParseMCQ extracts the MCQ embedded in content. It never errors: any
// malformed block (missing markers, no Question line, or a Correct letter
// with no matching option) yields ok=false and the caller should render the
// content as plain text.
func ParseMCQ(content string) (MCQ, bool) {
	_, rest, found := strings.Cut(content, questionsStart)
	if !found {
		return MCQ{}, false
	}
	// a missing end marker is tolerated: scan to the end of content
	region, _, _ := strings.Cut(rest, questionsEnd)

	q := MCQ{Options: make(map[string]string)}
	for _, line := range strings.Split(region, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Question:"):
			q.Question = strings.TrimSpace(strings.TrimPrefix(line, "Question:"))
		case strings.HasPrefix(line, "Correct:"):
			q.Correct = strings.TrimSpace(strings.TrimPrefix(line, "Correct:"))
		case strings.HasPrefix(line, "Explanation:"):
			q.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		default:
			for _, letter := range optionLetters {
				if strings.HasPrefix(line, letter+")") {
					q.Options[letter] = strings.TrimSpace(strings.TrimPrefix(line, letter+")"))
					break
				}
			}
		}
	}

	if q.Question == "" {
		return MCQ{}, false
	}
	if q.Correct != "" {
		if _, ok := q.Options[q.Correct]; !ok {
			return MCQ{}, false
		}
	}
	return q, true
}
