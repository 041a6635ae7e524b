package assistant

import (
	"fmt"
	"strings"
)

var mcqIntentKeywords = []string{"mcq", "quiz", "test", "question"}

// IsMCQIntent reports whether the raw query asks for a quiz rather than an
// explanation.
func IsMCQIntent(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range mcqIntentKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// mcqTemplate pairs a topic predicate with a canned question. Templates are
// evaluated in order, first match wins.
type mcqTemplate struct {
	match func(topic string) bool
	build func(topic string) MCQ
}

func topicContains(keywords ...string) func(string) bool {
	return func(topic string) bool {
		for _, kw := range keywords {
			if strings.Contains(topic, kw) {
				return true
			}
		}
		return false
	}
}

var mcqTemplates = []mcqTemplate{
	{
		match: topicContains("ai", "artificial intelligence"),
		build: func(string) MCQ {
			return MCQ{
				Question: "What is the primary goal of Artificial Intelligence?",
				Options: map[string]string{
					"A": "To create machines that can think and learn like humans",
					"B": "To build faster calculators",
					"C": "To replace all human jobs immediately",
					"D": "To create better video games only",
				},
				Correct:     "A",
				Explanation: "AI aims to simulate human intelligence processes by machines, especially computer systems.",
			}
		},
	},
	{
		match: topicContains("dna"),
		build: func(string) MCQ {
			return MCQ{
				Question: "What is the shape of a DNA molecule?",
				Options: map[string]string{
					"A": "Single Helix",
					"B": "Double Helix",
					"C": "Triple Strand",
					"D": "Circular Loop",
				},
				Correct:     "B",
				Explanation: "DNA is shaped like a twisted ladder, known as a double helix, discovered by Watson and Crick.",
			}
		},
	},
	{
		match: topicContains("newton"),
		build: func(string) MCQ {
			return MCQ{
				Question: "Newton's First Law is also known as the Law of:",
				Options: map[string]string{
					"A": "Acceleration",
					"B": "Action and Reaction",
					"C": "Inertia",
					"D": "Gravity",
				},
				Correct:     "C",
				Explanation: "The Law of Inertia states that an object will remain at rest or in uniform motion unless acted upon by an external force.",
			}
		},
	},
}

// BuildMCQ selects the canned MCQ for a topic. Unmatched topics get a generic
// question about the literal topic string.
func BuildMCQ(topic string) MCQ {
	t := strings.ToLower(topic)
	for _, tmpl := range mcqTemplates {
		if tmpl.match(t) {
			return tmpl.build(topic)
		}
	}
	return MCQ{
		Question: fmt.Sprintf("Which statement is most accurate regarding %s?", topic),
		Options: map[string]string{
			"A": "It is a central pillar of modern scientific study.",
			"B": "It has no practical applications in the real world.",
			"C": "It was discovered only in the last 2 years.",
			"D": "It is only studied in primary schools.",
		},
		Correct:     "A",
		Explanation: fmt.Sprintf("%s is a widely recognized and important subject in academic circles.", topic),
	}
}

// FormatAnswer wraps a knowledge snippet in the plain-answer briefing template.
func FormatAnswer(topic, knowledge string) string {
	return fmt.Sprintf(`### Academic Briefing

**Exploration Topic:** %s

**Detailed Explanation:**
%s

**Key Educational Takeaways:**
- Mastering this concept is a vital step in your academic journey.
- Contextual understanding of "%s" unlocks deeper insights into related subjects.

---
*Note: this structured briefing was prepared from our verified academic archives to keep your study flow uninterrupted.*`,
		topic, knowledge, topic)
}
