package roadmap

import (
	"fmt"
	"strings"
)

// Generate deterministically builds a career roadmap from the student's
// degree, target job and timeline.
func Generate(degree, targetJob, timeline string) CareerRoadmap {
	return CareerRoadmap{
		Degree:    degree,
		TargetJob: targetJob,
		Timeline:  timeline,
		SkillRoadmap: []string{
			fmt.Sprintf("Master %s fundamentals", degree),
			fmt.Sprintf("Learn industry-standard tools for %s", targetJob),
			"Build problem-solving skills",
			"Develop soft skills and communication",
			"Stay updated with latest trends",
		},
		RecommendedTools: []string{
			"Git & GitHub",
			"VS Code / IDE",
			"Project management tools",
			"Communication platforms",
			"Portfolio website",
		},
		ProjectSuggestions: []string{
			fmt.Sprintf("Build a %s-related project", strings.ToLower(targetJob)),
			"Contribute to open source",
			"Create a personal portfolio",
			"Develop a full-stack application",
			"Participate in hackathons",
		},
		InternshipPath: []string{
			"Research companies in your field",
			"Prepare resume and cover letter",
			"Apply to internships early",
			"Network with professionals",
			"Gain practical experience",
		},
	}
}
