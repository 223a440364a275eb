package assistant

import (
	"fmt"
	"strings"
)

// Deterministic drafts used whenever the text-completion service is
// unavailable or returns something unparseable. They read generic but keep
// the interaction moving instead of surfacing an error.

// FallbackEmail returns a generic follow-up email for the given application.
func FallbackEmail(applicant, role, company string) EmailDraft {
	role = orUnknown(role, "the position")
	company = orUnknown(company, "your company")
	return EmailDraft{
		Subject: fmt.Sprintf("Follow-up: %s Application at %s", role, company),
		Body: strings.Join([]string{
			"Dear Hiring Team,",
			fmt.Sprintf("I hope this message finds you well. I am writing to follow up on my application for the %s position at %s.", role, company),
			"I remain very interested in the opportunity and would welcome any update you can share on the status of my application.",
			"Thank you for your time and consideration.",
			fmt.Sprintf("Sincerely,\n%s", applicant),
		}, "\n\n"),
	}
}

// FallbackStrategy returns a generic interview preparation draft.
func FallbackStrategy(role, company string) StrategyDraft {
	role = orUnknown(role, "this role")
	company = orUnknown(company, "the company")
	return StrategyDraft{
		Questions: []string{
			fmt.Sprintf("What does success look like in the first six months for %s?", role),
			"How is the team structured, and who would I collaborate with most closely?",
			fmt.Sprintf("What are the biggest challenges %s is facing right now?", company),
			"How do you evaluate and support professional growth on the team?",
		},
		Highlights: []string{
			fmt.Sprintf("Hands-on experience directly relevant to %s.", role),
			"A track record of delivering projects end to end.",
			"Strong communication skills across technical and business audiences.",
			"Adaptability and a fast learning curve with new tools.",
		},
	}
}

// FallbackCVCheck returns a generic CV comparison draft.
func FallbackCVCheck(role string) CVCheckDraft {
	role = orUnknown(role, "this role")
	return CVCheckDraft{
		Matches: []string{
			fmt.Sprintf("Core skills align with the %s requirements.", role),
			"Relevant project experience is already documented.",
		},
		Improvements: []string{
			"Add measurable outcomes to your most recent experience.",
			fmt.Sprintf("Mirror key phrases from the %s description.", role),
			"Move the most relevant skills to the top of the document.",
		},
	}
}

// FallbackNotes returns a generic numbered action plan.
func FallbackNotes(role, company string) string {
	role = orUnknown(role, "the role")
	company = orUnknown(company, "the company")
	return strings.Join([]string{
		fmt.Sprintf("1. Research %s and its recent developments.", company),
		fmt.Sprintf("2. Tailor your CV to the %s requirements.", role),
		"3. Prepare a short pitch covering your most relevant projects.",
		"4. Follow up within two weeks if you have not heard back.",
	}, "\n")
}

func orUnknown(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
