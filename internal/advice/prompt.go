package advice

import (
	"fmt"
	"strings"

	"github.com/abhisek/maplecheck/internal/draws"
)

const planSystemPrompt = `You are a knowledgeable, candid advisor on Canada's Express Entry immigration system. A candidate has just computed their Comprehensive Ranking System score and wants to know how to improve it.`

func buildPlanPrompt(input Input) string {
	var b strings.Builder

	p := input.Profile
	bd := input.Breakdown

	b.WriteString("Candidate:\n")
	b.WriteString(fmt.Sprintf("- Age: %d\n", p.Age))
	b.WriteString(fmt.Sprintf("- Marital status: %s\n", p.MaritalStatus.DisplayName()))
	b.WriteString(fmt.Sprintf("- Education: %s\n", p.Education.DisplayName()))
	b.WriteString(fmt.Sprintf("- Primary language (CLB): speaking %d, listening %d, reading %d, writing %d\n",
		p.Primary.Speaking, p.Primary.Listening, p.Primary.Reading, p.Primary.Writing))
	b.WriteString(fmt.Sprintf("- Canadian work experience: %d years\n", p.CanadianWorkYears))
	b.WriteString(fmt.Sprintf("- Foreign work experience: %d years\n", p.ForeignWorkYears))
	b.WriteString(fmt.Sprintf("- Provincial nomination: %v\n", p.ProvincialNominee))
	b.WriteString(fmt.Sprintf("- Occupation category: %s\n", p.Category.DisplayName()))

	b.WriteString("\nScore breakdown:\n")
	b.WriteString(fmt.Sprintf("- Core factors: %d (age %d, education %d, language %d, Canadian work %d)\n",
		bd.Core.Subtotal, bd.Core.Age, bd.Core.Education, bd.Core.Language, bd.Core.CanadianWork))
	if bd.Partner.Subtotal > 0 {
		b.WriteString(fmt.Sprintf("- Partner factors: %d\n", bd.Partner.Subtotal))
	}
	b.WriteString(fmt.Sprintf("- Skill transferability: %d\n", bd.Transferability))
	b.WriteString(fmt.Sprintf("- Additional points: %d\n", bd.Additional.Subtotal))
	b.WriteString(fmt.Sprintf("- Total: %d\n", bd.Total))

	b.WriteString("\nRecent draws the candidate is eligible for:\n")
	if len(input.Comparison.Eligible) == 0 {
		b.WriteString("None\n")
	} else {
		for _, d := range input.Comparison.Eligible {
			verdict := "below cutoff"
			if bd.Total >= d.Cutoff {
				verdict = "meets cutoff"
			}
			b.WriteString(fmt.Sprintf("- %s (%s): cutoff %d — %s\n",
				d.Label, draws.StreamDisplayName(d.Stream), d.Cutoff, verdict))
		}
	}

	b.WriteString(`
Instructions:
Write an improvement plan:
1. Start with a 2-4 sentence honest assessment of where this score stands relative to the draws above.
2. Give 2-5 concrete suggestions ordered by expected impact. Only suggest changes this candidate can actually make (language retesting, more work experience, further education, provincial nomination, French).
3. For each suggestion, estimate the point impact using the breakdown above. Be specific, not generic.
4. Do not invent program rules. Do not promise outcomes.`)

	return b.String()
}
