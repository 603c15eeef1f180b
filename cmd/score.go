package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/profile"
	"github.com/abhisek/maplecheck/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [profile.json]",
	Short: "Score a profile JSON without the TUI",
	Long: `Compute the full score breakdown for a profile described in JSON.

Reads from the given file, or from stdin when no file is passed. Useful
for scripting and for checking how a single change moves the total:

  maplecheck score me.json
  jq '.age = 32' me.json | maplecheck score`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Emit the result as JSON")
}

func runScore(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}

	p := profile.Default()
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	if err := normalizeProfile(&p); err != nil {
		return err
	}

	bd := scoring.Score(p)

	history, err := resolveDraws(cmd)
	if err != nil {
		return err
	}
	cmp := draws.Compare(bd.Total, p, history)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out := struct {
			Breakdown scoring.Breakdown `json:"breakdown"`
			Eligible  []draws.Draw      `json:"eligible_draws"`
			Passed    bool              `json:"passed"`
		}{bd, cmp.Eligible, cmp.Passed}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printBreakdown(cmd.OutOrStdout(), bd, cmp)
	return nil
}

// normalizeProfile screens a hand-written profile the same way the
// interview does: work years and benchmark scores are clamped to their
// scales, a negative age is rejected outright.
func normalizeProfile(p *profile.Profile) error {
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative, got %d", p.Age)
	}

	p.CanadianWorkYears = profile.ClampWorkYears(p.CanadianWorkYears)
	p.ForeignWorkYears = profile.ClampWorkYears(p.ForeignWorkYears)
	p.Partner.CanadianWorkYears = profile.ClampWorkYears(p.Partner.CanadianWorkYears)

	p.Primary = clampSkills(p.Primary)
	p.Secondary = clampSkills(p.Secondary)
	p.Partner.Language = clampSkills(p.Partner.Language)

	return nil
}

func clampSkills(l profile.LanguageSkills) profile.LanguageSkills {
	return profile.LanguageSkills{
		Speaking:  profile.ClampCLB(l.Speaking),
		Listening: profile.ClampCLB(l.Listening),
		Reading:   profile.ClampCLB(l.Reading),
		Writing:   profile.ClampCLB(l.Writing),
	}
}

func printBreakdown(w io.Writer, bd scoring.Breakdown, cmp draws.Result) {
	rule := strings.Repeat("─", 40)

	fmt.Fprintf(w, "Mode: %s\n", bd.Mode.DisplayName())
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-28s %6d\n", "Age", bd.Core.Age)
	fmt.Fprintf(w, "%-28s %6d\n", "Education", bd.Core.Education)
	fmt.Fprintf(w, "%-28s %6d\n", "Language", bd.Core.Language)
	fmt.Fprintf(w, "%-28s %6d\n", "Canadian work", bd.Core.CanadianWork)
	fmt.Fprintf(w, "%-28s %6d\n", "Core subtotal", bd.Core.Subtotal)

	if bd.Mode == scoring.ModeWithPartner {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%-28s %6d\n", "Partner education", bd.Partner.Education)
		fmt.Fprintf(w, "%-28s %6d\n", "Partner language", bd.Partner.Language)
		fmt.Fprintf(w, "%-28s %6d\n", "Partner work", bd.Partner.Work)
		fmt.Fprintf(w, "%-28s %6d\n", "Partner subtotal", bd.Partner.Subtotal)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-28s %6d\n", "Transferability", bd.Transferability)
	fmt.Fprintf(w, "%-28s %6d\n", "Provincial nomination", bd.Additional.Nomination)
	fmt.Fprintf(w, "%-28s %6d\n", "Sibling in Canada", bd.Additional.Sibling)
	fmt.Fprintf(w, "%-28s %6d\n", "Canadian study", bd.Additional.CanadianStudy)
	fmt.Fprintf(w, "%-28s %6d\n", "French bonus", bd.Additional.FrenchBonus)
	fmt.Fprintf(w, "%-28s %6d\n", "Additional subtotal", bd.Additional.Subtotal)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-28s %6d\n", "TOTAL", bd.Total)

	if len(cmp.Eligible) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Against recent draws:")
	for _, d := range cmp.Eligible {
		mark := "✗"
		if d.Cutoff <= bd.Total {
			mark = "✓"
		}
		fmt.Fprintf(w, "  %s %-32s cutoff %d (%s)\n",
			mark, draws.StreamDisplayName(d.Stream), d.Cutoff, d.Date)
	}
	if cmp.Passed {
		fmt.Fprintln(w, "Verdict: would have made at least one recent draw.")
	} else {
		fmt.Fprintln(w, "Verdict: below every recent cutoff for the open streams.")
	}
}
