package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/scoring"
	"github.com/abhisek/maplecheck/internal/script"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Walk the questionnaire on plain stdin (no TUI)",
	Long: `Run the full assessment as a line-based prompt loop.

This is a stateless developer tool — no alternate screen, no LLM.
Useful over dumb terminals and for exercising the question flow.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	session := script.NewSession(script.Interview())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	w := cmd.OutOrStdout()

	for !session.Done() {
		step, err := session.Current()
		if err != nil {
			return err
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, step.Prompt)
		if step.Detail != "" {
			fmt.Fprintln(w, " ", step.Detail)
		}

		answer, err := readAnswer(w, scanner, step)
		if err != nil {
			return err
		}

		if err := session.Advance(answer); err != nil {
			fmt.Fprintf(w, "  ! %v\n", err)
			continue
		}
	}

	p := session.Profile()
	bd := scoring.Score(p)

	history, err := resolveDraws(cmd)
	if err != nil {
		return err
	}
	cmp := draws.Compare(bd.Total, p, history)

	fmt.Fprintln(w)
	printBreakdown(w, bd, cmp)
	return nil
}

// readAnswer prompts per step kind and returns the raw answer value.
func readAnswer(w io.Writer, scanner *bufio.Scanner, step script.Step) (string, error) {
	switch step.Kind {
	case script.KindStatement:
		fmt.Fprint(w, "  [enter to continue] ")
		if !scanner.Scan() {
			return "", fmt.Errorf("input closed")
		}
		return "", nil

	case script.KindChoice:
		for i, opt := range step.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprint(w, "  > ")
		if !scanner.Scan() {
			return "", fmt.Errorf("input closed")
		}
		raw := strings.TrimSpace(scanner.Text())
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(step.Options) {
			return step.Options[n-1].Value, nil
		}
		// Fall through with the raw text so the interpreter can reject it.
		return raw, nil

	default:
		fmt.Fprint(w, "  > ")
		if !scanner.Scan() {
			return "", fmt.Errorf("input closed")
		}
		return scanner.Text(), nil
	}
}
