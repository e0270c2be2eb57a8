package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campushq/talent-match/internal/matching"
	"github.com/campushq/talent-match/internal/taxonomy"
)

var (
	matchRequired     string
	matchCandidate    string
	matchTaxonomyPath string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Explain a skill match for one job/candidate pair",
	Long: `Run the skill matcher for an ad-hoc pair of skill lists and print which
required skills matched, the rule that matched each one, and the match score.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchRequired, "required", "", "Comma-separated required skills")
	matchCmd.Flags().StringVar(&matchCandidate, "candidate", "", "Comma-separated candidate skills")
	matchCmd.Flags().StringVar(&matchTaxonomyPath, "taxonomy", "", "Optional JSON taxonomy file")
	_ = matchCmd.MarkFlagRequired("required")
	_ = matchCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	tax := taxonomy.Default()
	if matchTaxonomyPath != "" {
		var err error
		tax, err = taxonomy.LoadFile(matchTaxonomyPath)
		if err != nil {
			return err
		}
	}

	matcher := matching.New(tax)
	result := matcher.MatchAll(splitList(matchRequired), splitList(matchCandidate))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score: %d%% (%d of %d required skills matched)\n\n",
		result.Score, result.TotalMatched, result.TotalRequired)
	for _, detail := range result.Details {
		if detail.Matched() {
			fmt.Fprintf(out, "  [x] %-20s %s via %s\n", detail.Skill, detail.Evidence, detail.Rule)
		} else {
			fmt.Fprintf(out, "  [ ] %-20s missing\n", detail.Skill)
		}
	}
	return nil
}

func splitList(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
