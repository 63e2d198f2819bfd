package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/assessment"
	"github.com/fluentpath/fluentpath/internal/catalog"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the placement assessment",
	Long:  "Runs the placement quiz on stdin and prints a skill profile with a recommended learning path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		industry, _ := cmd.Flags().GetString("industry")
		if industry == "" {
			industry = os.Getenv("FLUENTPATH_INDUSTRY")
		}

		in := bufio.NewScanner(os.Stdin)
		set := assessment.AnswerSet{Answers: map[string]string{}}

		for _, q := range assessment.Questions() {
			fmt.Printf("\n%s\n", q.Text)
			for _, opt := range q.Options {
				fmt.Printf("  %s) %s\n", opt.ID, opt.Text)
			}
			fmt.Print("> ")
			if !in.Scan() {
				break
			}
			if ans := strings.TrimSpace(strings.ToLower(in.Text())); ans != "" {
				set.Answers[q.ID] = ans
			}
		}

		fmt.Println("\nDescribe your typical workday in English (one line, press Enter to skip):")
		fmt.Print("> ")
		if in.Scan() {
			set.Transcript = strings.TrimSpace(in.Text())
		}

		res := assessment.Score(set, industry)
		printResult(res)
		return nil
	},
}

func printResult(res assessment.Result) {
	fmt.Println("\nSkill profile (0-5):")
	fmt.Printf("  Vocabulary %.1f\n", res.Vocabulary)
	fmt.Printf("  Reading    %.1f\n", res.Reading)
	fmt.Printf("  Cultural   %.1f\n", res.Cultural)
	fmt.Printf("  Speaking   %.1f\n", res.Speaking)
	fmt.Printf("  Listening  %.1f\n", res.Listening)
	fmt.Printf("  Overall    %.1f\n", res.Overall)

	fmt.Printf("\nRecommended path: %s\n", res.Path)
	if len(res.Modules) == 0 {
		return
	}
	fmt.Println("Suggested modules:")
	for _, id := range res.Modules {
		if m, err := catalog.GetModule(id); err == nil {
			fmt.Printf("  - %s\n", m.Title)
		} else {
			fmt.Printf("  - %s\n", id)
		}
	}
}
