package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress for the current industry",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer s.SignOut(cmd.Context())

		ind := s.Tracker().Industry()
		rec := s.Tracker().Record()

		fmt.Printf("%s — %.0f%% complete\n\n", ind.Name, s.OverallPercent())
		for i, m := range ind.Modules {
			state := "locked"
			switch {
			case progression.ModuleComplete(m, rec):
				state = "done"
			case s.ModuleUnlocked(i):
				state = "open"
			}
			fmt.Printf("  [%-6s] %-28s %3.0f%%\n", state, m.Title, progression.ModulePercent(m, rec))
		}

		fmt.Printf("\nStreak: %d day(s)\n", rec.StreakDays)
		fmt.Printf("Weekly goal: %s lessons\n", s.WeeklyGoalDisplay())
		fmt.Printf("Total time: %d min\n", rec.TotalTimeMinutes)
		fmt.Printf("Vocabulary mastered: %d words\n", rec.VocabularyMastered)
		if len(rec.Achievements) > 0 {
			fmt.Printf("Achievements: %d\n", len(rec.Achievements))
		}
		return nil
	},
}
