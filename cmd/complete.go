package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/catalog"
	"github.com/fluentpath/fluentpath/internal/subscription"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer s.SignOut(cmd.Context())

		res, err := s.CompleteLesson(cmd.Context(), args[0])
		if err != nil {
			var denial *subscription.Denial
			if errors.As(err, &denial) {
				return fmt.Errorf("your %s plan does not allow this: %w", denial.Tier.DisplayName(), denial)
			}
			return err
		}

		lesson, _ := catalog.GetLesson(args[0])
		if !res.Changed {
			fmt.Printf("%s was already completed.\n", lesson.Title)
			return nil
		}

		fmt.Printf("Completed %s (+%d min)\n", lesson.Title, lesson.DurationMinutes)
		for _, moduleID := range res.NewModules {
			m, err := catalog.GetModule(moduleID)
			if err != nil {
				continue
			}
			fmt.Printf("Module complete: %s\n", m.Title)
		}
		fmt.Printf("Streak: %d day(s), weekly goal %s\n",
			s.Tracker().Record().StreakDays, s.WeeklyGoalDisplay())
		return nil
	},
}
