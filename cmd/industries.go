package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/catalog"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List available industry curricula",
	Run: func(cmd *cobra.Command, args []string) {
		for _, ind := range catalog.Industries() {
			fmt.Printf("%-12s %s (%d modules, %d lessons)\n",
				ind.Key, ind.Name, len(ind.Modules), ind.LessonCount())
		}
	},
}
