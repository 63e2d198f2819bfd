package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fluentpath/fluentpath/internal/profile"
	"github.com/fluentpath/fluentpath/internal/session"
	"github.com/fluentpath/fluentpath/internal/store"
	"github.com/fluentpath/fluentpath/internal/subscription"
)

var rootCmd = &cobra.Command{
	Use:   "fluentpath",
	Short: "Industry English learning companion",
	Long:  "FluentPath — a progress and progression engine for industry-specific English learning.",
}

func Execute() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: could not read .env:", err)
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FLUENTPATH_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "User ID (overrides FLUENTPATH_USER env var)")
	rootCmd.PersistentFlags().String("industry", "", "Industry curriculum key (overrides FLUENTPATH_INDUSTRY env var)")
	rootCmd.PersistentFlags().String("tier", "", "Subscription tier: free, premium, professional")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(industriesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FLUENTPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser builds the CLI's user identity from flags and env. The
// CLI is single-user per invocation; the ID keys the progress document.
func resolveUser(cmd *cobra.Command) *profile.User {
	id, _ := cmd.Flags().GetString("user")
	if id == "" {
		id = os.Getenv("FLUENTPATH_USER")
	}
	if id == "" {
		id = "local"
	}

	industry, _ := cmd.Flags().GetString("industry")
	if industry == "" {
		industry = os.Getenv("FLUENTPATH_INDUSTRY")
	}
	if industry == "" {
		industry = "healthcare"
	}

	tier, _ := cmd.Flags().GetString("tier")
	if tier == "" {
		tier = os.Getenv("FLUENTPATH_TIER")
	}

	return &profile.User{
		ID:          id,
		Industry:    industry,
		Tier:        subscription.Tier(tier),
		Preferences: profile.DefaultPreferences(),
	}
}

// openSession opens the store and starts a session for the resolved
// user. The caller must close the store and sign the session out.
func openSession(cmd *cobra.Command) (*session.Session, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	s := session.New(resolveUser(cmd), session.Options{
		Records:  st.RecordRepo(),
		Events:   st.EventRepo(),
		Upgrades: stderrPrompter{},
	})
	if err := s.Start(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, err
	}
	return s, st, nil
}

// stderrPrompter surfaces gate denials as upgrade hints on stderr.
type stderrPrompter struct{}

func (stderrPrompter) PromptUpgrade(feature subscription.Feature) {
	fmt.Fprintf(os.Stderr, "Upgrade to unlock %s: see fluentpath.com/pricing\n", feature)
}
