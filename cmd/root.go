package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmarlow/hamprep/internal/engine"
	"github.com/jmarlow/hamprep/internal/explain"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hamprep",
	Short: "Ham radio license exam trainer",
	Long:  "Hamprep — terminal study tracker for the FCC amateur radio license exams (Technician, General, Extra).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HAMPREP_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to question bank JSON (overrides HAMPREP_BANK env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile name (overrides HAMPREP_USER env var; default \"local\")")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db (highest
// priority), then HAMPREP_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the question bank path using --bank, then
// HAMPREP_BANK, then bank.json next to the database.
func resolveBankPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p, nil
	}
	if p := os.Getenv("HAMPREP_BANK"); p != "" {
		return p, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "bank.json"), nil
}

// resolveUser returns the active profile name; the single-machine
// default is "local".
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("HAMPREP_USER"); u != "" {
		return u
	}
	return "local"
}

// openEngine opens the store and bank and wires a session engine. The
// caller must Close the engine.
func openEngine(cmd *cobra.Command) (*engine.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	bankPath, err := resolveBankPath(cmd)
	if err != nil {
		st.Close()
		return nil, err
	}
	bank, err := question.LoadBank(bankPath)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load question bank %s: %w", bankPath, err)
	}

	opts := engine.Options{
		UserID: resolveUser(cmd),
		Store:  st,
		Bank:   bank,
	}

	// Explanations are optional; the trainer works without a provider.
	if cfg, ok := explain.ConfigFromEnv(); ok {
		provider, err := explain.NewProvider(cmd.Context(), cfg, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "explanation provider not configured:", err)
		} else {
			opts.Explain = provider
		}
	}

	eng, err := engine.New(opts)
	if err != nil {
		st.Close()
		return nil, err
	}
	return eng, nil
}

// parseExamFlag reads the --exam flag shared by practice and exam.
func parseExamFlag(cmd *cobra.Command) (question.ExamType, error) {
	s, _ := cmd.Flags().GetString("exam")
	return question.ParseExamType(s)
}
