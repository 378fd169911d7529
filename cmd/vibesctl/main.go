package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "vibesctl",
		Short: "CLI client for the vibes-backend REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Vibes service base URL")

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank places for a mood in a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, _ := cmd.Flags().GetString("mood")
			city, _ := cmd.Flags().GetString("city")
			return runRank(apiFlag, mood, city, os.Stdout)
		},
	}
	rankCmd.Flags().StringP("mood", "m", "", "Mood or vibe text (required)")
	rankCmd.Flags().StringP("city", "c", "", "City to search in (required)")
	_ = rankCmd.MarkFlagRequired("mood")
	_ = rankCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(rankCmd)

	translateCmd := &cobra.Command{
		Use:   "translate",
		Short: "Resolve a vibe phrase to its search translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, _ := cmd.Flags().GetString("phrase")
			return runTranslate(apiFlag, phrase, os.Stdout)
		},
	}
	translateCmd.Flags().StringP("phrase", "p", "", "Vibe phrase (required)")
	_ = translateCmd.MarkFlagRequired("phrase")
	rootCmd.AddCommand(translateCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
