package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/palefo/client-go"
	"github.com/palefo/client-go/catalog"
)

var serviceURL string
var sessionFile string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palefo",
		Short: "Palefò CLI for sentences, contributions and moderation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05", NoColor: true})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("PALEFO_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("PALEFO_API_URL", "http://localhost:5000/api")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the Palefò API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", getEnv("PALEFO_SESSION_FILE", ""), "Path for persisted session state (optional)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newSentencesCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newContributionsCmd())
	rootCmd.AddCommand(newGetContributionCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newModerateCmd())
	rootCmd.AddCommand(newModerationQueueCmd())
	rootCmd.AddCommand(newPhraseCmd())
	rootCmd.AddCommand(newEligibilityCmd())
	rootCmd.AddCommand(newProbeCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

// newClient builds the SDK client from the persistent flags.
func newClient() (*client.Client, error) {
	opts := []client.Option{}
	if sessionFile != "" {
		s, err := client.NewFileSessionStore(sessionFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithSessionStore(s))
	}
	return client.New(serviceURL, opts...)
}

func newSentencesCmd() *cobra.Command {
	var count int
	var category string
	var difficulty int
	var simple bool

	cmd := &cobra.Command{
		Use:   "sentences",
		Short: "Fetch practice sentences (random, by category or by difficulty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			var sentences []client.Sentence
			switch {
			case category != "" && simple:
				sentences, err = c.SentencesByCategorySimple(ctx, category, count)
			case category != "":
				sentences, err = c.SentencesByCategory(ctx, category, count)
			case difficulty > 0:
				sentences, err = c.SentencesByDifficulty(ctx, difficulty, count)
			default:
				sentences, err = c.RandomSentences(ctx, count, nil)
			}
			if err != nil {
				return err
			}
			return printJSON(sentences)
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of sentences")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Filter by difficulty level (1-5)")
	cmd.Flags().BoolVar(&simple, "simple", false, "Use the simple-query category endpoint")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Fetch platform statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			stats, err := c.Statistics(ctx)
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func newTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Fetch the contributor leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			contributors, err := c.TopContributors(ctx, limit)
			if err != nil {
				return err
			}
			return printJSON(contributors)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of contributors")
	return cmd
}

func newContributionsCmd() *cobra.Command {
	var page, pageSize int
	var includeUnapproved bool

	cmd := &cobra.Command{
		Use:   "contributions",
		Short: "List contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			result, err := c.Contributions(ctx, client.ListContributionsOptions{
				Page:              page,
				PageSize:          pageSize,
				IncludeUnapproved: includeUnapproved,
			})
			if err != nil {
				return err
			}
			if c.UsingFallback() {
				log.Warn().Str("base_url", c.BaseURL()).Msg("served from fallback endpoint")
			}
			return printJSON(result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Items per page")
	cmd.Flags().BoolVar(&includeUnapproved, "include-unapproved", false, "Include unapproved contributions")
	return cmd
}

func newGetContributionCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "get-contribution",
		Short: "Fetch a single contribution by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id < 1 {
				return fmt.Errorf("--id is required")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			contribution, err := c.ContributionByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(contribution)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Contribution ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newSubmitCmd() *cobra.Command {
	var text, audioPath, mimeType, email, gender, region string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an audio contribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" || audioPath == "" {
				return fmt.Errorf("--text and --audio are required")
			}

			f, err := os.Open(audioPath)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			if mimeType == "" {
				mimeType = mimeFromPath(audioPath)
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			created, err := c.SubmitContribution(ctx, client.SubmitContributionRequest{
				KreyolText: text,
				Audio:      f,
				AudioMIME:  mimeType,
				Email:      email,
				Gender:     gender,
				Region:     region,
			})
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("submit failed")
				return err
			}

			fmt.Printf("Contribution created: %d\n", created.ID)
			return printJSON(created)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Kreyòl text being recorded (required)")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Path to the audio file (required)")
	cmd.Flags().StringVar(&mimeType, "mime", "", "Audio media type (inferred from file extension when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Contributor email (optional)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (optional)")
	cmd.Flags().StringVar(&region, "region", "", "Region in Haiti (optional)")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

func newModerateCmd() *cobra.Command {
	var id int
	var approve bool
	var reason string

	cmd := &cobra.Command{
		Use:   "moderate",
		Short: "Approve or reject a contribution (admin session required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			if !c.IsAdminAuthenticated() {
				return fmt.Errorf("no admin session; run `palefo login` first")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			updated, err := c.ModerateContribution(ctx, id, approve, reason)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Contribution ID (required)")
	cmd.Flags().BoolVar(&approve, "approve", false, "Approve instead of reject")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason (required when rejecting)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newModerationQueueCmd() *cobra.Command {
	var page, pageSize int
	var filter string

	cmd := &cobra.Command{
		Use:   "moderation-queue",
		Short: "List contributions by moderation bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			items, err := c.ContributionsForModeration(ctx, page, pageSize, client.ModerationFilter(filter))
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Items per page")
	cmd.Flags().StringVar(&filter, "filter", "pending", "Bucket: pending, approved or rejected")
	return cmd
}

func newPhraseCmd() *cobra.Command {
	var category string
	var difficulty, minWords, maxWords int
	var gemini bool

	cmd := &cobra.Command{
		Use:   "phrase",
		Short: "Generate an AI practice phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !catalog.KnownCategory(category) {
				log.Warn().Str("category", category).Msg("category not in the known catalog")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			opts := client.PhraseOptions{
				Category:        category,
				DifficultyLevel: difficulty,
				MinWords:        minWords,
				MaxWords:        maxWords,
			}
			var phrase *client.AIPhrase
			if gemini {
				phrase, err = c.GeminiPhrase(ctx, opts)
			} else {
				phrase, err = c.AIRandomPhrase(ctx, opts)
			}
			if err != nil {
				return err
			}
			return printJSON(phrase)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty level (1-5)")
	cmd.Flags().IntVar(&minWords, "min-words", 0, "Minimum word count")
	cmd.Flags().IntVar(&maxWords, "max-words", 0, "Maximum word count")
	cmd.Flags().BoolVar(&gemini, "gemini", false, "Use the Gemini endpoint")
	return cmd
}

func newEligibilityCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Check prize eligibility for a contributor email",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			eligibility, err := c.CheckPrizeEligibility(ctx, email)
			if err != nil {
				return err
			}
			return printJSON(eligibility)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contributor email")
	return cmd
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Probe the API endpoints and report each outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			report := c.TestConnection(ctx)
			if err := printJSON(report); err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("one or more probes failed")
			}
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open an admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if !c.AuthenticateAdmin(username, password) {
				return fmt.Errorf("invalid credentials")
			}
			fmt.Println("Admin session opened")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			c.LogoutAdmin()
			fmt.Println("Admin session closed")
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the embedded category, difficulty and region catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := catalog.Categories()
			if err != nil {
				return err
			}
			levels, err := catalog.DifficultyLevels()
			if err != nil {
				return err
			}
			regions, err := catalog.Regions()
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"version":    catalog.Version,
				"categories": categories,
				"difficulty": levels,
				"regions":    regions,
			})
		},
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// mimeFromPath guesses the declared media type from a file extension so the
// upload extension inference round-trips.
func mimeFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".mp3"):
		return "audio/mpeg"
	case strings.HasSuffix(path, ".webm"):
		return "audio/webm"
	default:
		return "audio/wav"
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
