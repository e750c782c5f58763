// Command netflixctl is a diagnostic client for a running netflix-backend.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:5000"

type options struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "netflixctl",
		Short: "Diagnostic client for the Netflix backend API",
		Long: `netflixctl talks to a running netflix-backend server.

Examples:
  netflixctl health
  netflixctl register --email test@example.com --password password123
  netflixctl row trending
  netflixctl search "star wars" --token <jwt>`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", envOr("NETFLIX_API_URL", defaultBaseURL), "API base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	client := func() *apiClient { return newAPIClient(opts.baseURL, opts.timeout, log) }

	rootCmd.AddCommand(newHealthCmd(client))
	rootCmd.AddCommand(newStatusCmd(client))
	rootCmd.AddCommand(newRegisterCmd(client))
	rootCmd.AddCommand(newLoginCmd(client))
	rootCmd.AddCommand(newMeCmd(client))
	rootCmd.AddCommand(newRowsCmd(client))
	rootCmd.AddCommand(newRowCmd(client))
	rootCmd.AddCommand(newSearchCmd(client))
	rootCmd.AddCommand(newEnvCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
