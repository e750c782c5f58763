package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"netflix-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show which configuration values are set",
		Long: `Loads envs/.env.<GO_ENV> (falling back to envs/.env) the way the server
does, then reports which settings are present. Secrets are never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			env := os.Getenv("GO_ENV")
			if env == "" {
				env = "dev"
			}

			loaded := ""
			for _, name := range []string{".env." + env, ".env"} {
				path := filepath.Join(dir, name)
				if _, err := os.Stat(path); err != nil {
					fmt.Fprintf(out, "%-28s missing\n", path)
					continue
				}
				fmt.Fprintf(out, "%-28s found\n", path)
				if loaded == "" {
					if err := godotenv.Load(path); err != nil {
						return fmt.Errorf("load %s: %w", path, err)
					}
					loaded = path
				}
			}

			cfg := config.Load()
			fmt.Fprintln(out)
			for _, line := range describe(cfg) {
				fmt.Fprintln(out, line)
			}

			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(out, "\nwarning: %v\n", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "envs", "Directory holding .env files")
	return cmd
}

func describe(cfg *config.Config) []string {
	rows := [][2]string{
		{"GO_ENV", cfg.Server.Environment},
		{"PORT", cfg.Server.Port},
		{"SEARCH_BASE_URL", cfg.Search.BaseURL},
		{"SEARCH_API_KEY", secret(cfg.Search.APIKey)},
		{"SEARCH_API_KEY_PARAM", cfg.Search.APIKeyParam},
		{"NORMALIZER_POLICY_FILE", orUnset(cfg.Normalizer.PolicyFile)},
		{"JWT_SECRET", secret(os.Getenv("JWT_SECRET"))},
		{"STORE_DRIVER", cfg.Store.Driver},
		{"STORE_PATH", cfg.Store.Path},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-24s %s", r[0], r[1]))
	}
	return lines
}

func secret(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func orUnset(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}
