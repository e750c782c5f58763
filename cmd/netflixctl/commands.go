package main

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

type clientFactory func() *apiClient

func runRequest(cmd *cobra.Command, newClient clientFactory, method, path string, query url.Values, token string, body any) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := newClient().do(ctx, method, path, query, token, body)
	if err != nil {
		return err
	}
	return resp.print(cmd.OutOrStdout())
}

func newHealthCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server and store health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/health", nil, "", nil)
		},
	}
}

func newStatusCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show API status, version and environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/", nil, "", nil)
		},
	}
}

func newRegisterCmd(newClient clientFactory) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodPost, "/api/auth/register", nil, "", map[string]string{
				"name":     name,
				"email":    email,
				"password": password,
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "Test User", "Display name")
	cmd.Flags().StringVar(&email, "email", "test@example.com", "Email address")
	cmd.Flags().StringVar(&password, "password", "password123", "Password")
	return cmd
}

func newLoginCmd(newClient clientFactory) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodPost, "/api/auth/login", nil, "", map[string]string{
				"email":    email,
				"password": password,
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "test@example.com", "Email address")
	cmd.Flags().StringVar(&password, "password", "password123", "Password")
	return cmd
}

func newMeCmd(newClient clientFactory) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the user behind a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/api/auth/me", nil, token, nil)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Bearer token from register or login")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newRowsCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "rows",
		Short: "List browse rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/api/v1/catalog/rows", nil, "", nil)
		},
	}
}

func newRowCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "row <slug>",
		Short: "Fetch the movies of one browse row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/api/v1/catalog/rows/"+url.PathEscape(args[0]), nil, "", nil)
		},
	}
}

func newSearchCmd(newClient clientFactory) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search movies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, newClient, http.MethodGet, "/api/v1/catalog/search", url.Values{"q": {args[0]}}, token, nil)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Bearer token; records the search in recent searches")
	return cmd
}
