// Package main implements terminal client of the ghroast server.
package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-zajac/ghroast/internal/api/http"
	"github.com/m-zajac/ghroast/internal/ui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		serverAddr string
		username   string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:           "roast",
		Short:         "Roast a GitHub profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := http.NewClient(&netHttp.Client{Timeout: timeout}, serverAddr)

			if username == "" {
				_, err := tea.NewProgram(ui.New(client, timeout)).Run()
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := client.Roast(ctx, username)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderResult(resp))
			return nil
		},
	}

	defaultServer := os.Getenv("ROAST_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	cmd.Flags().StringVarP(&serverAddr, "server", "s", defaultServer, "roast server address with protocol")
	cmd.Flags().StringVarP(&username, "username", "u", "", "github username, runs interactive mode if empty")
	cmd.Flags().DurationVar(&timeout, "timeout", 90*time.Second, "timeout for a single roast")

	return cmd
}
