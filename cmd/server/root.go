package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo-service",
		Short:         "todo-service - a small JSON API for managing todos",
		Long:          `todo-service stores short text tasks with a completion flag in memory or in a single SQLite file and serves them over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())

	return cmd
}
