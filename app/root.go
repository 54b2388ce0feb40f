// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-admin",
	Short: "portfolio-admin is the backend for a personal portfolio website",
	Long: `portfolio-admin serves a personal portfolio website: a public JSON
API for the site itself and a password-protected admin API for managing
the about profile, skills, projects, client testimonials, contact info
and the contact message inbox.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
