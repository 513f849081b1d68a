package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as an admin and print the bearer token",
	Long: `Signs in through the admin login endpoint and prints the token on
stdout, so it can be captured:

  export ADMIN_TOKEN=$(adminctl login --email admin@example.com --password ...)`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	svc := service.NewAuthService(client, service.Dependencies{Logger: logger})
	// Running the command is the agreement to the terms.
	result, err := svc.LoginAdmin(cmd.Context(), domain.Credentials{
		Email:      loginEmail,
		Password:   loginPassword,
		AgreeTerms: true,
	})
	if err != nil {
		return fmt.Errorf("login: %s", service.Message(err))
	}
	if !result.Principal.IsAdmin() {
		return fmt.Errorf("login: %s is not an admin account", loginEmail)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Token)
	return nil
}
