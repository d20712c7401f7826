package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/app"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "auth", Short: "Account and session commands"}
	cmd.AddCommand(&cobra.Command{Use: "register", Short: "Register a local account", RunE: authRegister})
	cmd.AddCommand(&cobra.Command{Use: "login", Short: "Login and store a session", RunE: authLogin})
	cmd.AddCommand(&cobra.Command{Use: "logout", Short: "Delete the stored session", RunE: authLogout})
	cmd.AddCommand(&cobra.Command{Use: "whoami", Short: "Show the active user", RunE: authWhoami})
	return cmd
}

func authRegister(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	reader := bufio.NewReader(os.Stdin)
	fmt.Fprint(cmd.OutOrStdout(), "Email: ")
	email, _ := reader.ReadString('\n')
	fmt.Fprint(cmd.OutOrStdout(), "Name: ")
	name, _ := reader.ReadString('\n')
	password, err := promptPassword(cmd, "Password: ")
	if err != nil {
		return err
	}
	u, err := a.Services.Auth.Register(cmd.Context(), strings.TrimSpace(email), strings.TrimSpace(name), string(password))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", u.Name, u.Email)
	return nil
}

func authLogin(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	reader := bufio.NewReader(os.Stdin)
	fmt.Fprint(cmd.OutOrStdout(), "Email: ")
	email, _ := reader.ReadString('\n')
	password, err := promptPassword(cmd, "Password: ")
	if err != nil {
		return err
	}
	token, err := a.Services.Auth.Login(cmd.Context(), strings.TrimSpace(email), string(password))
	if err != nil {
		return err
	}
	if err := saveSession(a.Config.SessionFile, token); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
	return nil
}

func authLogout(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := clearSession(a.Config.SessionFile); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func authWhoami(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := requireUser(cmd.Context(), a)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.Name, u.Email)
	return nil
}

func promptPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return pass, err
}
