package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/app"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
)

func NewRootCmd(version, buildDate string) *cobra.Command {
	root := &cobra.Command{
		Use:           "medicare",
		Short:         "MediCare medication adherence tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newAuthCmd())
	root.AddCommand(newMedCmd())
	return root
}

// requireUser resolves the session file into an active user and binds the
// tracker to it. Every med subcommand goes through here.
func requireUser(ctx context.Context, a *app.App) (models.User, error) {
	token, err := loadSession(a.Config.SessionFile)
	if err != nil || token == "" {
		return models.User{}, fmt.Errorf("not logged in, run: medicare auth login")
	}
	uid, err := a.Services.Auth.ParseToken(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("session expired or invalid, run: medicare auth login")
	}
	u, err := a.Services.Auth.GetUser(ctx, uid)
	if err != nil {
		return models.User{}, fmt.Errorf("session user no longer exists, run: medicare auth login")
	}
	if err := a.Services.Tracker.SetUser(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
