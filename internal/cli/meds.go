package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/app"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/service"
)

func newMedCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "med", Short: "Manage medications and doses"}
	cmd.AddCommand(newMedAddCmd())
	cmd.AddCommand(newMedListCmd())
	cmd.AddCommand(newMedUpdateCmd())
	cmd.AddCommand(newMedDeleteCmd())
	cmd.AddCommand(newMedTakeCmd())
	cmd.AddCommand(newMedTodayCmd())
	cmd.AddCommand(newMedAdherenceCmd())
	return cmd
}

func newMedAddCmd() *cobra.Command {
	var name, dosage, frequency string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medication",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(dosage) == "" || strings.TrimSpace(frequency) == "" {
				return fmt.Errorf("--name, --dosage and --frequency are required")
			}
			if !models.ValidFrequency(frequency) {
				return fmt.Errorf("unknown frequency %q, expected one of: %s", frequency, strings.Join(models.Frequencies, ", "))
			}
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			m, err := a.Services.Tracker.AddMedication(cmd.Context(), service.CreateMedicationInput{
				Name:      name,
				Dosage:    dosage,
				Frequency: frequency,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Medication name")
	cmd.Flags().StringVar(&dosage, "dosage", "", "Dosage, e.g. 50mg")
	cmd.Flags().StringVar(&frequency, "frequency", "", "One of: "+strings.Join(models.Frequencies, ", "))
	return cmd
}

func newMedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			return writeJSON(a.Services.Tracker.Medications())
		},
	}
}

func newMedUpdateCmd() *cobra.Command {
	var name, dosage, frequency string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update medication fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in service.UpdateMedicationInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("dosage") {
				in.Dosage = &dosage
			}
			if cmd.Flags().Changed("frequency") {
				if !models.ValidFrequency(frequency) {
					return fmt.Errorf("unknown frequency %q, expected one of: %s", frequency, strings.Join(models.Frequencies, ", "))
				}
				in.Frequency = &frequency
			}
			if in.Name == nil && in.Dosage == nil && in.Frequency == nil {
				return fmt.Errorf("nothing to update, pass at least one of --name, --dosage, --frequency")
			}
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			m, err := a.Services.Tracker.UpdateMedication(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", m.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Medication name")
	cmd.Flags().StringVar(&dosage, "dosage", "", "Dosage")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Frequency label")
	return cmd
}

func newMedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medication and its taken records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			if err := a.Services.Tracker.DeleteMedication(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}
}

func newMedTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take <id>",
		Short: "Mark a medication taken today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			rec, err := a.Services.Tracker.MarkTaken(cmd.Context(), args[0])
			if errors.Is(err, service.ErrAlreadyTakenToday) {
				// Benign: taking a dose twice should not exit non-zero.
				fmt.Fprintln(cmd.OutOrStdout(), "Already taken today")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Taken at %s\n", rec.TakenAt)
			return nil
		},
	}
}

func newMedTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's progress and taken doses",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			taken, total := a.Services.Tracker.TodayProgress()
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d medications taken today\n", taken, total)
			records := a.Services.Tracker.TakenToday()
			if len(records) == 0 {
				return nil
			}
			return writeJSON(records)
		},
	}
}

func newMedAdherenceCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "adherence",
		Short: "Show the adherence rate over the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := requireUser(cmd.Context(), a); err != nil {
				return err
			}
			rate := a.Services.Tracker.AdherenceRate(days)
			fmt.Fprintf(cmd.OutOrStdout(), "%d%% over the last %d days\n", rate, days)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Window size in days")
	return cmd
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
