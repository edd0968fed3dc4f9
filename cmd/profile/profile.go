// Package profile handles the study profile commands
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	"studyabroad/departure-planner/internal/dateutils"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/render"
)

// Cmd represents the profile command
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the study profile",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the study profile",
	Long: `Update the study profile. Only the flags given are changed; a new profile
starts from Canada / Toronto / university / 12 months.`,
	RunE: setFunc,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the study profile and the days left until departure",
	RunE:  showFunc,
}

var flags struct {
	country    string
	city       string
	schoolType string
	departure  string
	months     int
}

func init() {
	setCmd.Flags().StringVar(&flags.country, "country", "", "Destination country")
	setCmd.Flags().StringVar(&flags.city, "city", "", "Destination city")
	setCmd.Flags().StringVar(&flags.schoolType, "school-type", "", "School type (language, college, university)")
	setCmd.Flags().StringVarP(&flags.departure, "departure", "d", "", "Departure date (YYYY-MM-DD)")
	setCmd.Flags().IntVarP(&flags.months, "months", "m", 0, "Study duration in months")

	Cmd.AddCommand(setCmd, showCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()

	profile, ok := p.Profile(ctx)
	if !ok {
		profile = models.DefaultProfile()
	}

	if cmd.Flags().Changed("country") {
		profile.Country = flags.country
	}
	if cmd.Flags().Changed("city") {
		profile.City = flags.city
	}
	if cmd.Flags().Changed("school-type") {
		profile.SchoolType = models.SchoolType(flags.schoolType)
	}
	if cmd.Flags().Changed("months") {
		profile.DurationMonths = flags.months
	}
	if cmd.Flags().Changed("departure") {
		date, _, err := dateutils.ParseDate(flags.departure)
		if err != nil {
			return fmt.Errorf("invalid departure date: %w", err)
		}
		profile.DepartureDate = dateutils.ToISODate(date)
	}

	saved, err := p.SaveProfile(ctx, profile)
	if err != nil {
		return err
	}
	root.Log.WithField("city", saved.City).Debug("Profile updated")
	return printProfile(cmd, saved, "")
}

func showFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()

	profile, ok := p.Profile(ctx)
	if !ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No profile saved yet. Run 'profile set --departure YYYY-MM-DD' first.")
		return err
	}
	label, _ := p.DaysToDeparture(ctx)
	return printProfile(cmd, profile, label)
}

func printProfile(cmd *cobra.Command, profile models.StudyProfile, label string) error {
	return root.Print(cmd.OutOrStdout(), profile, func() string {
		pairs := [][2]string{
			{"Country", profile.Country},
			{"City", profile.City},
			{"School type", string(profile.SchoolType)},
			{"Departure", profile.DepartureDate},
			{"Duration", fmt.Sprintf("%d months", profile.DurationMonths)},
		}
		if label != "" {
			pairs = append(pairs, [2]string{"Countdown", label})
		}
		return render.RenderKeyValues("Study profile", pairs)
	})
}
