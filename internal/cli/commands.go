package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/terraincognita07/phased/internal/models"
	"github.com/terraincognita07/phased/internal/security"
	"github.com/terraincognita07/phased/internal/services"
)

const dateLayout = "2006-01-02"

// Runner executes the offline commands against the local store.
type Runner struct {
	Profiles *services.ProfileService
	Exports  *services.ExportService
	Out      io.Writer
	In       *os.File
}

func (runner *Runner) ListProfiles() error {
	profiles := runner.Profiles.ListProfiles()
	if len(profiles) == 0 {
		fmt.Fprintln(runner.Out, "No profiles yet.")
		return nil
	}

	writer := tabwriter.NewWriter(runner.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCYCLE\tBLEEDING\tLAST PERIOD")
	for _, profile := range profiles {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\t%s\n",
			profile.ID,
			displayName(profile.Name),
			profile.CycleLength,
			profile.BleedingLength,
			profile.LastPeriodDate.Format(dateLayout),
		)
	}
	return writer.Flush()
}

// PrintCalendar unlocks profileID and prints one cycle starting at start, or at the last period when start is nil.
func (runner *Runner) PrintCalendar(profileID string, start *time.Time) error {
	profile, err := runner.unlock(profileID)
	if err != nil {
		return err
	}

	calendar, err := runner.Profiles.GenerateCycleCalendar(profile, start)
	if err != nil {
		return fmt.Errorf("generate calendar: %w", err)
	}

	writer := tabwriter.NewWriter(runner.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "DAY\tDATE\tREL\tPHASE\tENERGY\tMOOD\tLOGGED")
	for _, day := range calendar {
		logged := ""
		if day.ActualLog != nil {
			logged = fmt.Sprintf("mood %d, energy %d", day.ActualLog.Mood, day.ActualLog.Energy)
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			day.CycleDay,
			day.Date.Format(dateLayout),
			day.RelativeLabel,
			day.Phase.DisplayName,
			day.Predictions.PhysicalEnergy,
			day.Predictions.EmotionalState,
			logged,
		)
	}
	return writer.Flush()
}

// Export unlocks profileID and writes its export document to outPath, or to Out when outPath is empty or "-".
func (runner *Runner) Export(profileID string, outPath string) error {
	if _, err := runner.unlock(profileID); err != nil {
		return err
	}

	payload, err := runner.Exports.ExportData(profileID)
	if err != nil {
		return fmt.Errorf("export profile: %w", err)
	}

	outPath = strings.TrimSpace(outPath)
	if outPath == "" || outPath == "-" {
		_, err := runner.Out.Write(append(payload, '\n'))
		return err
	}
	if err := os.WriteFile(outPath, payload, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(runner.Out, "Export written to %s\n", outPath)
	return nil
}

func (runner *Runner) unlock(profileID string) (models.Profile, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return models.Profile{}, errProfileRequired
	}

	password, err := PromptPassword(runner.Out, runner.In, "Password: ")
	if err != nil {
		return models.Profile{}, err
	}
	profile, err := runner.Profiles.UnlockProfile(profileID, password)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, security.ErrDecryption):
		return models.Profile{}, fmt.Errorf("profile data could not be decrypted: %w", err)
	case errors.Is(err, services.ErrUnlockDenied):
		return models.Profile{}, errors.New("wrong password or unknown profile")
	default:
		return models.Profile{}, fmt.Errorf("unlock profile: %w", err)
	}
}

func ParseDate(raw string, location *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := time.ParseInLocation(dateLayout, raw, location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return &value, nil
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "-"
	}
	return name
}

var errProfileRequired = errors.New("profile id is required")
