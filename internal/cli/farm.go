package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"farmstead/internal/forms"
	"farmstead/internal/models"
	"farmstead/internal/routes"
)

// SetupFarm prompts for the farm profile fields and validates them as a
// whole, so several field errors can surface at once. A valid profile
// overwrites any previous one and moves the session to the dashboard.
func (a *App) SetupFarm(ctx context.Context) error {
	farmName, err := getSimpleText(a.reader, "Farm name", os.Stdout)
	if err != nil {
		return err
	}
	farmLocation, err := getSimpleText(a.reader, "Farm location", os.Stdout)
	if err != nil {
		return err
	}
	phoneNumber, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return err
	}
	farmType, err := getSimpleText(a.reader, fmt.Sprintf("Farm type (%s)", farmTypeOptions()), os.Stdout)
	if err != nil {
		return err
	}

	profile := models.FarmProfile{
		FarmName:     farmName,
		FarmLocation: farmLocation,
		PhoneNumber:  phoneNumber,
		FarmType:     models.FarmType(farmType),
	}

	if errs := forms.ValidateFarm(profile); len(errs) > 0 {
		for _, field := range forms.FarmFields {
			if msg, ok := errs[field]; ok {
				printlnFn(fmt.Sprintf("%s: %s", field, msg))
			}
		}
		return nil
	}

	if err := a.session.SetupFarm(ctx, profile); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Farm setup complete! Welcome to %s", profile.FarmName))
	return a.Open(ctx, routes.Home(a.state()))
}

func farmTypeOptions() string {
	opts := make([]string, len(models.FarmTypes))
	for i, t := range models.FarmTypes {
		opts[i] = string(t)
	}
	return strings.Join(opts, ", ")
}
