package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/graceapps/breezediff/internal/breeze"
	"github.com/graceapps/breezediff/internal/config"
	"github.com/graceapps/breezediff/internal/snapshot"
)

// --- account ---

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account summary (verifies URL and API key)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newBreezeClient()
		if err != nil {
			return err
		}

		summary, err := client.AccountSummary(cmd.Context())
		if err != nil {
			return err
		}

		printStatus("Account", "%s (%s)", summary.Name, summary.Subdomain)
		if summary.Details.Timezone != "" {
			printStatus("Timezone", "%s", summary.Details.Timezone)
		}
		if summary.Details.Country.Name != "" {
			printStatus("Country", "%s", summary.Details.Country.Name)
		}
		printSuccess("Credentials OK")
		return nil
	},
}

// --- fields ---

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the profile field catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newBreezeClient()
		if err != nil {
			return err
		}

		sections, err := client.ProfileFields(cmd.Context())
		if err != nil {
			return err
		}

		for _, section := range sections {
			fmt.Fprintln(os.Stdout, colorize(colorBold, section.Name))
			for _, field := range section.Fields {
				fmt.Fprintf(os.Stdout, "  %s [%s] (%s)\n", field.Name, field.FieldType, field.FieldID)
			}
		}
		return nil
	},
}

// --- people ---

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List people in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showIDs, _ := cmd.Flags().GetBool("ids")

		client, err := newBreezeClient()
		if err != nil {
			return err
		}

		people, err := client.ListPeople(cmd.Context(), breeze.ListPeopleOptions{Limit: limit})
		if err != nil {
			return err
		}

		for _, p := range people {
			if showIDs {
				fmt.Fprintf(os.Stdout, "%s\t%s %s\n", p.ID, p.FirstName, p.LastName)
			} else {
				fmt.Fprintf(os.Stdout, "%s %s\n", p.FirstName, p.LastName)
			}
		}
		printStatus("Total", "%d", len(people))
		return nil
	},
}

// --- snapshot ---

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the field catalog and detailed roster to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		client, err := newBreezeClient()
		if err != nil {
			return err
		}

		printStep("Capturing profile data...")
		snap, err := snapshot.Capture(cmd.Context(), client)
		if err != nil {
			return err
		}

		if output == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			output = filepath.Join(cfg.SnapshotDir, snapshot.Filename(snap.TakenAt))
		}

		if err := snapshot.Write(output, snap); err != nil {
			return err
		}

		printStatus("People", "%d", len(snap.People))
		printStatus("Sections", "%d", len(snap.Fields))
		printSuccess("Snapshot written to %s", output)
		return nil
	},
}

func init() {
	peopleCmd.Flags().Int("limit", 0, "maximum number of people to list (0 = all)")
	peopleCmd.Flags().Bool("ids", false, "include person ids")
	snapshotCmd.Flags().String("output", "", "snapshot file path (default: snapshot dir)")
}
