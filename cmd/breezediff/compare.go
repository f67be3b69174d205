package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/graceapps/breezediff/internal/profile"
	"github.com/graceapps/breezediff/internal/snapshot"
)

var compareCmd = &cobra.Command{
	Use:   "compare REFERENCE [CURRENT]",
	Short: "Report profile changes between two snapshots",
	Long: `Report profile changes between two snapshots.

With two arguments both sides are snapshot files. With one argument the
reference file is compared against the live account data.

Examples:
  breezediff compare snapshots/snapshot-20260101-060000.json
  breezediff compare january.json february.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := snapshot.Read(args[0])
		if err != nil {
			return err
		}

		var cur *snapshot.Snapshot
		if len(args) == 2 {
			cur, err = snapshot.Read(args[1])
			if err != nil {
				return err
			}
		} else {
			client, err := newBreezeClient()
			if err != nil {
				return err
			}
			printStep("Capturing current profile data...")
			cur, err = snapshot.Capture(cmd.Context(), client)
			if err != nil {
				return err
			}
		}

		refHelper := profile.NewHelper(ref.Fields)
		curHelper := profile.NewHelper(cur.Fields)
		report := profile.CompareProfiles(refHelper, curHelper, ref.People, cur.People)

		renderReport(os.Stdout, report)
		if len(report) == 0 {
			printSuccess("No changes")
		} else {
			printStatus("Changed profiles", "%d", len(report))
		}
		return nil
	},
}

// renderReport writes the change report, one person block at a time:
//
//	Anderson, Thomas
//	  Communication:Phone
//	    - (555) 321-0000
//	    + (555) 321-0001
func renderReport(w io.Writer, report []profile.DiffEntry) {
	for i, entry := range report {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, colorize(colorBold, entry.PersonName))
		for _, field := range entry.Fields {
			fmt.Fprintf(w, "  %s\n", field.Name)
			for _, v := range field.OnlyInReference {
				fmt.Fprintf(w, "    %s\n", colorize(colorRed, "- "+v))
			}
			for _, v := range field.OnlyInCurrent {
				fmt.Fprintf(w, "    %s\n", colorize(colorGreen, "+ "+v))
			}
		}
	}
}
