package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newFetchCommand refreshes the snapshot JSON that gets embedded as the
// bundled fallback dataset:
//
//	bankholidays fetch -o bank-holidays.json
//
// The snapshot is overwritten wholesale. Years present only in the old
// snapshot are lost: GOV.UK drops old years from the feed and this tool
// deliberately does not merge them back in.
func newFetchCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the GOV.UK feed to refresh the bundled snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := remoteSource().Load(cmd.Context())
			if err != nil {
				return err
			}

			// Re-encode indented for a reviewable snapshot diff.
			data, err := json.MarshalIndent(raw, "", "    ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}

			events := 0
			for _, list := range raw {
				events += len(list.Events)
			}
			logrus.WithFields(logrus.Fields{
				"path":      output,
				"divisions": len(raw),
				"events":    events,
			}).Info("snapshot written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "bank-holidays.json", "output file path")
	return cmd
}
