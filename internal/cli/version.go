package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/textsign/internal/tui"
)

// versionInfo is the JSON shape of the version command.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// AddVersionCommand adds the version command to the root command.
func AddVersionCommand(root *cobra.Command, info BuildInfo) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := tui.NewOutput(cmd.OutOrStdout(), outputFormat(cmd))
			if outputFormat(cmd) == OutputJSON {
				b := info.withDefaults()
				return out.JSON(versionInfo{Version: b.Version, Commit: b.Commit, Date: b.Date})
			}
			out.Value("textsign " + formatVersion(info))
			return nil
		},
	})
}
