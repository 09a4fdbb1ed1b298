package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/pfid/pkg/pfid"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <text-id>",
	Short: "Decode a text id and print its fields",
	Long: `Validate a PFID text id and print its canonical form, binary
representation and decoded fields.

Example:
  pfid inspect 04fq3yr4a03nqk8n008j4ct4ank7f24s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := formatInspect(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func formatInspect(text string) (string, error) {
	id, err := pfid.Decode(text)
	if err != nil {
		return "", err
	}

	// Decode succeeded, so the canonical lowercase form encodes cleanly.
	canonical, err := id.Encode()
	if err != nil {
		return "", err
	}

	ts := id.Timestamp()
	when := time.UnixMilli(int64(ts)).UTC().Format(time.RFC3339Nano)

	var b strings.Builder
	fmt.Fprintf(&b, "text:       %s\n", canonical)
	fmt.Fprintf(&b, "binary:     %x\n", id.Bytes())
	fmt.Fprintf(&b, "timestamp:  %d (%s)\n", ts, when)
	fmt.Fprintf(&b, "partition:  %d\n", id.Partition())
	fmt.Fprintf(&b, "randomness: %x\n", id.Randomness())
	return b.String(), nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
