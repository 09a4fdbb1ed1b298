package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/pfid/pkg/pfid"
)

var (
	newPartition uint32
	newRoot      bool
	newRelated   string
	newExample   bool
	newCount     int
)

// newRequest selects which generator operation to run.
type newRequest struct {
	partition uint32
	root      bool
	related   string
	example   bool
	count     int
}

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate fresh ids",
	Long: `Generate one or more PFIDs and print their text form, one per line.

By default ids are generated in the configured partition. Use --root for a
random partition, --related to reuse the partition of an existing id, or
--example for the fixed documentation timestamp and partition.

Example:
  pfid new --partition 42 --count 3
  pfid new --related 04fq3yr4a03nqk8n008j4ct4ank7f24s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := newRequest{
			partition: newPartition,
			root:      newRoot,
			related:   newRelated,
			example:   newExample,
			count:     newCount,
		}
		if !cmd.Flags().Changed("partition") {
			req.partition = cfg.Generate.Partition
		}
		if !cmd.Flags().Changed("count") {
			req.count = cfg.Generate.Count
		}

		texts, err := generateIDs(pfid.NewGenerator(pfid.GeneratorConfig{}), req)
		if err != nil {
			return err
		}
		for _, text := range texts {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	},
}

func generateIDs(g *pfid.Generator, req newRequest) ([]string, error) {
	if req.count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", req.count)
	}

	texts := make([]string, 0, req.count)
	for i := 0; i < req.count; i++ {
		var (
			id  pfid.ID
			err error
		)
		switch {
		case req.example:
			id, err = g.NewExample()
		case req.root:
			id, err = g.NewRoot()
		case req.related != "":
			id, err = g.NewRelated(req.related)
		default:
			id, err = g.New(req.partition)
		}
		if err != nil {
			return nil, fmt.Errorf("generating id: %w", err)
		}

		text, err := id.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding id: %w", err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().Uint32VarP(&newPartition, "partition", "p", 0, "Partition key for the new ids")
	newCmd.Flags().BoolVar(&newRoot, "root", false, "Draw a random partition")
	newCmd.Flags().StringVar(&newRelated, "related", "", "Reuse the partition of an existing text id")
	newCmd.Flags().BoolVar(&newExample, "example", false, "Use the fixed documentation timestamp and partition")
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "Number of ids to generate")
	newCmd.MarkFlagsMutuallyExclusive("partition", "root", "related", "example")
}
