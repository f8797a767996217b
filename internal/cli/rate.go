package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goserg/batchrating/internal/storage/csvfile"
)

func NewRateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rate [file]",
		Short: "Rate games read from a CSV file or stdin",
		Long: "Reads lines of the form teamA,teamB,pointsA,pointsB.\n" +
			"Blank lines and lines starting with '#' are ignored.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			ratings, err := e.service.RateStorage(cmd.Context(), csvfile.New(in))
			return e.print(cmd.OutOrStdout(), cmd.ErrOrStderr(), ratings, err)
		},
	}
}
