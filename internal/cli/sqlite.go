package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goserg/batchrating/internal/storage/sqlite"
)

func NewSqliteCommand(opts *RootOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Rate the matches stored in a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			st, err := sqlite.New(dbPath, e.log.WithField("component", "storage"))
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, st.Close())
			}()
			ratings, err := e.service.RateStorage(cmd.Context(), st)
			return e.print(cmd.OutOrStdout(), cmd.ErrOrStderr(), ratings, err)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "rating.sqlite", "path to the sqlite database")
	return cmd
}
