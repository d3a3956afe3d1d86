package cmd

import (
	"github.com/spf13/cobra"

	"task-board.com/task-board/internal/services"
)

func newInitDBCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the task store and its schema if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := loadConfig(root)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			err = services.NewTaskService(cfg).InitStore(cmd.Context())
			return writeResult(cmd, err)
		},
	}
}
