package cmd

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	dto "task-board.com/task-board/internal/data_models"
	"task-board.com/task-board/internal/services"
	model "task-board.com/task-board/pkg/models"
)

type addOptions struct {
	json        string
	id          string
	title       string
	description string
	documentID  string
	priority    string
	createdAt   string
	updatedAt   string
	columnID    string
	deadline    string
}

var attributeFlags = []string{
	"id", "title", "description", "document-id", "priority",
	"created-at", "updated-at", "column-id", "deadline",
}

func newAddCmd(root *rootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Persist one task",
		Long: `Persist one task as a single row.

The task is read from --json, from the attribute flags, or from stdin as JSON
when neither is given. The outcome is written to stdout as {"ok":true} or
{"ok":false,"error":{"kind":...,"message":...}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := loadConfig(root)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			payload, err := opts.payload(cmd)
			if err == nil {
				err = services.NewTaskService(cfg).AddTask(cmd.Context(), payload)
			}

			return writeResult(cmd, err)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.json, "json", "", "task payload as a JSON object")
	f.StringVar(&opts.id, "id", "", "task id (default: a new UUID)")
	f.StringVar(&opts.title, "title", "", "task title")
	f.StringVar(&opts.description, "description", "", "task description")
	f.StringVar(&opts.documentID, "document-id", "", "linked document id")
	f.StringVar(&opts.priority, "priority", "", "task priority")
	f.StringVar(&opts.createdAt, "created-at", "", "creation timestamp (default: now, RFC 3339)")
	f.StringVar(&opts.updatedAt, "updated-at", "", "update timestamp (default: now, RFC 3339)")
	f.StringVar(&opts.columnID, "column-id", "", "board column id")
	f.StringVar(&opts.deadline, "deadline", "", "deadline timestamp")
	for _, name := range attributeFlags {
		cmd.MarkFlagsMutuallyExclusive("json", name)
	}

	return cmd
}

func (o *addOptions) payload(cmd *cobra.Command) (dto.TaskPayload, error) {
	flags := cmd.Flags()

	if flags.Changed("json") {
		return dto.DecodeTaskPayload(strings.NewReader(o.json))
	}

	for _, name := range attributeFlags {
		if flags.Changed(name) {
			return o.flagPayload(flags), nil
		}
	}

	return dto.DecodeTaskPayload(cmd.InOrStdin())
}

// flagPayload builds a payload from the attribute flags. Flags that were not
// given stay nil, except id and the timestamps, which get defaults.
func (o *addOptions) flagPayload(flags *pflag.FlagSet) dto.TaskPayload {
	optional := func(name, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return model.Text(value)
	}
	withDefault := func(name, value, def string) *string {
		if !flags.Changed(name) {
			return model.Text(def)
		}
		return model.Text(value)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return dto.TaskPayload{
		ID:          withDefault("id", o.id, uuid.NewString()),
		Title:       optional("title", o.title),
		Description: optional("description", o.description),
		DocumentID:  optional("document-id", o.documentID),
		Priority:    optional("priority", o.priority),
		CreatedAt:   withDefault("created-at", o.createdAt, now),
		UpdatedAt:   withDefault("updated-at", o.updatedAt, now),
		ColumnID:    optional("column-id", o.columnID),
		Deadline:    optional("deadline", o.deadline),
	}
}
