package dto

import (
	"io"

	"github.com/bytedance/sonic"

	apperrors "task-board.com/task-board/internal/errors"
)

type CommandError struct {
	Kind    apperrors.ErrorKind `json:"kind"`
	Message string              `json:"message"`
}

// CommandResult is what a command hands back across the shell boundary:
// either ok, or a tagged error the caller can branch on.
type CommandResult struct {
	OK    bool          `json:"ok"`
	Error *CommandError `json:"error,omitempty"`
}

func NewCommandResult(err error) CommandResult {
	if err == nil {
		return CommandResult{OK: true}
	}

	return CommandResult{
		Error: &CommandError{
			Kind:    apperrors.KindOf(err),
			Message: err.Error(),
		},
	}
}

func (r CommandResult) Write(w io.Writer) error {
	return sonic.ConfigStd.NewEncoder(w).Encode(r)
}
