package dto

import (
	"bytes"
	"errors"
	"io"

	"github.com/bytedance/sonic"

	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/pkg/models"
)

// TaskPayload is the addTask argument as sent by the hosting shell.
// Fields left out of the JSON stay nil and are stored as NULL.
type TaskPayload struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DocumentID  *string `json:"document_id"`
	Priority    *string `json:"priority"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
	ColumnID    *string `json:"column_id"`
	Deadline    *string `json:"deadline"`
}

// DecodeTaskPayload reads r to the end. The input must be exactly one JSON
// object; trailing data and a bare null are rejected.
func DecodeTaskPayload(r io.Reader) (TaskPayload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return TaskPayload{}, apperrors.ErrInvalidPayload.Wrap(err)
	}
	data = bytes.TrimSpace(data)
	if !sonic.ConfigStd.Valid(data) {
		return TaskPayload{}, apperrors.ErrInvalidPayload.Wrap(errors.New("payload is not a single JSON value"))
	}

	var payload *TaskPayload
	if err := sonic.ConfigStd.Unmarshal(data, &payload); err != nil {
		return TaskPayload{}, apperrors.ErrInvalidPayload.Wrap(err)
	}
	if payload == nil {
		return TaskPayload{}, apperrors.ErrInvalidPayload.Wrap(errors.New("payload must be a JSON object"))
	}
	return *payload, nil
}

func (p TaskPayload) Task() *model.Task {
	return &model.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		DocumentID:  p.DocumentID,
		Priority:    p.Priority,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ColumnID:    p.ColumnID,
		Deadline:    p.Deadline,
	}
}
