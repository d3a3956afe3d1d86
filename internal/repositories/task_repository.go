package repository

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/pkg/models"
)

const insertTaskQuery = `INSERT INTO tasks (
	id, title, description, document_id, priority, created_at, updated_at, column_id, deadline
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// InsertTask writes task as a single row. Nil attributes are bound as NULL;
// nothing is defaulted or normalized.
func (r *TaskRepository) InsertTask(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Exec(
		insertTaskQuery,
		task.ID,
		task.Title,
		task.Description,
		task.DocumentID,
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
		task.ColumnID,
		task.Deadline,
	).Error
	if err != nil {
		return translateInsertError(err)
	}
	return nil
}

func translateInsertError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return apperrors.ErrDuplicateKey.Wrap(err)
		case sqlite3.ErrConstraintNotNull:
			return apperrors.ErrConstraint.Wrap(err)
		}
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return apperrors.ErrConstraint.Wrap(err)
		}
	}

	return apperrors.ErrIO.Wrap(err)
}
