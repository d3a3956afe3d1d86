package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	config "task-board.com/task-board/internal/configs"
	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	repository "task-board.com/task-board/internal/repositories"
	model "task-board.com/task-board/pkg/models"
)

// TaskService runs the commands exposed to the hosting shell. It keeps no
// connection between calls: each call opens the store, does its work and
// releases the handle before returning.
type TaskService struct {
	cfg config.Config
}

func NewTaskService(cfg config.Config) *TaskService {
	return &TaskService{cfg: cfg}
}

func (s *TaskService) AddTask(ctx context.Context, payload dto.TaskPayload) error {
	taskID := model.Value(payload.ID)

	err := s.withStore(ctx, func(db *gorm.DB) error {
		return repository.NewTaskRepository(db).InsertTask(ctx, payload.Task())
	})
	if err != nil {
		log.WithError(err).
			WithField("task_id", taskID).
			WithField("kind", apperrors.KindOf(err)).
			Warn("add task failed")
		return err
	}

	log.WithField("task_id", taskID).Info("task added")
	return nil
}

// InitStore creates the store and its schema without writing anything.
func (s *TaskService) InitStore(ctx context.Context) error {
	err := s.withStore(ctx, func(*gorm.DB) error { return nil })
	if err != nil {
		log.WithError(err).WithField("kind", apperrors.KindOf(err)).Warn("init store failed")
		return err
	}

	log.WithField("path", s.cfg.DatabasePath).Info("task store ready")
	return nil
}

func (s *TaskService) withStore(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := config.OpenConnection(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer s.release(db)

	if err := config.EnsureSchema(ctx, db); err != nil {
		return err
	}

	return fn(db)
}

// release closes the handle. A close failure after a committed write is
// logged rather than returned, since the row is already durable.
func (s *TaskService) release(db *gorm.DB) {
	if err := config.CloseConnection(db); err != nil {
		log.WithError(err).Warn("failed to close task store")
	}
}
