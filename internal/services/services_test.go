package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	config "task-board.com/task-board/internal/configs"
	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/pkg/models"
)

func setupTestService(t *testing.T) (*TaskService, config.Config) {
	t.Helper()

	cfg := config.Config{
		DatabasePath:          filepath.Join(t.TempDir(), "kanban.db"),
		DatabaseBusyTimeoutMS: 5000,
	}
	return NewTaskService(cfg), cfg
}

func scenarioPayload(id string) dto.TaskPayload {
	return dto.TaskPayload{
		ID:        model.Text(id),
		Title:     model.Text("Write spec"),
		Priority:  model.Text("high"),
		CreatedAt: model.Text("2024-01-01T00:00:00Z"),
		UpdatedAt: model.Text("2024-01-01T00:00:00Z"),
		ColumnID:  model.Text("todo"),
	}
}

func storedRows(t *testing.T, cfg config.Config) []model.Task {
	t.Helper()

	ctx := context.Background()
	db, err := config.OpenConnection(ctx, cfg)
	require.NoError(t, err)
	defer config.CloseConnection(db)

	var rows []model.Task
	require.NoError(t, db.Raw("SELECT * FROM tasks ORDER BY id").Scan(&rows).Error)
	return rows
}

func TestTaskService_AddTaskScenario(t *testing.T) {
	service, cfg := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, service.AddTask(ctx, scenarioPayload("t1")))

	rows := storedRows(t, cfg)
	require.Len(t, rows, 1)
	require.Equal(t, *scenarioPayload("t1").Task(), rows[0])

	err := service.AddTask(ctx, scenarioPayload("t1"))
	require.ErrorIs(t, err, apperrors.ErrDuplicateKey)
	require.Len(t, storedRows(t, cfg), 1)
}

func TestTaskService_AddTaskCreatesSchemaOnFreshStore(t *testing.T) {
	service, cfg := setupTestService(t)

	_, err := os.Stat(cfg.DatabasePath)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, service.AddTask(context.Background(), scenarioPayload("first")))
	require.FileExists(t, cfg.DatabasePath)
}

func TestTaskService_AddTaskMissingRequired(t *testing.T) {
	service, cfg := setupTestService(t)

	payload := scenarioPayload("t-missing")
	payload.ColumnID = nil

	err := service.AddTask(context.Background(), payload)
	require.ErrorIs(t, err, apperrors.ErrConstraint)
	require.Empty(t, storedRows(t, cfg))
}

func TestTaskService_AddTaskConnectionFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	service := NewTaskService(config.Config{
		DatabasePath:          filepath.Join(blocker, "kanban.db"),
		DatabaseBusyTimeoutMS: 1000,
	})

	err := service.AddTask(context.Background(), scenarioPayload("t1"))
	require.ErrorIs(t, err, apperrors.ErrConnection)
}

func TestTaskService_InitStoreIdempotent(t *testing.T) {
	service, cfg := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, service.InitStore(ctx))
	require.NoError(t, service.InitStore(ctx))
	require.Empty(t, storedRows(t, cfg))
}

func TestTaskService_ConcurrentSubmissions(t *testing.T) {
	service, cfg := setupTestService(t)
	require.NoError(t, service.InitStore(context.Background()))

	const concurrentCount = 10
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	errs := make(chan error, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func(idx int) {
			defer wg.Done()
			if err := service.AddTask(context.Background(), scenarioPayload(fmt.Sprintf("task-%02d", idx))); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent creation failed: %v", err)
	}

	require.Len(t, storedRows(t, cfg), concurrentCount)
}
