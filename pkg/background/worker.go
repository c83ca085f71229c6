package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"dispatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками, <= 0 отключает периодический запуск.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker гоняет набор задач, каждую в своей горутине со своим тикером.
// Запуски одной задачи никогда не пересекаются: следующий тик ждет окончания Do.
type Worker struct {
	log   handlerLogger
	tasks []Task
	loops *errgroup.Group
}

// New сначала синхронно прогревает все задачи (один запуск каждой, параллельно),
// ошибка или паника прогрева возвращается сразу и Worker не создается.
// После прогрева задачи крутятся до отмены ctx, дождаться остановки можно через Wait.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		loops: &errgroup.Group{},
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("Initializing", logger.NewField("task", task.Info()))
			return worker.safeDo(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.loops.Go(func() error {
			worker.runBackgroundTask(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокируется, пока все циклы задач не завершатся (после отмены контекста из New).
func (w *Worker) Wait() error {
	return w.loops.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, skipping periodic execution", logger.NewField("TTL", ttl))
		return
	}
	taskLog.Info("Starting periodic execution", logger.NewField("TTL", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Warn("Stopping task (context cancelled)")
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				taskLog.Error("Background task failed", logger.NewField("error", err))
			}
		}
	}
}

// safeDo превращает панику задачи в ошибку, чтобы один сбой не ронял процесс.
func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %s panic: %v", task.Info(), r)
		}
	}()

	return task.Do(ctx)
}
