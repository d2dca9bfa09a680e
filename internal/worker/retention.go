package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	"github.com/listing-monitor/internal/usecase"
)

// RetentionWorker по расписанию удаляет объявления старше заданного срока
type RetentionWorker struct {
	*BaseWorker
	itemUC *usecase.ItemUseCase
	cfg    config.WorkerConfig
	cron   *cron.Cron
}

// NewRetentionWorker создает новый RetentionWorker
func NewRetentionWorker(itemUC *usecase.ItemUseCase, cfg config.WorkerConfig, logger *zap.Logger) *RetentionWorker {
	return &RetentionWorker{
		BaseWorker: NewBaseWorker("retention", logger),
		itemUC:     itemUC,
		cfg:        cfg,
		cron:       cron.New(),
	}
}

// Start запускает планировщик и блокируется до остановки
func (w *RetentionWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.cfg.RetentionSchedule, func() {
		w.run(ctx)
	})
	if err != nil {
		return err
	}

	w.Logger().Info("Retention worker started",
		zap.String("schedule", w.cfg.RetentionSchedule),
		zap.Int("retention_days", w.cfg.RetentionDays),
	)
	w.cron.Start()

	select {
	case <-ctx.Done():
	case <-w.StopChan():
	}

	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	return nil
}

func (w *RetentionWorker) run(ctx context.Context) {
	deleted, err := w.itemUC.DeleteItemsOlderThanDays(ctx, w.cfg.RetentionDays)
	if err != nil {
		w.Logger().Error("Retention cleanup failed", zap.Error(err))
		return
	}

	w.Logger().Info("Retention cleanup finished",
		zap.Int("deleted_count", len(deleted)),
		zap.Int("retention_days", w.cfg.RetentionDays),
	)
}
