package tasks

import (
	"context"
	"log/slog"
	"time"
)

type ExpireSessionsTask struct {
	Task
	TTL   time.Duration
	store SessionExpirer
}

func NewExpireSessionsTask(store SessionExpirer, ttl time.Duration) *ExpireSessionsTask {
	return &ExpireSessionsTask{
		Task:  NewTask(TaskTypeExpireSessions, "sessions"),
		TTL:   ttl,
		store: store,
	}
}

func (t *ExpireSessionsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	expired := t.store.ExpireIdle(t.TTL)

	if expired == 0 {
		slog.Debug("Task completed", "type", "ExpireSessions", "expired", 0, "active", t.store.Count())
		return nil
	}

	slog.Info("Task completed",
		"type", "ExpireSessions",
		"duration", t.GetDuration(),
		"expired", expired,
		"active", t.store.Count())

	return nil
}
