package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
)

// Deferred применяет миграции к базе, которая была недоступна при запуске.
// Миграции выполняются один раз, при первом успешном соединении.
type Deferred struct {
	ping    func(ctx context.Context) error
	migrate func() error

	mu   sync.Mutex
	done bool
}

// NewDeferred создаёт Deferred для базы db и каталога миграций path.
func NewDeferred(db *sql.DB, path string) *Deferred {
	return &Deferred{
		ping:    db.PingContext,
		migrate: func() error { return Run(db, path) },
	}
}

// Ensure проверяет соединение и, если миграции ещё не применены,
// применяет их. При ошибке следующий вызов попробует снова.
func (d *Deferred) Ensure(ctx context.Context) error {
	const op = "migrations.Deferred.Ensure"
	if err := d.ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return nil
	}
	if err := d.migrate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.done = true
	return nil
}

// Done сообщает, что миграции применены.
func (d *Deferred) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// Retry вызывает Ensure каждые interval, пока миграции не применятся
// или не будет отменён ctx.
func (d *Deferred) Retry(ctx context.Context, interval time.Duration, log *slog.Logger) {
	const op = "migrations.Deferred.Retry"
	log = log.With(sl.Op(op))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if d.Done() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, interval)
			err := d.Ensure(checkCtx)
			cancel()
			if err != nil {
				log.Debug("database is still unavailable", sl.Err(err))
				continue
			}
			log.Info("database is reachable, migrations applied")
		}
	}
}
