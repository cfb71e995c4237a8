package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wondershop/internal/adapter/http/routes"
	"wondershop/internal/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Application runs the HTTP server and the session sweeper until a signal
// arrives.
type Application struct {
	ctx       context.Context
	cancel    context.CancelFunc
	container *Container
}

func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	appCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	container, err := NewContainer(appCtx, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	container.Logger().Info("[app] initialized",
		zap.Int("port", cfg.Port),
		zap.Int("operators", len(cfg.OperatorIDs)),
	)
	return &Application{ctx: appCtx, cancel: cancel, container: container}, nil
}

func (a *Application) Run() error {
	g, ctx := errgroup.WithContext(a.ctx)

	g.Go(func() error {
		return routes.Run(ctx, a.container.config.Port, a.container.Router(), a.container.Logger())
	})

	g.Go(func() error {
		a.sweep(ctx)
		return nil
	})

	return g.Wait()
}

// sweep evicts idle dialogue sessions on every tick.
func (a *Application) sweep(ctx context.Context) {
	ticker := time.NewTicker(a.container.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := a.container.Dialogue().Sweep(now.UTC()); n > 0 {
				a.container.Logger().Info("[app] sessions swept", zap.Int("evicted", n))
			}
		}
	}
}

func (a *Application) Shutdown() {
	a.container.Logger().Info("[app] shutting down")
	a.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.container.Shutdown(ctx); err != nil {
		a.container.Logger().Error("[app] shutdown", zap.Error(err))
	}
}
