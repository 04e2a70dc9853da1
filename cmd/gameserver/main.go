package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/mc2go/internal/config"
	"github.com/udisondev/mc2go/internal/data"
	"github.com/udisondev/mc2go/internal/db"
	"github.com/udisondev/mc2go/internal/game/geo"
	"github.com/udisondev/mc2go/internal/gameserver"
	"github.com/udisondev/mc2go/internal/model"
	"github.com/udisondev/mc2go/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("MC2GO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("mc2go server starting", "log_level", cfg.LogLevel)

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading registries: %w", err)
	}
	slog.Info("registries loaded")

	dimension, err := parseDimension(cfg.Dimension)
	if err != nil {
		return err
	}
	w := world.New(dimension, slog.Default())
	slog.Info("world initialized", "dimension", cfg.Dimension)

	var store gameserver.SnapshotStore
	restored := 0
	if !cfg.Autosave.Enabled {
		slog.Info("persistence disabled, running in-memory only")
	} else {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database connected, migrations applied")

		store = db.NewSnapshotRepository(database.Pool())
		restored, err = gameserver.RestoreWorld(ctx, w, store, slog.Default())
		if err != nil {
			return fmt.Errorf("restoring world: %w", err)
		}
		slog.Info("entities restored", "count", restored)
	}

	if restored == 0 {
		bootstrapWorld(w)
		slog.Info("demo world bootstrapped", "entities", w.Entities().Count())
	}

	ticker := gameserver.NewTicker(w, world.NewLogBroadcaster(slog.Default()), cfg.TickRate.Std(), cfg.Workers, slog.Default())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ticker.Run(gctx)
	})
	if store != nil {
		saver := gameserver.NewAutosaver(w, store, cfg.Autosave.Interval.Std(), slog.Default())
		g.Go(func() error {
			return saver.Run(gctx)
		})
	}

	return g.Wait()
}

// bootstrapWorld builds a small stone platform with a water pool and a
// few mobs so a fresh server has something to simulate.
func bootstrapWorld(w *world.World) {
	for x := int32(-16); x <= 16; x++ {
		for z := int32(-16); z <= 16; z++ {
			w.SetBlock(geo.BlockPos{X: x, Y: 0, Z: z}, data.BlockStone)
		}
	}
	for x := int32(4); x <= 7; x++ {
		for z := int32(4); z <= 7; z++ {
			w.SetFluid(geo.BlockPos{X: x, Y: 1, Z: z}, data.FluidWater, data.FluidState{Height: 0.9})
		}
	}

	for i := 0; i < 4; i++ {
		pos := geo.Vec3{X: float64(i*3) + 0.5, Y: 8.0, Z: 0.5}
		w.Entities().Spawn(model.NewMob(w, model.TypeZombie, pos))
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDimension(name string) (data.Dimension, error) {
	switch name {
	case "", "overworld":
		return data.DimensionOverworld, nil
	case "nether":
		return data.DimensionNether, nil
	case "end":
		return data.DimensionEnd, nil
	default:
		return 0, fmt.Errorf("unknown dimension %q", name)
	}
}
