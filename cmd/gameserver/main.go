package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/driftblade/internal/config"
	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/game/ability"
	"github.com/udisondev/driftblade/internal/game/combat"
	"github.com/udisondev/driftblade/internal/model"
	"github.com/udisondev/driftblade/internal/world"
)

const configPath = "config/gameserver.yaml"

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

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := configPath
	if p := os.Getenv("DRIFTBLADE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	// Content is validated in full before anything can activate.
	catalog, err := data.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	abilities, err := ability.CompileCatalog(catalog)
	if err != nil {
		return fmt.Errorf("compiling abilities: %w", err)
	}

	w := world.New()
	ids := world.NewObjectIDGenerator()
	spawner := world.NewSpawnRegistry(w, ids, catalog.PrefabIndex())
	audio := world.SlogAudioSink{}
	anim := world.SlogAnimationSink{}

	fight := combat.NewManager(audio, catalog.SoundTable())
	rt := ability.NewRuntime(spawner, audio, anim)

	player := model.NewPlayer(ids.NextEntityID(), cfg.Demo.Name, model.NewLocation(0, 0, model.FaceRight))
	w.Add(player.WorldObject)
	owner := rt.NewPlayerOwner(player, ability.WithAttack(fight))

	set, ok := abilities[cfg.Demo.AbilityID]
	if !ok {
		return fmt.Errorf("demo ability %q not in catalog", cfg.Demo.AbilityID)
	}
	if err := rt.Equip(owner, set); err != nil {
		return err
	}
	player.SyncMaxHP()

	slog.Info("server ready",
		"tickMs", cfg.TickMs,
		"abilities", len(abilities),
		"player", player.Name())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop(ctx, cfg, rt, spawner)
	})
	return g.Wait()
}

// loop steps the simulation once per tick: continuous effects fire,
// cooldowns advance, spawned objects expire.
func loop(ctx context.Context, cfg config.Server, rt *ability.Runtime, spawner *world.SpawnRegistry) error {
	ticker := time.NewTicker(time.Duration(cfg.TickMs) * time.Millisecond)
	defer ticker.Stop()

	delta := int32(cfg.TickMs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rt.Tick(delta)
			spawner.Tick(delta)
		}
	}
}
