package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/apiclient"
	"github.com/vivo1806/Talent-Flow/internal/config"
	"github.com/vivo1806/Talent-Flow/internal/fixture"
	"github.com/vivo1806/Talent-Flow/internal/logger"
	"github.com/vivo1806/Talent-Flow/internal/seed"
	"github.com/vivo1806/Talent-Flow/internal/sim"
	"github.com/vivo1806/Talent-Flow/internal/state"
	"github.com/vivo1806/Talent-Flow/internal/store"
)

type application struct {
	Store     *store.Store
	Simulator *sim.Simulator
	Client    *apiclient.Client
	State     *state.App
	Logger    *zap.Logger
	Config    *config.Config
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	st, err := store.Open(cfg.DB.Path)
	if err != nil {
		sugar.Fatal(err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		sugar.Fatal(err)
	}

	if err := seed.New(st, log).Run(ctx); err != nil {
		sugar.Fatal(err)
	}

	candidates := fixture.Candidates(cfg.Fixture.Candidates, cfg.Fixture.Seed)

	// keep a durable snapshot of the fixture for tooling; the live set the
	// simulator serves stays in memory
	if n, err := st.CountCandidates(ctx); err != nil {
		sugar.Fatal(err)
	} else if n == 0 {
		if err := st.BulkInsertCandidates(ctx, candidates); err != nil {
			sugar.Fatal(err)
		}
		sugar.Infof("candidate fixture snapshot persisted, count=%d", len(candidates))
	}

	simulator := sim.New(st, candidates, sim.Config{
		Latency:     cfg.Sim.Latency,
		FailureRate: cfg.Sim.FailureRate,
		Seed:        cfg.Sim.Seed,
		CurrentUser: cfg.Session.CurrentUser,
	}, log)

	client := apiclient.NewInProcess(simulator.Routes())

	appState := state.NewApp(client, log, state.Options{
		CurrentUser:       cfg.Session.CurrentUser,
		JobsPerPage:       cfg.Session.JobsPerPage,
		CandidatePageSize: cfg.Session.CandidatePageSize,
	})

	app := &application{
		Store:     st,
		Simulator: simulator,
		Client:    client,
		State:     appState,
		Logger:    log,
		Config:    cfg,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
