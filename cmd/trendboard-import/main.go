package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"trendboard/internal/migrate"
	"trendboard/internal/modkit"
	"trendboard/internal/platform/config"
	"trendboard/internal/platform/logger"
	"trendboard/internal/platform/store"

	importermod "trendboard/internal/services/importer/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	var (
		fData    = flag.String("data", "", "directory of trending jsonl files")
		fTopics  = flag.String("topics", "", "topic repository json dump to import")
		fMigrate = flag.Bool("migrate", false, "apply embedded migrations before importing")
	)
	flag.Parse()

	if *fData == "" && *fTopics == "" && !*fMigrate {
		l.Panic().Msg("nothing to do: provide -data and/or -topics (or --migrate)")
	}

	dbURL := pgCfg.MustString("DBURL")

	if *fMigrate {
		if err := migrate.Up(dbURL); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
		l.Info().Msg("migrations applied")
	}

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbURL,
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	im := importermod.New(deps)
	runner := im.Ports().(importermod.Ports).Runner

	ctx := context.Background()

	if *fData != "" {
		sum, err := runner.RunTrending(ctx, *fData)
		if err != nil {
			l.Fatal().Err(err).Str("run_id", sum.RunID).Msg("trending import failed")
		}
		l.Info().
			Str("run_id", sum.RunID).
			Int("files", len(sum.Files)).
			Int("rows", sum.Rows).
			Dur("elapsed", sum.Elapsed).
			Msg("trending import complete")
	}

	if *fTopics != "" {
		sum, err := runner.RunTopics(ctx, *fTopics)
		if err != nil {
			l.Fatal().Err(err).Str("run_id", sum.RunID).Msg("topic import failed")
		}
		l.Info().
			Str("run_id", sum.RunID).
			Int("rows", sum.Rows).
			Dur("elapsed", sum.Elapsed).
			Msg("topic import complete")
	}
}
