// Package service provides the importer service implementation
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/logger"
	"trendboard/internal/services/importer/domain"
	"trendboard/internal/services/importer/ingest"
)

// Config holds configuration options for the importer service
type Config struct {
	// BatchSize is how many rows share one transaction; <=0 -> 50
	BatchSize int

	// Year is stamped onto scraped month/day dates; <=0 -> current year
	Year int
}

// Service implements the importer service
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[domain.StorageRepo]
	Cfg    Config
}

// New constructs the importer service
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo], cfg Config) *Service {
	if db == nil {
		panic("importer.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("importer.Service requires a non nil Repo binder")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.Year <= 0 {
		cfg.Year = time.Now().UTC().Year()
	}
	return &Service{DB: db, Binder: binder, Cfg: cfg}
}

// RunTrending imports every recognized trending jsonl file under dir.
// Files process sequentially; each scraped date commits in its own
// transaction so a rerun after a failure picks up idempotently
func (s *Service) RunTrending(ctx context.Context, dir string) (domain.RunSummary, error) {
	sum := domain.RunSummary{RunID: uuid.NewString()}
	start := time.Now()
	log := logger.C(ctx).With().Str("run_id", sum.RunID).Logger()

	for _, m := range domain.FileMappings {
		path := filepath.Join(dir, m.Prefix+"_list.jsonl")
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("file", path).Msg("trending file missing, skipping")
			continue
		}
		if err != nil {
			return sum, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open %s", path)
		}

		blocks, skipped, err := ingest.ReadDayBlocks(f, s.Cfg.Year)
		cerr := f.Close()
		if err != nil {
			return sum, perr.Wrapf(err, perr.ErrorCodeUnknown, "read %s", path)
		}
		if cerr != nil {
			log.Warn().Err(cerr).Str("file", path).Msg("close failed")
		}

		fileSum := domain.FileSummary{
			File:     filepath.Base(path),
			Category: m.Category,
			Period:   m.Period,
			Dates:    len(blocks),
			Skipped:  skipped,
		}
		for _, block := range blocks {
			rows, err := s.importDay(ctx, block, m)
			if err != nil {
				return sum, err
			}
			fileSum.Rows += rows
		}

		log.Info().
			Str("file", fileSum.File).
			Str("category", m.Category).
			Str("period", m.Period).
			Int("dates", fileSum.Dates).
			Int("rows", fileSum.Rows).
			Int("skipped", fileSum.Skipped).
			Msg("trending file imported")
		sum.Files = append(sum.Files, fileSum)
		sum.Rows += fileSum.Rows
	}

	sum.Elapsed = time.Since(start)
	log.Info().Int("rows", sum.Rows).Dur("elapsed", sum.Elapsed).Msg("trending import done")
	return sum, nil
}

// importDay upserts one scraped date inside a single transaction
func (s *Service) importDay(ctx context.Context, block ingest.DayBlock, m domain.FileMapping) (int, error) {
	rows := 0
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		store := s.Binder.Bind(q)
		snaps := make([]domain.SnapshotRecord, 0, len(block.Entries))
		for i, e := range block.Entries {
			owner, repoName := ingest.SplitName(e.Name)
			id, err := store.UpsertRepository(ctx, domain.RepoRecord{
				Name:          e.Name,
				URL:           e.URL,
				Description:   e.Description,
				ZhDescription: e.ZhDes,
				Language:      e.Language,
				Owner:         owner,
				RepoName:      repoName,
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, domain.SnapshotRecord{
				RepositoryID: id,
				Date:         block.Date,
				Category:     m.Category,
				Period:       m.Period,
				Stars:        ingest.ParseCount(e.Stars),
				Forks:        ingest.ParseCount(e.Forks),
				StarsToday:   ingest.ParseStarsToday(e.StarsToday),
				Rank:         i + 1,
			})
		}
		n, err := store.UpsertSnapshots(ctx, snaps)
		rows = n
		return err
	})
	return rows, err
}

// RunTopics imports one topic repository JSON dump in fixed-size batches
func (s *Service) RunTopics(ctx context.Context, path string) (domain.RunSummary, error) {
	sum := domain.RunSummary{RunID: uuid.NewString()}
	start := time.Now()
	log := logger.C(ctx).With().Str("run_id", sum.RunID).Logger()

	raw, err := os.ReadFile(path)
	if err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read %s", path)
	}
	var records []domain.TopicRepoRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeJSON, "parse %s", path)
	}

	batches := 0
	for off := 0; off < len(records); off += s.Cfg.BatchSize {
		batch := records[off:min(off+s.Cfg.BatchSize, len(records))]
		err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
			n, err := s.Binder.Bind(q).UpsertTopicRepos(ctx, batch)
			sum.Rows += n
			return err
		})
		if err != nil {
			return sum, err
		}
		batches++
		log.Info().Int("batch", batches).Int("rows", sum.Rows).Int("total", len(records)).Msg("topic batch imported")
	}

	sum.Files = append(sum.Files, domain.FileSummary{File: filepath.Base(path), Rows: sum.Rows})
	sum.Elapsed = time.Since(start)
	log.Info().Int("rows", sum.Rows).Dur("elapsed", sum.Elapsed).Msg("topic import done")
	return sum, nil
}
