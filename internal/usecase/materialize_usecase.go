package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/finflow/finflow/internal/domain"
)

const (
	// DefaultWorkers bounds batch parallelism across templates.
	DefaultWorkers = 4
	// DefaultLockTTL caps how long an abandoned run lock can linger.
	DefaultLockTTL = time.Minute
)

// MaterializeUseCase reconciles each template's computed schedule against the
// persisted occurrences and creates exactly the missing ones, then advances
// the template's watermark. Safe to invoke concurrently for the same
// template: runs are serialized by an advisory lock and a row lock, with the
// store's uniqueness constraint as the final backstop.
type MaterializeUseCase struct {
	txManager      TransactionManager
	templateRepo   TemplateRepository
	occurrenceRepo OccurrenceRepository
	idGen          IDGenerator
	locker         RunLocker
	retrier        Retrier
	logger         zerolog.Logger
	workers        int
	lockTTL        time.Duration
}

// NewMaterializeUseCase creates a new MaterializeUseCase.
func NewMaterializeUseCase(
	txManager TransactionManager,
	templateRepo TemplateRepository,
	occurrenceRepo OccurrenceRepository,
	idGen IDGenerator,
	locker RunLocker,
	retrier Retrier,
	logger zerolog.Logger,
	workers int,
	lockTTL time.Duration,
) *MaterializeUseCase {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	return &MaterializeUseCase{
		txManager:      txManager,
		templateRepo:   templateRepo,
		occurrenceRepo: occurrenceRepo,
		idGen:          idGen,
		locker:         locker,
		retrier:        retrier,
		logger:         logger,
		workers:        workers,
		lockTTL:        lockTTL,
	}
}

// MaterializeResult reports one template's run.
type MaterializeResult struct {
	TemplateID string
	Created    int
	Watermark  *time.Time
}

// TemplateFailure reports one template's failed run in a batch.
type TemplateFailure struct {
	TemplateID string
	Err        error
}

// BatchResult aggregates a MaterializeAll run.
type BatchResult struct {
	Results  []*MaterializeResult
	Failures []TemplateFailure
}

// Created is the total number of occurrences created across the batch.
func (r *BatchResult) Created() int {
	total := 0
	for _, res := range r.Results {
		total += res.Created
	}
	return total
}

// Materialize creates the occurrences the template implies through horizon
// that are not yet persisted, and advances the watermark. The whole run is
// one transaction: either every missing occurrence is created and the
// watermark reflects it, or nothing is.
func (uc *MaterializeUseCase) Materialize(ctx context.Context, templateID string, horizon time.Time) (*MaterializeResult, error) {
	horizon = domain.DateOf(horizon)

	if uc.locker != nil {
		acquired, err := uc.locker.TryLock(ctx, templateID, uc.lockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, domain.ErrRunInProgress
		}
		defer func() {
			if err := uc.locker.Unlock(context.WithoutCancel(ctx), templateID); err != nil {
				uc.logger.Warn().Err(err).Str("template_id", templateID).Msg("failed to release run lock")
			}
		}()
	}

	var result *MaterializeResult
	run := func() error {
		res, err := uc.materializeTx(ctx, templateID, horizon)
		if err != nil {
			return err
		}
		result = res
		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, run)
	} else {
		err = run()
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Debug().
		Str("template_id", templateID).
		Time("horizon", horizon).
		Int("created", result.Created).
		Msg("template materialized")

	return result, nil
}

func (uc *MaterializeUseCase) materializeTx(ctx context.Context, templateID string, horizon time.Time) (*MaterializeResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	template, err := uc.templateRepo.GetByIDForUpdate(ctx, tx, templateID)
	if err != nil {
		return nil, err
	}

	schedule, err := template.Schedule(horizon)
	if err != nil {
		return nil, err
	}

	existing, err := uc.occurrenceRepo.DatesFor(ctx, tx, templateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	watermark := template.LastMaterializedDate

	created := 0
	var last time.Time
	covered := false

	for it := schedule.Iter(); ; {
		date, ok := it.Next()
		if !ok {
			break
		}
		last = date
		covered = true

		// Dates at or below the watermark are already handled, whether or
		// not an occurrence row still exists: a deleted entry must never be
		// resurrected.
		if watermark != nil && !date.After(*watermark) {
			continue
		}
		if _, exists := existing[date]; exists {
			continue
		}

		occurrence := template.OccurrenceOn(uc.idGen.Generate(), date, now)
		if err := uc.occurrenceRepo.Insert(ctx, tx, occurrence); err != nil {
			if errors.Is(err, domain.ErrDuplicateOccurrence) {
				// Benign race with a concurrent run.
				continue
			}
			return nil, err
		}
		created++
	}

	newWatermark := watermark
	if covered && (watermark == nil || last.After(*watermark)) {
		if err := uc.templateRepo.UpdateWatermark(ctx, tx, templateID, last, now); err != nil {
			return nil, err
		}
		newWatermark = &last
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &MaterializeResult{
		TemplateID: templateID,
		Created:    created,
		Watermark:  newWatermark,
	}, nil
}

// MaterializeAll materializes every still-potentially-active template through
// horizon. Templates run independently on a bounded worker pool; one
// template's failure is reported in the result and never aborts the batch.
func (uc *MaterializeUseCase) MaterializeAll(ctx context.Context, horizon time.Time) (*BatchResult, error) {
	horizon = domain.DateOf(horizon)

	templates, err := uc.templateRepo.ListActive(ctx, horizon)
	if err != nil {
		return nil, err
	}

	results := make([]*MaterializeResult, len(templates))
	failures := make([]error, len(templates))

	g := &errgroup.Group{}
	g.SetLimit(uc.workers)

	for i, template := range templates {
		g.Go(func() error {
			res, err := uc.Materialize(ctx, template.ID, horizon)
			if err != nil {
				uc.logger.Warn().Err(err).Str("template_id", template.ID).Msg("template materialization failed")
				failures[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	batch := &BatchResult{}
	for i, template := range templates {
		if failures[i] != nil {
			batch.Failures = append(batch.Failures, TemplateFailure{TemplateID: template.ID, Err: failures[i]})
			continue
		}
		batch.Results = append(batch.Results, results[i])
	}

	uc.logger.Info().
		Time("horizon", horizon).
		Int("templates", len(templates)).
		Int("created", batch.Created()).
		Int("failed", len(batch.Failures)).
		Msg("batch materialization complete")

	return batch, nil
}
