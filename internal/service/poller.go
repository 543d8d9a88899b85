package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harisahmad000005/osint-news-platform/internal/events"
	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// StartPolling запускает оркестратор опроса: по тику выбираются включённые
// источники, которым пора на опрос, и обрабатываются воркерами под общим
// семафором и глобальным rate-лимитом.
//
// Останавливается по ctx; текущие воркеры дорабатывают.
func (s *Service) StartPolling(ctx context.Context, scraper Scraper) error {
	const op = "service.poller.StartPolling"

	if scraper == nil {
		return fmt.Errorf("%s: %w: scraper is required", op, ErrInvalidArgument)
	}

	lg := log.From(ctx)
	lg.Info("polling_start",
		slog.String("op", op),
		slog.Duration("interval", s.cfg.Poller.Interval),
		slog.Int("max_concurrent", s.cfg.Poller.MaxConcurrent),
	)

	ticker := time.NewTicker(s.cfg.Poller.Interval)
	defer ticker.Stop()

	s.pollOnce(ctx, scraper)

	for {
		select {
		case <-ctx.Done():
			lg.Info("polling_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			s.pollOnce(ctx, scraper)
		}
	}
}

// pollOnce — один проход: выборка «должников» и конкурентная обработка.
func (s *Service) pollOnce(ctx context.Context, scraper Scraper) {
	const op = "service.poller.pollOnce"

	lg := log.From(ctx)

	sources, err := s.storage.DueSources(ctx, time.Now().UTC())
	if err != nil {
		lg.Error("due_sources_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return
	}

	if len(sources) == 0 {
		return
	}

	lg.Debug("poll_tick",
		slog.String("op", op),
		slog.Int("due", len(sources)),
	)

	sem := make(chan struct{}, s.cfg.Poller.MaxConcurrent)
	var wg sync.WaitGroup

	for _, src := range sources {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(src models.Source) {
			defer wg.Done()
			defer func() { <-sem }()

			s.pollSource(ctx, scraper, src)
		}(src)
	}

	wg.Wait()
}

// pollSource — одна попытка опроса одного источника:
// журнал (BeginJob) -> скрейп с таймаутом -> допуск каждого материала ->
// терминальное завершение попытки -> переход монитора здоровья.
// Воркер владеет ровно одной in-flight попыткой.
func (s *Service) pollSource(ctx context.Context, scraper Scraper, src models.Source) {
	const op = "service.poller.pollSource"

	ctx = log.WithAttrs(ctx,
		slog.String("source_id", src.ID.String()),
		slog.String("feed_url", src.FeedURL),
	)
	lg := log.From(ctx)

	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	job, err := s.BeginJob(ctx, src.ID, uuid.NewString())
	if err != nil {
		lg.Error("begin_job_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Poller.AttemptTimeout)
	items, scrapeErr := scraper.Scrape(attemptCtx, src)
	cancel()

	if scrapeErr != nil {
		// Таймаут — отдельный терминальный статус; попытка никогда не
		// остаётся висеть в running, и её завершение доводится до монитора
		// здоровья как неудача.
		status := models.JobFailed
		if errors.Is(scrapeErr, context.DeadlineExceeded) {
			status = models.JobTimeout
		}

		s.finishAttempt(ctx, job.ID, src.ID, status, models.JobCounts{}, scrapeErr.Error())
		return
	}

	counts := models.JobCounts{Found: int32(len(items))}
	var admitErrs int

	for _, item := range items {
		res, admitErr := s.Admit(ctx, AdmitRequest{
			SourceID:    src.ID,
			URL:         item.URL,
			Title:       item.Title,
			Content:     item.Content,
			Language:    item.Language,
			FetchedAt:   time.Now().UTC(),
			PublishedAt: item.PublishedAt,
		})
		if admitErr != nil {
			admitErrs++
			lg.Warn("admit_failed",
				slog.String("op", op),
				slog.String("url", item.URL),
				slog.String("err", admitErr.Error()),
			)
			continue
		}

		switch res.Outcome {
		case models.AdmitCreated:
			counts.Created++
			s.publishAdmitted(ctx, res.ArticleID, src.ID, res.URLHash)
		case models.AdmitDuplicate:
			counts.Duplicate++
		}
	}

	// Попытка успешна, если сам скрейп прошёл; ошибки допуска отдельных
	// материалов не валят источник.
	s.finishAttempt(ctx, job.ID, src.ID, models.JobSuccess, counts, "")

	lg.Info("poll_done",
		slog.String("op", op),
		slog.Int("found", int(counts.Found)),
		slog.Int("created", int(counts.Created)),
		slog.Int("duplicate", int(counts.Duplicate)),
		slog.Int("admit_errors", admitErrs),
	)
}

// finishAttempt завершает попытку в журнале и доводит исход до монитора
// здоровья. Журнал сам монитор не дёргает — это обязанность поллера.
func (s *Service) finishAttempt(ctx context.Context, jobID, sourceID uuid.UUID, status models.JobStatus, counts models.JobCounts, errMsg string) {
	const op = "service.poller.finishAttempt"

	lg := log.From(ctx)

	if _, err := s.CompleteJob(ctx, jobID, status, counts, errMsg); err != nil {
		lg.Error("complete_job_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	if status == models.JobSuccess {
		if _, err := s.MarkPollSuccess(ctx, sourceID); err != nil {
			lg.Error("mark_success_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
		return
	}

	if _, err := s.MarkPollFailure(ctx, sourceID, errMsg); err != nil {
		lg.Error("mark_failure_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}

// publishAdmitted — best-effort событие для внешнего индексатора.
func (s *Service) publishAdmitted(ctx context.Context, articleID, sourceID uuid.UUID, urlHash string) {
	if s.events == nil {
		return
	}

	ev := events.ArticleAdmitted{
		ArticleID: articleID,
		SourceID:  sourceID,
		URLHash:   urlHash,
		FetchedAt: time.Now().UTC(),
	}

	if err := s.events.PublishAdmitted(ctx, ev); err != nil {
		log.From(ctx).Warn("publish_admitted_failed",
			slog.String("op", "service.poller.publishAdmitted"),
			slog.String("err", err.Error()),
		)
	}
}
