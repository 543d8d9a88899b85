package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus — статус попытки скрейпа.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobSuccess JobStatus = "success"
	JobFailed  JobStatus = "failed"
	JobTimeout JobStatus = "timeout"
)

// Terminal сообщает, является ли статус терминальным.
func (s JobStatus) Terminal() bool {
	return s == JobSuccess || s == JobFailed || s == JobTimeout
}

// ScrapeJob — одна попытка опроса источника.
//
// Особенности:
//   - TaskID — внешний идентификатор задачи, глобально уникален
//     (идемпотентность ретраев на стороне планировщика);
//   - запись создаётся при старте попытки и терминально обновляется
//     ровно один раз (CompleteJob).
type ScrapeJob struct {
	ID       uuid.UUID
	SourceID uuid.UUID
	// TaskID — внешний идентификатор задачи. Уникален.
	TaskID string
	Status JobStatus

	// Счётчики результата.
	ArticlesFound     int32
	ArticlesCreated   int32
	ArticlesDuplicate int32

	StartedAt   time.Time
	CompletedAt *time.Time
	// DurationSeconds = completed_at - started_at; вычисляется при завершении.
	DurationSeconds *float64

	ErrorMessage string
}

// JobCounts — счётчики результата одной попытки.
type JobCounts struct {
	Found     int32
	Created   int32
	Duplicate int32
}
