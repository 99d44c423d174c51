// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure LoggingRecordService implements gtfobins.RecordService.
var _ gtfobins.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   gtfobins.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next gtfobins.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// ListNames delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) ListNames(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list names",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListNames(ctx)
}

// FindRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecord(ctx context.Context, name string) (rec *gtfobins.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find record",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecord(ctx, name)
}

// Index delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) Index(ctx context.Context) (ix gtfobins.Index, err error) {
	defer func(begin time.Time) {
		s.logger.Info("build index",
			"records", len(ix),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Index(ctx)
}

// NamesWithCategory delegates to the wrapped service and logs the
// operation.
func (s *LoggingRecordService) NamesWithCategory(ctx context.Context, c gtfobins.Category) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("names with category",
			"category", string(c),
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.NamesWithCategory(ctx, c)
}
