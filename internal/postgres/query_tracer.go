package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pedroramon/hotel-backend/internal/logger"
)

// QueryTracer wraps database operations with tracing and logging
type QueryTracer struct {
	logger    *logger.Logger
	query     string
	params    interface{}
	start     time.Time
	requestID string
}

// NewQueryTracer creates a new query tracer
func NewQueryTracer(logger *logger.Logger, query string, params interface{}, requestID string) *QueryTracer {
	return &QueryTracer{
		logger:    logger,
		query:     query,
		params:    params,
		start:     time.Now(),
		requestID: requestID,
	}
}

// Done logs the query completion. sql.ErrNoRows is an expected outcome of
// single row lookups and is not logged as a failure.
func (qt *QueryTracer) Done(err error) {
	duration := time.Since(qt.start)
	fields := []interface{}{
		"duration_ms", duration.Milliseconds(),
		"query", qt.query,
		"params", fmt.Sprintf("%+v", qt.params),
	}
	if qt.requestID != "" {
		fields = append(fields, "request_id", qt.requestID)
	}
	if err != nil && err != sql.ErrNoRows {
		fields = append(fields, "error", err.Error())
		qt.logger.Errorw("database query failed", fields...)
		return
	}
	qt.logger.Debugw("database query completed", fields...)
}

// TracedQuerier wraps a Querier with tracing
type TracedQuerier struct {
	Querier
	logger    *logger.Logger
	requestID string
}

// NewTracedQuerier creates a new traced querier
func NewTracedQuerier(q Querier, logger *logger.Logger, requestID string) *TracedQuerier {
	return &TracedQuerier{
		Querier:   q,
		logger:    logger,
		requestID: requestID,
	}
}

// ExecContext traces ExecContext calls
func (tq *TracedQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	tracer := NewQueryTracer(tq.logger, query, args, tq.requestID)
	result, err := tq.Querier.ExecContext(ctx, query, args...)
	tracer.Done(err)
	return result, err
}

// QueryContext traces QueryContext calls
func (tq *TracedQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	tracer := NewQueryTracer(tq.logger, query, args, tq.requestID)
	rows, err := tq.Querier.QueryContext(ctx, query, args...)
	tracer.Done(err)
	return rows, err
}

// GetContext traces GetContext calls
func (tq *TracedQuerier) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	tracer := NewQueryTracer(tq.logger, query, args, tq.requestID)
	err := tq.Querier.GetContext(ctx, dest, query, args...)
	tracer.Done(err)
	return err
}

// SelectContext traces SelectContext calls
func (tq *TracedQuerier) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	tracer := NewQueryTracer(tq.logger, query, args, tq.requestID)
	err := tq.Querier.SelectContext(ctx, dest, query, args...)
	tracer.Done(err)
	return err
}
