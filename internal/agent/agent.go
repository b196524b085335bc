// Package agent implements the question-answering pipeline: natural
// language question to SQL, execution against the sample database, and a
// synthesized natural-language answer.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MalleGowthami/IntelliSQL/internal/history"
	"github.com/MalleGowthami/IntelliSQL/internal/metrics"
	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

// Generator produces text for a prompt. Satisfied by *llm.Model; stubbed
// in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Executor runs read-only statements and introspects the schema.
// Satisfied by *db.Store.
type Executor interface {
	DescribeSchema(ctx context.Context) (models.Schema, error)
	Execute(ctx context.Context, statement string) (models.QueryResult, error)
}

// Agent orchestrates translate, execute, and synthesize sequentially.
// Each Ask call is synchronous and blocking; retry exists only inside the
// language-model call.
type Agent struct {
	model     Generator
	store     Executor
	log       *history.Log
	collector *metrics.Collector
	logger    *slog.Logger
}

// New creates the pipeline agent. The history log and metrics collector
// are optional.
func New(model Generator, store Executor, log *history.Log, collector *metrics.Collector, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		model:     model,
		store:     store,
		log:       log,
		collector: collector,
		logger:    logger,
	}
}

// Translate builds the SQL generation prompt from the live schema and the
// question, invokes the model, and sanitizes the response into a single
// statement. SQL validity is discovered only at execution time.
func (a *Agent) Translate(ctx context.Context, question string) (string, error) {
	schema, err := a.store.DescribeSchema(ctx)
	if err != nil {
		return "", fmt.Errorf("describe schema: %w", err)
	}

	prompt := fmt.Sprintf(sqlGenerationPrompt, schema.Render(), question)

	start := time.Now()
	response, err := a.model.Generate(ctx, prompt)
	a.record(metrics.OpTranslate, start)
	if err != nil {
		return "", fmt.Errorf("generate sql: %w", err)
	}

	return stripFences(response), nil
}

// Synthesize builds the answer prompt from the question, the executed
// statement, and the (truncated) result set, and returns the model's
// trimmed prose verbatim.
func (a *Agent) Synthesize(ctx context.Context, question, statement string, columns []string, rows [][]any) (string, error) {
	prompt := fmt.Sprintf(answerGenerationPrompt,
		question, statement, renderRows(rows), strings.Join(columns, ", "))

	start := time.Now()
	response, err := a.model.Generate(ctx, prompt)
	a.record(metrics.OpSynthesize, start)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// Ask runs the end-to-end pipeline for one question. Any stage failure
// short-circuits the rest and populates the record's Err with the failure
// message; fields produced by completed stages are retained for display.
// The returned record never has both Answer and Err set.
func (a *Agent) Ask(ctx context.Context, question string) models.AnswerRecord {
	record := models.NewAnswerRecord(question)
	start := time.Now()
	defer func() {
		record.Elapsed = time.Since(start)
		a.record(metrics.OpPipeline, start)
		if a.log != nil {
			a.log.Append(record)
		}
	}()

	a.logger.Info("answering question", "question", question)

	statement, err := a.Translate(ctx, question)
	if err != nil {
		record.Err = err.Error()
		return record
	}
	record.Statement = statement

	execStart := time.Now()
	result, err := a.store.Execute(ctx, statement)
	a.record(metrics.OpExecute, execStart)
	if err != nil {
		record.Err = err.Error()
		return record
	}
	record.Columns = result.Columns
	record.Rows = result.Rows

	answer, err := a.Synthesize(ctx, question, statement, result.Columns, result.Rows)
	if err != nil {
		record.Err = err.Error()
		return record
	}
	record.Answer = answer

	a.logger.Info("question answered", "rows", len(record.Rows), "elapsed", time.Since(start))
	return record
}

func (a *Agent) record(op string, start time.Time) {
	if a.collector != nil {
		a.collector.RecordTiming(op, time.Since(start))
	}
}
