package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/logger"
)

// Run executes every registered task in topological order, one at a time.
//
// The order is recomputed on every call; the graph itself is never
// mutated by a run. On a task failure Run aborts immediately and returns
// the partial Result together with a TASK_FAILED error wrapping the
// task's error. There is no retry and no rollback.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.seal()

	start := time.Now()
	res := &Result{
		RunID:   uuid.NewString(),
		Outputs: make(map[Handle]any, len(p.tasks)),
	}
	outputs := make(map[string]any, len(p.tasks))

	// Registration already rejected every cycle, so the order is complete.
	order := p.graph.TopologicalSort()
	p.log.Debug("run started", logger.Fields(
		logger.FieldRunID, res.RunID,
		"tasks", len(order),
	))

	for i, name := range order {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		tr := p.runTask(ctx, name, p.input(name, outputs))
		res.Tasks = append(res.Tasks, tr)

		if tr.Error != nil {
			res.skip(order[i+1:])
			res.Duration = time.Since(start)
			p.log.Error("run aborted", logger.Fields(
				logger.FieldRunID, res.RunID,
				logger.FieldTask, name,
				logger.FieldError, tr.Error.Error(),
			))
			return res, errors.TaskFailed(name, tr.Error)
		}

		outputs[name] = tr.Output
		res.Outputs[p.byName[name]] = tr.Output
	}

	res.Duration = time.Since(start)
	p.log.Info("run completed", logger.Fields(
		logger.FieldRunID, res.RunID,
		logger.FieldDuration, res.Duration.Milliseconds(),
	))
	return res, nil
}

// RunConcurrent executes the pipeline with independent branches scheduled
// onto at most maxParallel workers (0 = one worker per ready task). Tasks
// within one dependency level share no edges, so they only read outputs
// from earlier levels. Failure aborts before the next level starts; tasks
// of the failing level all finish first.
//
// The scheduling contract is unchanged from Run: same inputs, same
// outputs, same fail-fast error. Only the interleaving of independent
// tasks differs.
func (p *Pipeline) RunConcurrent(ctx context.Context, maxParallel int) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.seal()

	start := time.Now()
	res := &Result{
		RunID:   uuid.NewString(),
		Outputs: make(map[Handle]any, len(p.tasks)),
	}
	outputs := make(map[string]any, len(p.tasks))

	levels, err := p.graph.Levels()
	if err != nil {
		return nil, err
	}

	for li, level := range levels {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		results := make([]TaskResult, len(level))
		var wg sync.WaitGroup
		sem := make(chan struct{}, concurrency(maxParallel, len(level)))

		for i, name := range level {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				results[i] = p.runTask(ctx, name, p.input(name, outputs))
			}(i, name)
		}
		wg.Wait()

		var failed *TaskResult
		for i := range results {
			res.Tasks = append(res.Tasks, results[i])
			if results[i].Error != nil {
				if failed == nil {
					failed = &results[i]
				}
				continue
			}
			outputs[results[i].Name] = results[i].Output
			res.Outputs[p.byName[results[i].Name]] = results[i].Output
		}
		if failed != nil {
			for _, later := range levels[li+1:] {
				res.skip(later)
			}
			res.Duration = time.Since(start)
			return res, errors.TaskFailed(failed.Name, failed.Error)
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (p *Pipeline) runTask(ctx context.Context, name string, input any) TaskResult {
	task := p.task(name)
	t0 := time.Now()
	out, err := task.Run(ctx, input)
	d := time.Since(t0)

	if err != nil {
		return TaskResult{Name: name, Status: StatusFailed, Duration: d, Error: err}
	}
	return TaskResult{Name: name, Status: StatusCompleted, Duration: d, Output: out}
}

func (p *Pipeline) seal() {
	p.mu.Lock()
	p.sealed = true
	p.mu.Unlock()
}

func concurrency(maxParallel, levelSize int) int {
	if maxParallel <= 0 || maxParallel > levelSize {
		return levelSize
	}
	return maxParallel
}
