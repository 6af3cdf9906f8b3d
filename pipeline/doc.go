// Package pipeline provides a dependency-ordered task executor built on
// the dag package.
//
// Tasks are registered explicitly on a Pipeline value and wired to their
// predecessors at registration time; cycles are rejected eagerly, before
// any execution. Run computes the topological order once per call and
// executes tasks strictly one at a time, threading each task's output
// into its dependents and accumulating a results table keyed by the
// opaque Handle returned from Register.
//
//	p := pipeline.New()
//	load, _ := p.Register(pipeline.Source("load", loadFn))
//	evens, _ := p.Register(pipeline.TaskFunc("evens", filterFn), pipeline.DependsOn(load))
//	total, _ := p.Register(pipeline.TaskFunc("total", sumFn), pipeline.DependsOn(evens))
//	res, err := p.Run(ctx)
//	// res.Output(total) == 6
//
// Runs are repeatable: each call recomputes the order and produces an
// independent results table. Execution is fail-fast; a task error aborts
// the remainder of the schedule with the already-completed outputs left
// in the table.
//
// RunConcurrent schedules independent branches onto a bounded worker set
// without changing the scheduling contract; the serial Run remains the
// baseline behavior.
package pipeline
