package pipeline

import (
	"sync"

	"github.com/kbukum/dagkit/dag"
	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/logger"
)

// Handle is the opaque identity of a registered task. The zero Handle is
// invalid; handles are only meaningful on the pipeline that issued them.
type Handle struct {
	id int // 1-based arena index
}

// Valid reports whether h refers to a registered task.
func (h Handle) Valid() bool { return h.id > 0 }

// MergePolicy decides what a task with more than one predecessor receives
// as its input.
type MergePolicy int

const (
	// LastWins passes the output of the predecessor whose edge was wired
	// last. Deterministic for a fixed registration order; all other
	// predecessor outputs are dropped.
	LastWins MergePolicy = iota
	// FanIn passes the outputs of all predecessors as a []any in edge
	// insertion order.
	FanIn
)

// Pipeline owns a dag.Graph and an arena of registered tasks.
//
// Registration is a build phase: once Run has been called the pipeline is
// sealed and further registration fails with PIPELINE_SEALED.
type Pipeline struct {
	mu     sync.Mutex
	graph  *dag.Graph
	tasks  []Task // arena; Handle.id - 1 indexes it
	byName map[string]Handle
	policy MergePolicy
	sealed bool
	log    *logger.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMergePolicy sets the multi-predecessor input policy.
func WithMergePolicy(policy MergePolicy) Option {
	return func(p *Pipeline) { p.policy = policy }
}

// WithLogger sets the logger used for run progress.
func WithLogger(log *logger.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		graph:  dag.NewGraph(),
		byName: make(map[string]Handle),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.GetGlobalLogger().WithComponent("pipeline")
	}
	return p
}

// RegisterOption configures a single registration.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	deps []Handle
}

// DependsOn wires the task as a successor of the given predecessors. Each
// predecessor adds one directed edge, checked for cycles immediately.
func DependsOn(deps ...Handle) RegisterOption {
	return func(rc *registerConfig) { rc.deps = append(rc.deps, deps...) }
}

// Register adds task as a node and wires its declared predecessors.
//
// Registration is eager: the cycle check runs per edge at call time and a
// failure aborts the registration with the cycle error. Re-registering
// the same Task value under its name is a no-op for the task body — the
// existing handle is returned, existing edges are kept, and any new
// DependsOn edges are wired. Re-registering a different task body under
// an existing name fails with DUPLICATE_TASK.
func (p *Pipeline) Register(task Task, opts ...RegisterOption) (Handle, error) {
	var rc registerConfig
	for _, opt := range opts {
		opt(&rc)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if task == nil {
		return Handle{}, errors.InvalidInput("task", "task must not be nil")
	}
	name := task.Name()
	if name == "" {
		return Handle{}, errors.InvalidInput("task", "task name must not be empty")
	}
	if p.sealed {
		return Handle{}, errors.PipelineSealed(name)
	}

	for _, dep := range rc.deps {
		if dep.id < 1 || dep.id > len(p.tasks) {
			return Handle{}, errors.UnknownTask(name).
				WithDetail("reason", "depends_on handle was never registered")
		}
	}

	h, exists := p.byName[name]
	if exists {
		if p.tasks[h.id-1] != task {
			return Handle{}, errors.DuplicateTask(name)
		}
	} else {
		p.tasks = append(p.tasks, task)
		h = Handle{id: len(p.tasks)}
		p.byName[name] = h
		p.graph.AddNode(name)
	}

	for _, dep := range rc.deps {
		if err := p.graph.AddEdge(p.tasks[dep.id-1].Name(), name); err != nil {
			return Handle{}, err
		}
	}
	return h, nil
}

// Lookup returns the handle registered under name.
func (p *Pipeline) Lookup(name string) (Handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.byName[name]
	return h, ok
}

// Len returns the number of registered tasks.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// Graph returns a snapshot of the task graph for inspection. Mutating
// the snapshot does not affect the pipeline.
func (p *Pipeline) Graph() *dag.Graph {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.graph.Clone()
}

func (p *Pipeline) task(name string) Task {
	return p.tasks[p.byName[name].id-1]
}

// input resolves the value a task receives, from the outputs recorded so
// far and the pipeline's merge policy.
func (p *Pipeline) input(name string, outputs map[string]any) any {
	preds := p.graph.Predecessors(name)
	switch {
	case len(preds) == 0:
		return nil
	case len(preds) == 1 || p.policy == LastWins:
		return outputs[preds[len(preds)-1]]
	default:
		all := make([]any, len(preds))
		for i, pred := range preds {
			all[i] = outputs[pred]
		}
		return all
	}
}
