package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/validation"
)

// Definition is a declarative, YAML-defined pipeline description. It is
// construction-time configuration only; nothing about a built graph or a
// run is ever written back.
type Definition struct {
	// Name is the pipeline identifier.
	Name string `yaml:"name" validate:"required"`
	// Tasks defines the pipeline's task wiring.
	Tasks []TaskDef `yaml:"tasks" validate:"required,min=1,dive"`
}

// TaskDef wires one named task from a Registry into the pipeline.
type TaskDef struct {
	// Component is the registry lookup key for this task.
	Component string `yaml:"component" validate:"required"`
	// DependsOn lists task names this task depends on.
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// LoadDefinition reads and validates a pipeline definition from a YAML file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NotFound("pipeline definition", filepath.Base(path)).WithCause(err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.InvalidConfig(fmt.Sprintf("parsing %s", path)).WithCause(err)
	}
	if err := validation.ValidateStruct(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Resolve builds a Pipeline from a definition, looking up each component
// in the registry.
//
// Resolution is two-pass: every task is registered first, then edges are
// wired by re-registering each dependent with its dependency handles —
// re-registration of an existing name reuses the node, so only the edges
// are added. This lets a definition reference dependencies in any order.
func Resolve(def *Definition, registry *Registry, opts ...Option) (*Pipeline, error) {
	p := New(opts...)

	for _, td := range def.Tasks {
		task, ok := registry.Get(td.Component)
		if !ok {
			return nil, errors.NotFound("component", td.Component).
				WithDetail("pipeline", def.Name)
		}
		if _, err := p.Register(task); err != nil {
			return nil, err
		}
	}

	for _, td := range def.Tasks {
		if len(td.DependsOn) == 0 {
			continue
		}
		deps := make([]Handle, 0, len(td.DependsOn))
		for _, dep := range td.DependsOn {
			h, ok := p.Lookup(dep)
			if !ok {
				return nil, errors.UnknownTask(dep).WithDetail("pipeline", def.Name)
			}
			deps = append(deps, h)
		}
		task, _ := registry.Get(td.Component)
		if _, err := p.Register(task, DependsOn(deps...)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// LoadPipeline loads a definition from the first path that exists and
// resolves it against the registry.
func LoadPipeline(registry *Registry, paths ...string) (*Pipeline, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		def, err := LoadDefinition(path)
		if err != nil {
			return nil, err
		}
		return Resolve(def, registry)
	}
	return nil, errors.NotFound("pipeline definition", fmt.Sprintf("%v", paths))
}
