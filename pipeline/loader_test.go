package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kbukum/dagkit/errors"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing definition: %v", err)
	}
	return path
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.Add(Source("load", func(_ context.Context) (any, error) {
		return []int{1, 2, 3, 4}, nil
	}))
	r.Add(Typed("evens", func(_ context.Context, nums []int) ([]int, error) {
		var out []int
		for _, n := range nums {
			if n%2 == 0 {
				out = append(out, n)
			}
		}
		return out, nil
	}))
	r.Add(Typed("total", func(_ context.Context, nums []int) (int, error) {
		sum := 0
		for _, n := range nums {
			sum += n
		}
		return sum, nil
	}))
	return r
}

func TestLoadDefinition(t *testing.T) {
	path := writeDefinition(t, `
name: wordfreq
tasks:
  - component: load
  - component: evens
    depends_on: [load]
  - component: total
    depends_on: [evens]
`)

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	if def.Name != "wordfreq" {
		t.Errorf("Name = %q, want wordfreq", def.Name)
	}
	if len(def.Tasks) != 3 {
		t.Fatalf("len(Tasks) = %d, want 3", len(def.Tasks))
	}
	if !reflect.DeepEqual(def.Tasks[2].DependsOn, []string{"evens"}) {
		t.Errorf("Tasks[2].DependsOn = %v, want [evens]", def.Tasks[2].DependsOn)
	}
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestLoadDefinitionInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "tasks:\n  - component: load\n"},
		{"no tasks", "name: empty\n"},
		{"task without component", "name: p\ntasks:\n  - depends_on: [x]\n"},
		{"malformed yaml", "name: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, tt.content)
			if _, err := LoadDefinition(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestResolveAndRun(t *testing.T) {
	path := writeDefinition(t, `
name: wordfreq
tasks:
  - component: load
  - component: evens
    depends_on: [load]
  - component: total
    depends_on: [evens]
`)

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	p, err := Resolve(def, testRegistry())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	total, _ := p.Lookup("total")
	if out, _ := res.Output(total); out != 6 {
		t.Errorf("total = %v, want 6", out)
	}
}

func TestResolveForwardReference(t *testing.T) {
	// Dependencies may appear later in the file than their dependents.
	def := &Definition{
		Name: "backwards",
		Tasks: []TaskDef{
			{Component: "total", DependsOn: []string{"evens"}},
			{Component: "evens", DependsOn: []string{"load"}},
			{Component: "load"},
		},
	}

	p, err := Resolve(def, testRegistry())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	total, _ := p.Lookup("total")
	if out, _ := res.Output(total); out != 6 {
		t.Errorf("total = %v, want 6", out)
	}
}

func TestResolveUnknownComponent(t *testing.T) {
	def := &Definition{
		Name:  "broken",
		Tasks: []TaskDef{{Component: "missing"}},
	}

	_, err := Resolve(def, testRegistry())
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestResolveUnknownDependency(t *testing.T) {
	def := &Definition{
		Name:  "broken",
		Tasks: []TaskDef{{Component: "load", DependsOn: []string{"ghost"}}},
	}

	_, err := Resolve(def, testRegistry())
	if !errors.IsCode(err, errors.ErrCodeUnknownTask) {
		t.Errorf("error = %v, want UNKNOWN_TASK", err)
	}
}

func TestResolveCyclicDefinition(t *testing.T) {
	def := &Definition{
		Name: "cyclic",
		Tasks: []TaskDef{
			{Component: "load", DependsOn: []string{"evens"}},
			{Component: "evens", DependsOn: []string{"load"}},
		},
	}

	_, err := Resolve(def, testRegistry())
	if !errors.IsCode(err, errors.ErrCodeCycleDetected) {
		t.Errorf("error = %v, want CYCLE_DETECTED", err)
	}
}

func TestLoadPipelineFallback(t *testing.T) {
	path := writeDefinition(t, "name: p\ntasks:\n  - component: load\n")

	p, err := LoadPipeline(testRegistry(), filepath.Join(t.TempDir(), "absent.yml"), path)
	if err != nil {
		t.Fatalf("LoadPipeline() error = %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestLoadPipelineNoPaths(t *testing.T) {
	_, err := LoadPipeline(testRegistry(), filepath.Join(t.TempDir(), "absent.yml"))
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestRegistry(t *testing.T) {
	r := testRegistry()

	if _, ok := r.Get("load"); !ok {
		t.Error("Get(load) should succeed")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
	want := []string{"evens", "load", "total"}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
