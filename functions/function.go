// Package functions implements the validator functions rules apply to the
// nodes their selectors match.
//
// A Function is prepared once per rule with that rule's options. Preparation
// validates the options against the function's JSON Schema and decodes them
// into a typed struct, so malformed configuration is rejected when rules are
// loaded rather than when they run. Prepared functions are pure: the same
// target and context always produce the same results.
package functions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"gopkg.in/yaml.v3"
)

// Context describes where a function is being applied.
type Context struct {
	// Path is the document path of the target.
	Path []string
	// Document is the document being linted. It may be nil in tests.
	Document *document.Document
	// Rule is the ID of the rule applying the function.
	Rule string
}

// Result is a single failure reported by a function.
type Result struct {
	Message string
	// Path overrides Context.Path when set.
	Path []string
}

// Function is a named validator.
type Function interface {
	Name() string
	// Prepare validates options and returns a ready to run validator.
	Prepare(options map[string]any) (Prepared, error)
}

// Prepared is a function bound to validated options.
type Prepared interface {
	// Run applies the function to target. target is nil when the selected
	// field does not exist.
	Run(target *yaml.Node, fctx *Context) []Result
}

// Func implements Function for a typed options struct O.
type Func[O any] struct {
	name          string
	optionsSchema string
	prepare       func(opts *O) error
	run           func(target *yaml.Node, opts *O, fctx *Context) []Result

	validator func() (*optionsValidator, error)
}

var _ Function = (*Func[struct{}])(nil)

// New creates a function. optionsSchema is the JSON Schema its options must
// satisfy; an empty schema means the function accepts no options.
func New[O any](name, optionsSchema string, run func(target *yaml.Node, opts *O, fctx *Context) []Result) *Func[O] {
	if optionsSchema == "" {
		optionsSchema = noOptionsSchema
	}
	f := &Func[O]{
		name:          name,
		optionsSchema: optionsSchema,
		run:           run,
	}
	f.validator = sync.OnceValues(func() (*optionsValidator, error) {
		return compileOptionsSchema(f.name, f.optionsSchema)
	})
	return f
}

// WithPrepare registers a hook that runs after options are decoded, for
// checks a schema can't express or for precomputing state.
func (f *Func[O]) WithPrepare(prepare func(opts *O) error) *Func[O] {
	f.prepare = prepare
	return f
}

func (f *Func[O]) Name() string { return f.name }

// OptionsSchema returns the JSON Schema for the function's options.
func (f *Func[O]) OptionsSchema() string { return f.optionsSchema }

func (f *Func[O]) Prepare(options map[string]any) (Prepared, error) {
	v, err := f.validator()
	if err != nil {
		return nil, err
	}

	opts := new(O)
	if err := v.decode(options, opts); err != nil {
		return nil, err
	}

	if f.prepare != nil {
		if err := f.prepare(opts); err != nil {
			return nil, optionsError(f.name, err.Error())
		}
	}

	return &prepared[O]{opts: opts, run: f.run}, nil
}

type prepared[O any] struct {
	opts *O
	run  func(target *yaml.Node, opts *O, fctx *Context) []Result
}

func (p *prepared[O]) Run(target *yaml.Node, fctx *Context) []Result {
	if fctx == nil {
		fctx = &Context{}
	}
	return p.run(target, p.opts, fctx)
}

// Registry maps function names to functions.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]Function
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]Function)}
}

// Register adds functions. Names must be unique.
func (r *Registry) Register(fns ...Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fn := range fns {
		if _, exists := r.functions[fn.Name()]; exists {
			return fmt.Errorf("function %q already registered", fn.Name())
		}
		r.functions[fn.Name()] = fn
	}
	return nil
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.functions[name]
	return fn, ok
}

// Names returns the registered function names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Custom lists the functions that are not part of the Spectral core set.
// Rulesets exported for Spectral must declare these.
var Custom = []string{
	NameNoMultiple4xxStatusCodes,
	NameNoMultiple5xxStatusCodes,
	NamePropertyType,
}

// Builtins returns a registry holding every function in this package.
func Builtins() *Registry {
	r := NewRegistry()
	_ = r.Register(
		Truthy,
		Falsy,
		Defined,
		Undefined,
		Pattern,
		Enumeration,
		Length,
		Schema,
		NoMultiple4xxStatusCodes,
		NoMultiple5xxStatusCodes,
		PropertyType,
	)
	return r
}
