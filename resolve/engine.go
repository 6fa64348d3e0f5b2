package resolve

import (
	"log/slog"
	"reflect"

	"param-supplier/collection"
	"param-supplier/converter"
	"param-supplier/diagnostic"
	"param-supplier/editor"
	"param-supplier/fixture"
	"param-supplier/options"
)

// Engine resolves parameter values from fixture rows. It holds no per-resolution state and is
// safe for concurrent use once its registries are set up.
type Engine struct {
	editors    *editor.Registry
	converters *converter.Registry
	factories  *collection.Factories
	opts       options.Options
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(e *Engine)

// WithEditors sets the scalar coercion registry.
func WithEditors(r *editor.Registry) Option {
	return func(e *Engine) {
		e.editors = r
	}
}

// WithConverters sets the converter registry.
func WithConverters(r *converter.Registry) Option {
	return func(e *Engine) {
		e.converters = r
	}
}

// WithFactories sets the container factories of collection parameters.
func WithFactories(f *collection.Factories) Option {
	return func(e *Engine) {
		e.factories = f
	}
}

// WithOptions sets the delimiter, queue capacity, fallback rules and date layouts. Zero fields
// take their defaults.
func WithOptions(opts options.Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine. Registries not given are created with their defaults, owned by this
// engine alone.
func New(opts ...Option) *Engine {
	e := &Engine{opts: options.Default()}

	for _, opt := range opts {
		opt(e)
	}

	if e.opts.Delimiter == "" {
		e.opts.Delimiter = options.DefaultDelimiter
	}

	if e.opts.QueueCapacity <= 0 {
		e.opts.QueueCapacity = options.DefaultQueueCapacity
	}

	if e.opts.Fallback == 0 {
		e.opts.Fallback = options.FallbackAll
	}

	if e.editors == nil {
		e.editors = editor.New()
	}

	if e.converters == nil {
		e.converters = converter.New()
	}

	if e.factories == nil {
		e.factories = collection.NewFactories(e.opts.QueueCapacity)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

func (e *Engine) Editors() *editor.Registry        { return e.editors }
func (e *Engine) Converters() *converter.Registry  { return e.converters }
func (e *Engine) Factories() *collection.Factories { return e.factories }
func (e *Engine) Options() options.Options         { return e.opts }

// RegisterEditor adds a text coercion for values of type t.
func (e *Engine) RegisterEditor(t reflect.Type, fn editor.Func) {
	e.editors.Register(t, fn)
}

// RegisterConverter adds a row conversion for values of type t.
func (e *Engine) RegisterConverter(t reflect.Type, fn converter.Func) {
	e.converters.Register(t, fn)
}

// Result is a resolution together with the notes gathered while producing it.
type Result struct {
	Values      []any
	Diagnostics diagnostic.Diagnostics
}

// Resolve produces one value per row, in row order. Rows without a value for a scalar or
// collection element yield nil entries, so the result always has len(rows) entries.
func (e *Engine) Resolve(p Param, rows []fixture.Row) ([]any, error) {
	res, err := e.ResolveDetailed(p, rows)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}

// ResolveDetailed is Resolve plus diagnostics: absent fields with suggested names, fields that
// carried no value and the strategy used. On failure the diagnostics hold the error too.
func (e *Engine) ResolveDetailed(p Param, rows []fixture.Row) (*Result, error) {
	r := &resolution{Engine: e, p: p, rows: rows}

	values, err := r.run()
	if err != nil {
		e.logger.Debug("resolution failed", "type", p.Type, "name", p.Name, "error", err)
		r.fail(err)

		return &Result{Diagnostics: r.diags}, err
	}

	return &Result{Values: values, Diagnostics: r.diags}, nil
}

// Supply resolves a parameter from the rows of a test method.
func (e *Engine) Supply(set fixture.Set, method string, p Param) ([]any, error) {
	rows, err := rowsOf(set, method, p)
	if err != nil {
		return nil, err
	}

	values, err := e.Resolve(p, rows)
	if err != nil {
		return nil, inMethod(err, method)
	}

	return values, nil
}

// SupplyAll resolves every parameter of a test method and returns the argument lists of its
// invocations: one entry per row, holding one value per parameter.
func (e *Engine) SupplyAll(set fixture.Set, method string, params []Param) ([][]any, error) {
	rows, err := rowsOf(set, method, Param{})
	if err != nil {
		return nil, err
	}

	args := make([][]any, len(rows))
	for i := range args {
		args[i] = make([]any, len(params))
	}

	for j, p := range params {
		values, err := e.Resolve(p, rows)
		if err != nil {
			return nil, inMethod(err, method)
		}

		for i, v := range values {
			args[i][j] = v
		}
	}

	return args, nil
}

func rowsOf(set fixture.Set, method string, p Param) ([]fixture.Row, error) {
	if method == "" {
		return nil, &Error{Kind: ErrMissingData, Type: p.Type, Field: p.Name, Row: -1, Err: errNoMethod}
	}

	rows, ok := set.Rows(method)
	if !ok {
		return nil, &Error{Kind: ErrMissingData, Method: method, Type: p.Type, Field: p.Name, Row: -1, Err: errNoRows}
	}

	return rows, nil
}

func inMethod(err error, method string) error {
	re := locate(err, ErrUnresolvableType, nil, "", -1)
	re.Method = method

	return re
}
