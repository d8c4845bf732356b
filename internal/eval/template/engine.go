package template

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aescanero/dago-node-render/internal/eval/cel"
	"github.com/aescanero/dago-node-render/pkg/mustache"
	"github.com/aescanero/dago-node-render/pkg/mustache/compiler"
	"github.com/aescanero/dago-node-render/pkg/mustache/format"
)

// Engine compiles, caches and renders Mustache templates
type Engine struct {
	cache map[string]*mustache.Template
	mu    sync.RWMutex

	helpers   map[string]mustache.Helper
	helpersMu sync.RWMutex

	conditions *cel.Evaluator
	formatter  mustache.Formatter
	observer   mustache.Observer
	logger     *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithFormatter sets the formatter of compiled templates (format.HTML by default)
func WithFormatter(f mustache.Formatter) Option {
	return func(e *Engine) {
		e.formatter = f
	}
}

// WithObserver sets the observer of compiled templates
func WithObserver(o mustache.Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// NewEngine creates a new template engine
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := &Engine{
		cache:      make(map[string]*mustache.Template),
		helpers:    make(map[string]mustache.Helper),
		conditions: cel.NewEvaluator(),
		formatter:  format.HTML,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(engine)
	}

	// Register built-in helpers
	engine.registerHelpers()

	return engine
}

// Render renders a template with the given data.
//
// Registered helpers sit in the outermost frame, below data, so data keys
// shadow helpers of the same name.
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	return tmpl.ExecObjects(e.helperFrame(), data), nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*mustache.Template, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	// Compile the template (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := compiler.Compile(templateStr, e.templateOptions()...)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

func (e *Engine) templateOptions() []mustache.Option {
	opts := []mustache.Option{mustache.WithFormatter(e.formatter)}
	if e.observer != nil {
		opts = append(opts, mustache.WithObserver(e.observer))
	}
	return opts
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := compiler.Compile(templateStr)
	return err
}

// ClearCache clears the compiled template cache
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*mustache.Template)
}

// RegisterHelper makes h available to every template under name
func (e *Engine) RegisterHelper(name string, h mustache.Helper) {
	e.helpersMu.Lock()
	defer e.helpersMu.Unlock()
	e.helpers[name] = h
}

// RegisterCondition registers a helper that renders its section only when
// the CEL expression evaluates to true
func (e *Engine) RegisterCondition(name, expression string) error {
	if err := e.conditions.ValidateExpression(expression); err != nil {
		return fmt.Errorf("invalid condition %q: %w", name, err)
	}
	e.RegisterHelper(name, e.conditionHelper(name, expression))
	return nil
}

func (e *Engine) helperFrame() map[string]interface{} {
	e.helpersMu.RLock()
	defer e.helpersMu.RUnlock()

	frame := make(map[string]interface{}, len(e.helpers))
	for name, h := range e.helpers {
		frame[name] = h
	}
	return frame
}

func (e *Engine) conditionHelper(name, expression string) mustache.Helper {
	return mustache.HelperFunc(func(s *mustache.Section) string {
		scope, _ := s.Context().Top()
		data, _ := s.Context().Frame(1)
		vars := map[string]interface{}{
			"scope": scope,
			"data":  data,
		}

		result, err := e.conditions.Evaluate(context.Background(), expression, vars)
		if err != nil {
			e.logger.Warn("condition evaluation error",
				zap.String("condition", name),
				zap.String("expression", expression),
				zap.Error(err),
			)
			return ""
		}

		matched, ok := result.(bool)
		if !ok {
			e.logger.Warn("condition did not return boolean",
				zap.String("condition", name),
				zap.Any("result", result),
			)
			return ""
		}

		if !matched {
			return ""
		}
		return s.Render()
	})
}

// registerHelpers registers the built-in section helpers
func (e *Engine) registerHelpers() {
	// uppercase helper
	e.RegisterHelper("uppercase", mustache.HelperFunc(func(s *mustache.Section) string {
		return strings.ToUpper(s.Render())
	}))

	// lowercase helper
	e.RegisterHelper("lowercase", mustache.HelperFunc(func(s *mustache.Section) string {
		return strings.ToLower(s.Render())
	}))

	// trim helper
	e.RegisterHelper("trim", mustache.HelperFunc(func(s *mustache.Section) string {
		return strings.TrimSpace(s.Render())
	}))

	// verbatim helper - outputs its inner template text untouched
	e.RegisterHelper("verbatim", mustache.HelperFunc(func(s *mustache.Section) string {
		return s.InnerTemplateString()
	}))
}
