// Package funcapp is the registration surface between adapted tools and
// the serverless host. An App collects tools, exposes the trigger bindings
// the host's registration call consumes, and provides the custom-handler
// HTTP glue through which the host delivers invocation payloads.
package funcapp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/loopwork-ai/mcpfunc/tool"
)

// App holds the tools registered for one function app. Register everything
// before serving; the App is not written to after that, so invocation takes
// no locks.
type App struct {
	logger *slog.Logger
	tools  []*tool.Tool
	byName map[string]*tool.Tool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by the App and its handler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// New creates an empty App.
func New(opts ...Option) *App {
	a := &App{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		byName: make(map[string]*tool.Tool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MCPTool adapts fn into a tool and registers it under its derived (or
// overridden) name. Registering two tools under one name is an error.
func (a *App) MCPTool(fn any, opts ...tool.Option) (*tool.Tool, error) {
	t, err := tool.New(fn, opts...)
	if err != nil {
		return nil, err
	}
	return t, a.Register(t)
}

// Register adds an already-built tool to the App.
func (a *App) Register(t *tool.Tool) error {
	if _, exists := a.byName[t.Name()]; exists {
		return fmt.Errorf("funcapp: tool %q already registered", t.Name())
	}
	a.byName[t.Name()] = t
	a.tools = append(a.tools, t)
	a.logger.Debug("registered tool", "tool", t.Name())
	return nil
}

// Tools returns the registered tools in registration order.
func (a *App) Tools() []*tool.Tool {
	return append([]*tool.Tool(nil), a.tools...)
}

// Tool looks up a registered tool by name.
func (a *App) Tool(name string) (*tool.Tool, bool) {
	t, ok := a.byName[name]
	return t, ok
}

// Bindings returns the trigger binding metadata for every registered tool,
// in registration order.
func (a *App) Bindings() ([]Binding, error) {
	bindings := make([]Binding, 0, len(a.tools))
	for _, t := range a.tools {
		b, err := NewBinding(t)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
