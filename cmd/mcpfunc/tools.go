package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/loopwork-ai/mcpfunc/funcapp"
	"github.com/loopwork-ai/mcpfunc/internal/config"
	"github.com/loopwork-ai/mcpfunc/tool"
)

// addNumbers adds two integers and returns the sum as text.
func addNumbers(number1, number2 int) string {
	return strconv.Itoa(number1 + number2)
}

// greetUser greets a user by name. The tool.Context parameter receives the
// full invocation context and stays out of the tool's schema.
func greetUser(name string, tctx tool.Context) string {
	if args, ok := tctx.Arguments(); ok {
		slog.Debug("greet_user invoked", "arguments", len(args))
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// buildApp registers the sample tools, skipping any the config disables.
func buildApp(cfg *config.Config, logger *slog.Logger) (*funcapp.App, error) {
	app := funcapp.New(funcapp.WithLogger(logger))
	weather := newWeatherClient(cfg.Weather.Endpoint)

	samples := []struct {
		fn   any
		opts []tool.Option
	}{
		{
			fn: addNumbers,
			opts: []tool.Option{
				tool.WithDescription("Add two integers."),
				tool.WithParam("number1", "The first integer to add"),
				tool.WithParam("number2", "The second integer to add"),
			},
		},
		{
			fn: greetUser,
			opts: []tool.Option{
				tool.WithDescription("Greet a user by name."),
				tool.WithParam("name", "The name of the user to greet"),
			},
		},
		{
			fn: weather.Current,
			opts: []tool.Option{
				tool.WithName("weather"),
				tool.WithDescription("Get the weather for a city."),
				tool.WithParam("city", ""),
				tool.WithParam("state", ""),
			},
		},
	}

	for _, sample := range samples {
		t, err := tool.New(sample.fn, sample.opts...)
		if err != nil {
			return nil, err
		}
		if cfg.IsToolDisabled(t.Name()) {
			logger.Debug("tool disabled by config", "tool", t.Name())
			continue
		}
		if err := app.Register(t); err != nil {
			return nil, err
		}
	}

	return app, nil
}
