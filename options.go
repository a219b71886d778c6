package mmd

import (
	"github.com/rs/zerolog"

	"github.com/riverfjs/mmd-go/internal/parser"
)

// ConvertOptions holds options for parsing and rendering.
type ConvertOptions struct {
	Config *RenderConfig
	Logger *zerolog.Logger

	strict    *bool
	highlight *bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithLogger sets the logger used instead of the package Logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *ConvertOptions) {
		opts.Logger = &logger
	}
}

// WithStrict overrides RenderConfig.Strict.
func WithStrict(strict bool) Option {
	return func(opts *ConvertOptions) {
		opts.strict = &strict
	}
}

// WithHighlight overrides RenderConfig.Highlight.
func WithHighlight(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.highlight = &enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}

// config 返回应用了覆盖项的配置副本，共享的默认配置不会被修改
func (o *ConvertOptions) config() *RenderConfig {
	c := *o.Config
	if o.strict != nil {
		c.Strict = *o.strict
	}
	if o.highlight != nil {
		c.Highlight = *o.highlight
	}
	return &c
}

func (o *ConvertOptions) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return Logger
}

func (o *ConvertOptions) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithStrict(o.config().Strict),
		parser.WithLogger(o.logger()),
	}
}
