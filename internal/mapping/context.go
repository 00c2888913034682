package mapping

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cms-mapper/internal/diagnostic"
)

// Context is the parameter bag threaded through one mapping operation.
// It is not safe for concurrent use.
type Context struct {
	registry *Registry
	culture  string
	segment  string
	included []string
	items    map[string]any
	diags    *diagnostic.Diagnostics
	logger   *zap.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithCulture sets the culture code.
func WithCulture(culture string) Option {
	return func(c *Context) {
		c.culture = culture
	}
}

// WithSegment sets the segment.
func WithSegment(segment string) Option {
	return func(c *Context) {
		c.segment = segment
	}
}

// WithIncludedProperties restricts property mapping to the given aliases.
// No aliases means every property is included.
func WithIncludedProperties(aliases ...string) Option {
	return func(c *Context) {
		c.included = append([]string(nil), aliases...)
	}
}

// WithItem stores a named value for the transforms.
func WithItem(key string, value any) Option {
	return func(c *Context) {
		c.items[key] = value
	}
}

// WithLogger sets the logger used for degraded output warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContext creates the root context of a mapping operation.
func (r *Registry) NewContext(opts ...Option) *Context {
	ctx := &Context{
		registry: r,
		items:    make(map[string]any),
		diags:    &diagnostic.Diagnostics{},
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// Registry returns the registry used for nested mapping calls.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Culture returns the current culture, or "" when none is set.
func (c *Context) Culture() string {
	return c.culture
}

// HasCulture reports whether a culture is set.
func (c *Context) HasCulture() bool {
	return c.culture != ""
}

// Segment returns the current segment, or "" when none is set.
func (c *Context) Segment() string {
	return c.segment
}

// RequireCulture returns the current culture or ErrMissingCulture naming what needed it.
func (c *Context) RequireCulture(what string) (string, error) {
	if c.culture == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingCulture, what)
	}

	return c.culture, nil
}

// IncludedProperties returns the include list, nil when every property is included.
func (c *Context) IncludedProperties() []string {
	return c.included
}

// Includes reports whether a property alias passes the include list.
func (c *Context) Includes(alias string) bool {
	if len(c.included) == 0 {
		return true
	}

	for _, a := range c.included {
		if strings.EqualFold(a, alias) {
			return true
		}
	}

	return false
}

// Item returns a named value supplied by the caller.
func (c *Context) Item(key string) (any, bool) {
	v, ok := c.items[key]
	return v, ok
}

// SetItem stores a named value visible to this context and every related one.
func (c *Context) SetItem(key string, value any) {
	c.items[key] = value
}

// ItemAs returns the named item when it is present and of type T.
func ItemAs[T any](c *Context, key string) (T, bool) {
	v, ok := c.items[key]
	if !ok {
		var zero T
		return zero, false
	}

	t, ok := v.(T)

	return t, ok
}

// Diagnostics returns the diagnostics collected so far.
func (c *Context) Diagnostics() *diagnostic.Diagnostics {
	return c.diags
}

// Logger returns the context logger.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// ForCulture returns a child context for another culture, keeping the segment.
func (c *Context) ForCulture(culture string) *Context {
	return c.ForVariant(culture, c.segment)
}

// ForVariant returns a child context for a culture and segment. Items,
// diagnostics and logger are shared with c.
func (c *Context) ForVariant(culture, segment string) *Context {
	child := *c
	child.culture = culture
	child.segment = segment

	return &child
}

// Warn records a degraded output case and logs it.
func (c *Context) Warn(code, message, pair, field string, suggestions ...string) {
	c.diags.AddWarning(code, message, pair, field, suggestions...)

	fields := []zap.Field{zap.String("code", code)}
	if pair != "" {
		fields = append(fields, zap.String("pair", pair))
	}

	if field != "" {
		fields = append(fields, zap.String("property", field))
	}

	if c.culture != "" {
		fields = append(fields, zap.String("culture", c.culture))
	}

	if len(suggestions) > 0 {
		fields = append(fields, zap.Strings("suggestions", suggestions))
	}

	c.logger.Warn(message, fields...)
}

// Info records an informational diagnostic.
func (c *Context) Info(code, message, pair, field string) {
	c.diags.AddInfo(code, message, pair, field)
	c.logger.Debug(message, zap.String("code", code), zap.String("pair", pair), zap.String("property", field))
}
