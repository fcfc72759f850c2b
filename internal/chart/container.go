package chart

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

// ErrNoConfig is returned when chart output is requested without an active
// configuration.
var ErrNoConfig = errors.New("chart configuration missing: components must be used within a chart container")

// ErrInvalidID is returned for chart ids that cannot appear in an attribute
// selector.
var ErrInvalidID = errors.New("invalid chart id")

var (
	idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	idStrip   = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// ValidateID checks that id is usable as a chart id. The empty id is valid
// and stands for a generated one.
func ValidateID(id string) error {
	if id != "" && !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// sanitizeID drops every character that is not allowed in a chart id.
func sanitizeID(id string) string {
	return idStrip.ReplaceAllString(id, "")
}

// Container carries the active configuration of one chart instance to the
// stylesheet, tooltip and legend builders.
type Container struct {
	id        string
	config    *series.Config
	generator Generator
	numbers   NumberFormatter
}

// Option configures a Container.
type Option func(*Container)

// WithRegistry sets the themes the container's stylesheet is generated for.
func WithRegistry(reg *theme.Registry) Option {
	return func(c *Container) {
		c.generator.Registry = reg
	}
}

// WithNumberFormatter sets the formatter for tooltip values.
func WithNumberFormatter(f NumberFormatter) Option {
	return func(c *Container) {
		if f != nil {
			c.numbers = f
		}
	}
}

// Provide creates a container for cfg. The chart id is "chart-" followed by
// id, or by a generated unique id when id is empty. Characters rejected by
// ValidateID are dropped from id.
func Provide(id string, cfg *series.Config, opts ...Option) *Container {
	id = sanitizeID(id)
	if id == "" {
		id = newID()
	}

	c := &Container{
		id:      "chart-" + id,
		config:  cfg,
		numbers: groupingFormatter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newID() string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String())
}

// ID returns the chart id used in the data-chart attribute.
func (c *Container) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Use returns the active configuration or ErrNoConfig.
func (c *Container) Use() (*series.Config, error) {
	if c == nil || c.config == nil {
		return nil, ErrNoConfig
	}
	return c.config, nil
}

// Stylesheet returns the chart's generated stylesheet text. It reports
// false when there is nothing to emit.
func (c *Container) Stylesheet() (string, bool, error) {
	cfg, err := c.Use()
	if err != nil {
		return "", false, err
	}
	css, ok := c.generator.Generate(c.id, cfg)
	return css, ok, nil
}

// Resolve resolves item against the active configuration.
func (c *Container) Resolve(item *model.DataPoint, key string) (series.Descriptor, bool, error) {
	cfg, err := c.Use()
	if err != nil {
		return series.Descriptor{}, false, err
	}
	d, ok := ResolveConfigEntry(cfg, item, key)
	return d, ok, nil
}

// Tooltip assembles the tooltip for payload. A nil tooltip with a nil
// error means nothing is shown.
func (c *Container) Tooltip(opts TooltipOptions, payload []model.DataPoint) (*Tooltip, error) {
	cfg, err := c.Use()
	if err != nil {
		return nil, err
	}
	return BuildTooltip(cfg, c.numbers, opts, payload), nil
}

// Legend assembles the legend for payload. A nil legend with a nil error
// means nothing is shown.
func (c *Container) Legend(opts LegendOptions, payload []model.DataPoint) (*Legend, error) {
	cfg, err := c.Use()
	if err != nil {
		return nil, err
	}
	return BuildLegend(cfg, opts, payload), nil
}

type containerKey struct{}

// WithContainer returns a context carrying c.
func WithContainer(ctx context.Context, c *Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}

// FromContext returns the container carried by ctx, or ErrNoConfig when
// there is none or it has no configuration.
func FromContext(ctx context.Context) (*Container, error) {
	c, _ := ctx.Value(containerKey{}).(*Container)
	if _, err := c.Use(); err != nil {
		return nil, err
	}
	return c, nil
}
