// Package config loads graph dashboard descriptions from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-graph/sample"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Panel kinds.
const (
	KindQuadrant = "quadrant"
	KindLine     = "line"
)

// Panel sources.
const (
	SourceWave   = "wave"
	SourceSeries = "series"
)

// Layouts.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
	Grid       = "grid"
)

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

// UnmarshalYAML parses strings such as "50ms".
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config describes a dashboard.
type Config struct {
	Title    string   `yaml:"title"`
	Tick     Duration `yaml:"tick"`
	Layout   string   `yaml:"layout"`
	Columns  int      `yaml:"columns"`
	Log      string   `yaml:"log"`
	LogLevel string   `yaml:"log_level"`
	Panels   []Panel  `yaml:"panels"`
}

// Panel describes one graph.
type Panel struct {
	Title  string  `yaml:"title"`
	Kind   string  `yaml:"kind"`
	Source string  `yaml:"source"`
	Wave   string  `yaml:"wave"`
	Period float64 `yaml:"period"`
	Speed  float64 `yaml:"speed"`
	Stroke *uint   `yaml:"stroke"`
	Fill   bool    `yaml:"fill"`
	Glyph  string  `yaml:"glyph"`
}

// Default returns the built-in dashboard: one panel of each kind.
func Default() *Config {
	cfg := &Config{
		Title: "signals",
		Panels: []Panel{
			{Title: "area", Kind: KindQuadrant, Wave: "sine", Period: 24, Speed: 0.05},
			{Title: "bars", Kind: KindLine, Wave: "triangle", Period: 16, Speed: 0.03, Stroke: strokeOf(2), Glyph: "#"},
			{Title: "history", Kind: KindLine, Source: SourceSeries, Wave: "sine", Period: 40, Fill: true},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes, fills defaults, and validates data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Tick == 0 {
		c.Tick = Duration(100 * time.Millisecond)
	}
	if c.Layout == "" {
		c.Layout = Vertical
	}
	if c.Columns == 0 {
		c.Columns = 2
	}
	for i := range c.Panels {
		p := &c.Panels[i]
		if p.Kind == "" {
			p.Kind = KindQuadrant
		}
		if p.Source == "" {
			p.Source = SourceWave
		}
		if p.Wave == "" {
			p.Wave = sample.Sine.String()
		}
		if p.Period == 0 {
			p.Period = 24
		}
		if p.Stroke == nil && !p.Fill {
			p.Stroke = strokeOf(1)
		}
		if p.Glyph == "" {
			p.Glyph = "."
		}
	}
}

// Validate reports the first problem found.
func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive", ErrInvalid)
	}
	switch c.Layout {
	case Vertical, Horizontal, Grid:
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalid, c.Layout)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1", ErrInvalid)
	}
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
		}
	}
	if len(c.Panels) == 0 {
		return fmt.Errorf("%w: no panels", ErrInvalid)
	}
	for i, p := range c.Panels {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: panel %d (%s): %v", ErrInvalid, i, p.Title, err)
		}
	}
	return nil
}

func (p Panel) validate() error {
	switch p.Kind {
	case KindQuadrant, KindLine:
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	switch p.Source {
	case SourceWave, SourceSeries:
	default:
		return fmt.Errorf("unknown source %q", p.Source)
	}
	if _, err := sample.ParseShape(p.Wave); err != nil {
		return err
	}
	if p.Period < 1 {
		return fmt.Errorf("period %v is below 1", p.Period)
	}
	if p.Kind == KindLine {
		if _, err := p.GlyphRune(); err != nil {
			return err
		}
	}
	return nil
}

func strokeOf(n uint) *uint {
	return &n
}

// StrokeWidth returns the line stroke. An explicit zero draws nothing.
func (p Panel) StrokeWidth() uint {
	if p.Stroke == nil {
		return 0
	}
	return *p.Stroke
}

// Shape returns the parsed wave shape.
func (p Panel) Shape() sample.Shape {
	shape, _ := sample.ParseShape(p.Wave)
	return shape
}

// GlyphRune returns the line glyph, which must be one rune one cell wide.
func (p Panel) GlyphRune() (rune, error) {
	if utf8.RuneCountInString(p.Glyph) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single character", p.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(p.Glyph)
	if runewidth.RuneWidth(r) != 1 {
		return 0, fmt.Errorf("glyph %q must be one cell wide", p.Glyph)
	}
	return r, nil
}

// TickInterval returns the tick as a time.Duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Tick)
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if c.LogLevel != "" {
		_ = level.UnmarshalText([]byte(c.LogLevel))
	}
	return level
}
