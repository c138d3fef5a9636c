package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/psjs/jointstate"
)

var (
	// ErrDecode wraps YAML/TOML syntax or type errors.
	ErrDecode = errors.New("config: decode failed")

	// ErrUnknownFormat is returned for formats other than YAML and TOML.
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrParamsAmbiguous is returned when both or neither of params and
	// log_params are set.
	ErrParamsAmbiguous = errors.New("config: exactly one of params and log_params is required")

	// ErrNonPositiveParam is returned for natural-scale params <= 0.
	ErrNonPositiveParam = errors.New("config: natural-scale params must be > 0")

	// ErrDuplicateForce is returned when a force index appears twice.
	ErrDuplicateForce = errors.New("config: duplicate force index")
)

// Format selects the document syntax.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Force pins one entry of the combined log-scale vector.
type Force struct {
	Index int     `yaml:"index" toml:"index"`
	Value float64 `yaml:"value" toml:"value"`
}

// Model is the declarative form of a jointstate.Model.
type Model struct {
	PointMutation string    `yaml:"point_mutation" toml:"point_mutation"`
	IGC           string    `yaml:"igc" toml:"igc"`
	Params        []float64 `yaml:"params,omitempty" toml:"params,omitempty"`
	LogParams     []float64 `yaml:"log_params,omitempty" toml:"log_params,omitempty"`
	Force         []Force   `yaml:"force,omitempty" toml:"force,omitempty"`
}

// Decode reads a Model in the given format.
func Decode(r io.Reader, format Format) (Model, error) {
	var cfg Model
	switch Format(strings.ToLower(string(format))) {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Model{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
	case TOML:
		meta, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return Model{}, fmt.Errorf("%w: toml: %v", ErrDecode, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Model{}, fmt.Errorf("%w: toml: unknown keys %v", ErrDecode, undecoded)
		}
	default:
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return cfg, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, format Format) (Model, error) {
	return Decode(bytes.NewReader(data), format)
}

// Vector returns the combined log-scale parameter vector.
func (c Model) Vector() ([]float64, error) {
	switch {
	case len(c.Params) > 0 && len(c.LogParams) == 0:
		x := make([]float64, len(c.Params))
		for i, v := range c.Params {
			if !(v > 0) {
				return nil, fmt.Errorf("params[%d]=%g: %w", i, v, ErrNonPositiveParam)
			}
			x[i] = math.Log(v)
		}
		return x, nil
	case len(c.LogParams) > 0 && len(c.Params) == 0:
		return slices.Clone(c.LogParams), nil
	default:
		return nil, ErrParamsAmbiguous
	}
}

// ForceMap converts the force list into a jointstate.ForceMap (nil when empty).
func (c Model) ForceMap() (jointstate.ForceMap, error) {
	if len(c.Force) == 0 {
		return nil, nil
	}
	out := make(jointstate.ForceMap, len(c.Force))
	for _, f := range c.Force {
		if _, dup := out[f.Index]; dup {
			return nil, fmt.Errorf("force index %d: %w", f.Index, ErrDuplicateForce)
		}
		out[f.Index] = f.Value
	}

	return out, nil
}

// Build constructs the jointstate.Model described by c.
// Model-name and length errors surface as jointstate.ConfigError.
func (c Model) Build(logger zerolog.Logger) (*jointstate.Model, error) {
	x, err := c.Vector()
	if err != nil {
		return nil, err
	}
	force, err := c.ForceMap()
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("point_mutation", c.PointMutation).
		Str("igc", c.IGC).
		Int("params", len(x)).
		Int("forced", len(force)).
		Msg("building joint-state model from config")

	return jointstate.New(x, c.PointMutation, jointstate.IGCModel(c.IGC),
		jointstate.WithForce(force),
		jointstate.WithLogger(logger),
	)
}

// Encode writes c in the given format.
func (c Model) Encode(w io.Writer, format Format) error {
	switch Format(strings.ToLower(string(format))) {
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
