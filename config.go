package svgmesh

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the render settings an application usually wants to tune
// without code changes. LoadConfig reads it from SVGMESH_* environment
// variables; ConfigFromMap from a decoded settings file.
type Config struct {
	Tolerance      float32 `envconfig:"TOLERANCE" default:"1" mapstructure:"tolerance"`
	ScaleTolerance bool    `envconfig:"SCALE_TOLERANCE" default:"true" mapstructure:"scale_tolerance"`
	Culling        bool    `envconfig:"CULLING" default:"false" mapstructure:"culling"`
	// Zero or negative capacities leave the caches unbounded.
	IconCapacity int `envconfig:"ICON_CAPACITY" default:"64" mapstructure:"icon_capacity"`
	MeshCapacity int `envconfig:"MESH_CAPACITY" default:"256" mapstructure:"mesh_capacity"`

	// Fit is one of none, size, factor, cover or contain.
	Fit string `envconfig:"FIT" default:"contain" mapstructure:"fit"`
	// Size is the icon size for fit size.
	Size float32 `envconfig:"SIZE" default:"0" mapstructure:"size"`
	// Factor is the scale factor for fit factor.
	Factor float32 `envconfig:"FACTOR" default:"1" mapstructure:"factor"`
	// Margin is applied to every side for fit contain.
	Margin float32 `envconfig:"MARGIN" default:"0" mapstructure:"margin"`
}

// DefaultConfig returns the settings matching NewWidget's defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:      1,
		ScaleTolerance: true,
		IconCapacity:   DefaultIconCapacity,
		MeshCapacity:   DefaultMeshCapacity,
		Fit:            "contain",
		Factor:         1,
	}
}

// LoadConfig reads the configuration from the environment. Unset variables
// keep their defaults.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("svgmesh", &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ConfigFromMap decodes settings keyed by the mapstructure tag names, such
// as a section of a JSON or YAML file. Strings are converted to numbers and
// booleans where needed; unknown keys are an error.
func ConfigFromMap(m map[string]any) (Config, error) {
	c := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges and the fit name.
func (c Config) Validate() error {
	switch {
	case !(c.Tolerance > 0) || math.IsInf(float64(c.Tolerance), 0):
		return fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidConfig, c.Tolerance)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %v is negative", ErrInvalidConfig, c.Margin)
	}
	switch strings.ToLower(c.Fit) {
	case "none", "cover", "contain":
	case "size":
		if !(c.Size > 0) {
			return fmt.Errorf("%w: fit size needs a positive size, got %v", ErrInvalidConfig, c.Size)
		}
	case "factor":
		if !(c.Factor > 0) {
			return fmt.Errorf("%w: fit factor needs a positive factor, got %v", ErrInvalidConfig, c.Factor)
		}
	default:
		return fmt.Errorf("%w: unknown fit %q", ErrInvalidConfig, c.Fit)
	}
	return nil
}

// FitMode returns the configured fit mode. Unknown names give FitContain.
func (c Config) FitMode() FitMode {
	switch strings.ToLower(c.Fit) {
	case "none":
		return FitNone()
	case "size":
		return FitSize(Splat(c.Size))
	case "factor":
		return FitFactor(c.Factor)
	case "cover":
		return FitCover()
	default:
		m := c.Margin
		return FitContain(Margin{Left: m, Right: m, Top: m, Bottom: m})
	}
}

// Widget returns a render request for icon with the configured settings.
func (c Config) Widget(icon *Icon) Widget {
	return NewWidget(icon).
		WithTolerance(c.Tolerance).
		WithScaleTolerance(c.ScaleTolerance).
		WithFitMode(c.FitMode()).
		WithCulling(c.Culling)
}

// NewIconCache returns an icon cache with the configured capacity.
func (c Config) NewIconCache() *IconCache {
	return NewIconCache(WithIconCapacity(c.IconCapacity))
}

// NewMeshCache returns a mesh cache with the configured capacity.
func (c Config) NewMeshCache() *MeshCache {
	return NewMeshCache(WithMeshCapacity(c.MeshCapacity))
}
