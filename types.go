package skiplist

import "errors"

// Entry is a key/value pair copied out of the list. Entries returned by
// lookups, order-statistic queries and Sublist are snapshots; mutating the
// list afterwards does not change them.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Errors
var (
	// ErrNilKey is returned when a nil key is passed to any operation.
	// Keys are rejected before the structure is touched.
	ErrNilKey = errors.New("skiplist: nil key")

	// ErrInvalidRange is returned by Sublist when the start key orders after
	// the end key under the list's comparator.
	ErrInvalidRange = errors.New("skiplist: start key greater than end key")

	// ErrUnsupportedType is returned when a key type has no natural order and
	// does not implement the Comparer interface. It is exported so callers can
	// detect improper construction.
	ErrUnsupportedType = errors.New("skiplist: key type has no natural order and does not implement Comparer")
)

// Config holds configuration for a SkipList. The zero value is not usable;
// start from DefaultConfig or LoadConfig.
type Config struct {
	// MaxLevel is the maximum tower height. Sized from the expected element
	// count upper bound (ceil(log_{1/p} N)); inserting more elements than
	// anticipated stays correct, search just degrades toward linear at the
	// top levels.
	MaxLevel int `yaml:"max_level"`

	// Probability is the level promotion probability.
	Probability float64 `yaml:"probability"`

	// Seed seeds the level generator. Zero means a random seed.
	Seed uint64 `yaml:"seed"`

	source Source
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MaxLevel:    32,
		Probability: 0.5,
	}
}

func (c Config) validate() error {
	if c.MaxLevel < 1 || c.MaxLevel > 64 {
		return errors.New("skiplist: max level must be in [1, 64]")
	}
	if c.Probability <= 0 || c.Probability >= 1 {
		return errors.New("skiplist: probability must be in (0, 1)")
	}
	return nil
}

// Option mutates a Config at construction time.
type Option func(*Config)

// WithMaxLevel sets the maximum tower height.
func WithMaxLevel(maxLevel int) Option {
	return func(c *Config) { c.MaxLevel = maxLevel }
}

// WithProbability sets the level promotion probability.
func WithProbability(p float64) Option {
	return func(c *Config) { c.Probability = p }
}

// WithSeed seeds the level generator, making tower shapes reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithRandomSource replaces the level generator's randomness source entirely.
// Tests use it to force specific tower shapes.
func WithRandomSource(src Source) Option {
	return func(c *Config) { c.source = src }
}
