// Package zxcvbncore implements the guess-estimation core of a
// password-strength estimator: per-pattern guess counting and the
// dynamic-programming search for the cheapest non-overlapping cover of
// a password by candidate matches.
//
// The heavy lifting lives in the match, guess, and sequence
// subpackages; this package wires them together behind
// MostGuessableMatchSequence and holds the ambient Config the teacher's
// own Config type inspired.
package zxcvbncore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/passwdlab/zxcvbn-core/guess"
)

// GlobalOption names a setting that applies to a whole run rather than
// to one tunable, mirroring the teacher's split between rule-scoped and
// run-scoped settings.
type GlobalOption string

// ExcludeAdditive is the global option controlling whether the additive
// term of spec.md §4.3's work objective is included.
const ExcludeAdditive GlobalOption = "exclude_additive"

// Config holds the tunables of spec.md §6 plus run-scoped global
// options, loadable from JSON or YAML the way the teacher's Config
// loads rule settings from JSON.
type Config struct {
	values map[string]interface{}
	global map[GlobalOption]string
}

// NewConfig returns a Config populated with the reference tunables of
// spec.md §6.
func NewConfig() Config {
	d := guess.DefaultTunables()
	return Config{
		values: map[string]interface{}{
			"bruteforce_cardinality":              d.BruteforceCardinality,
			"min_guesses_before_growing_sequence": d.MinGuessesBeforeGrowingSequence,
			"min_submatch_guesses_single_char":    d.MinSubmatchGuessesSingleChar,
			"min_submatch_guesses_multi_char":     d.MinSubmatchGuessesMultiChar,
			"min_year_space":                      d.MinYearSpace,
			"reference_year":                      d.ReferenceYear,
		},
		global: make(map[GlobalOption]string),
	}
}

// ReadFrom implements io.ReaderFrom, loading JSON-encoded tunables and
// global options.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	var wire configWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return int64(len(data)), err
	}
	wire.applyTo(c)
	return int64(len(data)), nil
}

// WriteTo implements io.WriterTo, saving the current tunables and
// global options as JSON.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(c.toWire())
	if err != nil {
		return 0, err
	}
	return io.Copy(w, bytes.NewReader(data))
}

// ReadYAML loads tunables and global options from YAML, using the
// yaml.v3 dependency the teacher ships for its own configuration
// surface.
func (c *Config) ReadYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var wire configWire
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return err
	}
	wire.applyTo(c)
	return nil
}

// WriteYAML saves the current tunables and global options as YAML.
func (c Config) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(c.toWire())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// configWire is the JSON/YAML wire shape for Config.
type configWire struct {
	Values map[string]interface{}  `json:"values,omitempty" yaml:"values,omitempty"`
	Global map[GlobalOption]string `json:"global" yaml:"global"`
}

func (c Config) toWire() configWire {
	return configWire{Values: c.values, Global: c.global}
}

func (w configWire) applyTo(c *Config) {
	if c.values == nil {
		c.values = make(map[string]interface{})
	}
	if c.global == nil {
		c.global = make(map[GlobalOption]string)
	}
	for k, v := range w.Values {
		// yaml.v3 decodes a whole-number scalar as int; store it as
		// float64 so a YAML load yields the same values a JSON load does.
		if n, ok := v.(int); ok {
			v = float64(n)
		}
		c.values[k] = v
	}
	for k, v := range w.Global {
		c.global[k] = v
	}
}

// Get returns the raw configuration value for a tunable name.
func (c Config) Get(name string) (interface{}, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, fmt.Errorf("tunable %q not in configuration", name)
	}
	return v, nil
}

// Set overrides a tunable's value.
func (c *Config) Set(name string, val interface{}) {
	if c.values == nil {
		c.values = make(map[string]interface{})
	}
	c.values[name] = val
}

// SetGlobal sets a run-scoped option.
func (c *Config) SetGlobal(opt GlobalOption, value string) {
	if c.global == nil {
		c.global = make(map[GlobalOption]string)
	}
	c.global[opt] = value
}

// GetGlobal returns a run-scoped option's value.
func (c Config) GetGlobal(opt GlobalOption) (string, error) {
	v, ok := c.global[opt]
	if !ok {
		return "", fmt.Errorf("global option %q not set", opt)
	}
	return v, nil
}

// IsGlobalEnabled reports whether a run-scoped boolean option is set to
// "enabled" or "true".
func (c Config) IsGlobalEnabled(opt GlobalOption) (bool, error) {
	v, err := c.GetGlobal(opt)
	if err != nil {
		return false, err
	}
	return v == "enabled" || v == "true", nil
}

// Tunables converts the configuration's values into guess.Tunables,
// falling back to the reference default for any tunable not set.
func (c Config) Tunables() guess.Tunables {
	t := guess.DefaultTunables()
	if v, err := c.Get("bruteforce_cardinality"); err == nil {
		t.BruteforceCardinality = toFloat(v, t.BruteforceCardinality)
	}
	if v, err := c.Get("min_guesses_before_growing_sequence"); err == nil {
		t.MinGuessesBeforeGrowingSequence = toFloat(v, t.MinGuessesBeforeGrowingSequence)
	}
	if v, err := c.Get("min_submatch_guesses_single_char"); err == nil {
		t.MinSubmatchGuessesSingleChar = toFloat(v, t.MinSubmatchGuessesSingleChar)
	}
	if v, err := c.Get("min_submatch_guesses_multi_char"); err == nil {
		t.MinSubmatchGuessesMultiChar = toFloat(v, t.MinSubmatchGuessesMultiChar)
	}
	if v, err := c.Get("min_year_space"); err == nil {
		t.MinYearSpace = toFloat(v, t.MinYearSpace)
	}
	if v, err := c.Get("reference_year"); err == nil {
		t.ReferenceYear = int(toFloat(v, float64(t.ReferenceYear)))
	}
	return t
}

func toFloat(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return fallback
	}
}
