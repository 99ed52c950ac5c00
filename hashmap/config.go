package hashmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/schuko"
)

const (
	// DefaultInitialCapacity is the table size of a map created with DefaultConfig.
	DefaultInitialCapacity = 1 << 4
	// DefaultLoadFactor is the fill ratio which triggers doubling of the table.
	DefaultLoadFactor = 0.75
)

// Configuration keys read by ConfigFrom.
const (
	CapacityKey   = "hashmap.capacity"
	LoadFactorKey = "hashmap.loadfactor"
)

// Config configures a hash map.
type Config struct {
	// InitialCapacity is the initial size of the bucket table. It must not be
	// negative. A capacity of 0 is allowed; the table grows on the first Put.
	InitialCapacity int
	// LoadFactor is the ratio of entries to capacity at which the table is
	// doubled. It must be positive.
	LoadFactor float64
}

// DefaultConfig returns a configuration with DefaultInitialCapacity and
// DefaultLoadFactor.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
	}
}

func (cfg Config) validate() error {
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: illegal initial capacity: %d", ErrIllegalArguments, cfg.InitialCapacity)
	}
	if cfg.LoadFactor <= 0 || math.IsNaN(cfg.LoadFactor) || math.IsInf(cfg.LoadFactor, 0) {
		return fmt.Errorf("%w: illegal load factor: %v", ErrIllegalArguments, cfg.LoadFactor)
	}
	return nil
}

// ConfigFrom reads a map configuration from an application configuration.
// Keys CapacityKey and LoadFactorKey are consulted; for keys not set the
// defaults are used. The resulting configuration is validated.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg, nil
	}
	if conf.IsSet(CapacityKey) {
		s := conf.GetString(CapacityKey)
		c, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not an integer", ErrIllegalArguments, CapacityKey, s)
		}
		cfg.InitialCapacity = c
	}
	if conf.IsSet(LoadFactorKey) {
		s := conf.GetString(LoadFactorKey)
		lf, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not a number", ErrIllegalArguments, LoadFactorKey, s)
		}
		cfg.LoadFactor = lf
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	tracer().Debugf("hashmap config: capacity=%d, load factor=%v", cfg.InitialCapacity, cfg.LoadFactor)
	return cfg, nil
}
