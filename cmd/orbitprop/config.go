package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/kmoraux/astrodyn"
)

// config carries one propagation request read from the viper configuration.
type config struct {
	μ        float64
	elements astrodyn.KeplerianElements
	epoch    time.Time
	duration float64   // Propagation span in seconds.
	stepSize float64   // RK4 step size in seconds.
	samples  []float64 // Intermediate report offsets in seconds, optional.
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		μ: v.GetFloat64("body.mu"),
		elements: astrodyn.KeplerianElements{
			SemiMajorAxis:            v.GetFloat64("orbit.sma"),
			Eccentricity:             v.GetFloat64("orbit.ecc"),
			Inclination:              astrodyn.Deg2rad(v.GetFloat64("orbit.inc")),
			ArgumentOfPeriapsis:      astrodyn.Deg2rad(v.GetFloat64("orbit.argp")),
			LongitudeOfAscendingNode: astrodyn.Deg2rad(v.GetFloat64("orbit.raan")),
			TrueAnomaly:              astrodyn.Deg2rad(v.GetFloat64("orbit.tan")),
		},
		duration: v.GetFloat64("prop.duration"),
		stepSize: v.GetFloat64("prop.step"),
	}
	if cfg.μ <= 0 {
		return cfg, errors.Errorf("body.mu must be positive, got %v", cfg.μ)
	}
	if cfg.stepSize <= 0 {
		return cfg, errors.Errorf("prop.step must be positive, got %v", cfg.stepSize)
	}
	if cfg.duration <= 0 {
		return cfg, errors.Errorf("prop.duration must be positive, got %v", cfg.duration)
	}
	epoch, err := time.Parse(time.RFC3339, v.GetString("prop.epoch"))
	if err != nil {
		return cfg, errors.Wrap(err, "prop.epoch must be RFC3339")
	}
	cfg.epoch = epoch
	for _, offset := range v.GetStringSlice("prop.samples") {
		d, err := time.ParseDuration(offset)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid sample offset %q", offset)
		}
		s := d.Seconds()
		if s <= 0 || s >= cfg.duration {
			return cfg, errors.Errorf("sample offset %q outside (0, duration)", offset)
		}
		cfg.samples = append(cfg.samples, s)
	}
	return cfg, nil
}
