// orbitprop propagates a two-body orbit from a Keplerian element set read
// from a viper configuration file, and reports the osculating elements at
// the requested offsets.
package main

import (
	"math"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/kmoraux/astrodyn"
	"github.com/kmoraux/astrodyn/integrator"
)

// twoBody returns the Cartesian two-body equations of motion for μ.
func twoBody(μ float64) integrator.DerivativeFunc {
	return func(_ float64, s []float64) []float64 {
		r := math.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
		r3 := r * r * r
		return []float64{s[3], s[4], s[5], -μ * s[0] / r3, -μ * s[1] / r3, -μ * s[2] / r3}
	}
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "app", "orbitprop")

	v := viper.New()
	v.SetConfigName("orbitprop")
	v.AddConfigPath(".")
	if path := os.Getenv("ORBITPROP_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	cfg, err := loadConfig(v)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	state0 := astrodyn.KeplerianToCartesian(cfg.elements, cfg.μ)
	logger.Log("epoch", cfg.epoch, "jd", julian.TimeToJD(cfg.epoch),
		"elements", cfg.elements.String())

	rk4 := integrator.NewRK4(twoBody(cfg.μ), 0, append(state0.R, state0.V...))
	offsets := append(slices.Clone(cfg.samples), cfg.duration)
	slices.Sort(offsets)

	for _, offset := range offsets {
		s := integrator.IntegrateTo(rk4, offset, cfg.stepSize)
		k := astrodyn.CartesianToKeplerian(astrodyn.CartesianElements{R: s[:3], V: s[3:]}, cfg.μ)
		logger.Log("t", offset, "elements", k.String())
	}
}
