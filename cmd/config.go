package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/cost"
	"github.com/alexiusacademia/gobridge/internal/foundation"
)

// Environment overrides, also read from a .env file in the working directory
const (
	envRateConcrete   = "GOBRIDGE_RATE_CONCRETE"
	envRateSteel      = "GOBRIDGE_RATE_STEEL"
	envRateFormwork   = "GOBRIDGE_RATE_FORMWORK"
	envRateExcavation = "GOBRIDGE_RATE_EXCAVATION"
	envFootingStep    = "GOBRIDGE_FOOTING_STEP"
)

// loadEnv reads .env without replacing variables already set
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: .env not loaded: %v\n", err)
	}
}

func envFloat(key string) (float64, bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

// envRates returns the rate overrides from the environment; unset rates are
// zero and negative rates are an error
func envRates() (cost.Rates, error) {
	var r cost.Rates
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{envRateConcrete, &r.Concrete},
		{envRateSteel, &r.Steel},
		{envRateFormwork, &r.Formwork},
		{envRateExcavation, &r.Excavation},
	} {
		v, ok, err := envFloat(f.key)
		if err != nil {
			return cost.Rates{}, err
		}
		if !ok {
			continue
		}
		if err := calcerr.NonNegative(f.key, v); err != nil {
			return cost.Rates{}, err
		}
		*f.dst = v
	}
	return r, nil
}

// envFootingOptions returns the default search bounds with the step from the
// environment, if one is set
func envFootingOptions() (foundation.Options, bool, error) {
	opt := foundation.DefaultOptions()
	step, ok, err := envFloat(envFootingStep)
	if err != nil || !ok {
		return opt, false, err
	}
	opt.Step = step
	return opt, true, opt.Validate()
}
