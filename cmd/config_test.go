package cmd

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/foundation"
)

func TestEnvRates(t *testing.T) {
	t.Setenv(envRateConcrete, "9000")
	t.Setenv(envRateSteel, "")
	t.Setenv(envRateFormwork, "500.5")

	r, err := envRates()
	if err != nil {
		t.Fatalf("envRates: %v", err)
	}
	if r.Concrete != 9000 || r.Formwork != 500.5 {
		t.Errorf("rates = %+v, want concrete 9000 and formwork 500.5", r)
	}
	if r.Steel != 0 || r.Excavation != 0 {
		t.Errorf("unset rates should stay zero, got %+v", r)
	}
}

func TestEnvRatesInvalid(t *testing.T) {
	t.Setenv(envRateSteel, "cheap")
	if _, err := envRates(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEnvRatesRejectsNegative(t *testing.T) {
	t.Setenv(envRateExcavation, "-180")
	_, err := envRates()
	var ive *calcerr.InputValidationError
	if !errors.As(err, &ive) || ive.Field != envRateExcavation {
		t.Fatalf("err = %v, want %s validation error", err, envRateExcavation)
	}
}

func TestEnvFootingOptions(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantOK  bool
		wantErr bool
		step    float64
	}{
		{"unset", "", false, false, foundation.DefaultStep},
		{"valid", "0.1", true, false, 0.1},
		{"out of range", "2", true, true, 2},
		{"not a number", "fine", false, true, foundation.DefaultStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envFootingStep, tt.value)
			opt, ok, err := envFootingOptions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if opt.Step != tt.step {
				t.Errorf("step = %v, want %v", opt.Step, tt.step)
			}
		})
	}
}

func TestSectionChartName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pier.png", "pier-section.png"},
		{"charts/pier.svg", "charts/pier-section.svg"},
		{"pier.pdf", "pier-section.pdf"},
		{"pier", "pier-section.png"},
		{"pier.jpg", "pier.jpg-section.png"},
	}
	for _, tt := range tests {
		if got := sectionChartName(tt.in); got != tt.want {
			t.Errorf("sectionChartName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
