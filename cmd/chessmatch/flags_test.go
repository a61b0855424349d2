package main

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(unicode, true)()
	defer saveRestoreBool(color, true)()
	defer saveRestoreBool(noCaptured, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if !cfg.Output.JSONFormat || !cfg.Output.Unicode || !cfg.Output.Color {
		t.Errorf("Output = %+v, want json, unicode and color", cfg.Output)
	}
	if cfg.Output.ShowCaptured {
		t.Error("ShowCaptured = true with -nocaptured")
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, config.Summary)
	}
	if cfg.Match.DefaultPromotion != "Q" {
		t.Errorf("DefaultPromotion = %q, want Q", cfg.Match.DefaultPromotion)
	}
	if !cfg.Output.ShowCaptured || cfg.Output.JSONFormat {
		t.Errorf("Output = %+v, want text with captured pieces", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	t.Run("explicit level", func(t *testing.T) {
		defer saveRestoreInt(verbosity, config.Commentary)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != config.Commentary {
			t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, config.Commentary)
		}
	})

	t.Run("quiet wins", func(t *testing.T) {
		defer saveRestoreInt(verbosity, config.Commentary)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != config.Quiet {
			t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, config.Quiet)
		}
	})
}

func TestApplyMatchFlags(t *testing.T) {
	defer saveRestoreString(promotion, "N")()
	cfg := config.NewConfig()
	applyMatchFlags(cfg)
	if cfg.Match.DefaultPromotion != "N" {
		t.Errorf("DefaultPromotion = %q, want N", cfg.Match.DefaultPromotion)
	}

	*promotion = "K"
	applyMatchFlags(cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted promotion to K")
	}
}
