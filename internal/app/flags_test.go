package app

import (
	"flag"
	"io"
	"testing"
)

func TestBindCollectsSimParams(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-seed", "7", "-param", "w=80", "-param", "threshold = 0.6", "-scale", "4"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != 7 || cfg.Scale != 4 || cfg.Sim != "schelling" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	params := cfg.SimParams()
	if params["w"] != "80" || params["threshold"] != "0.6" {
		t.Fatalf("unexpected params %v", params)
	}
}

func TestBindRejectsMalformedParam(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-param", "noequals"}); err == nil {
		t.Fatal("expected malformed -param to fail")
	}
}
