package app

import (
	"flag"
	"testing"

	"mad-life/pkg/control"
	"mad-life/pkg/sims/life"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.LifeConfig() != life.DefaultConfig() {
		t.Fatalf("LifeConfig()=%+v, want defaults", c.LifeConfig())
	}
	if c.ControlConfig() != control.DefaultConfig() {
		t.Fatalf("ControlConfig()=%+v, want defaults", c.ControlConfig())
	}
}

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	err := fs.Parse([]string{"-rows", "10", "-cols", "12", "-interval", "350", "-density", "0.5", "-random", "-seed", "3"})
	if err != nil {
		t.Fatal(err)
	}
	lc := c.LifeConfig()
	if lc.Rows != 10 || lc.Cols != 12 || lc.Seed != 3 || lc.Density != 0.5 {
		t.Fatalf("unexpected life config %+v", lc)
	}
	if cc := c.ControlConfig(); cc.IntervalMs != 350 {
		t.Fatalf("unexpected control config %+v", cc)
	}
	if !c.Randomize {
		t.Fatal("-random should set Randomize")
	}
}
