// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewConfig_defaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	c := NewConfig()

	if c.PCR.MinPrimerLength != 14 {
		t.Errorf("Config.PCR.MinPrimerLength = %v, want 14", c.PCR.MinPrimerLength)
	}
	if c.Gibson.MinHomology != 10 || c.Gibson.MinTm != 63.0 {
		t.Errorf("Config.Gibson = %+v, want homology 10 and Tm 63", c.Gibson)
	}
	if c.Oligos.Tm != 72.0 || c.Oligos.MinLength != 80 || c.Oligos.MaxLength != 200 {
		t.Errorf("Config.Oligos = %+v", c.Oligos)
	}
	if c.Oligos.OverlapMin != 20 || !c.Oligos.RequireEven {
		t.Errorf("Config.Oligos = %+v", c.Oligos)
	}
}

func TestNewConfig_overrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("gibson.min-tm", 58.0)
	viper.Set("oligos.require-even", false)

	c := NewConfig()

	if c.Gibson.MinTm != 58.0 {
		t.Errorf("Config.Gibson.MinTm = %v, want 58", c.Gibson.MinTm)
	}
	if c.Oligos.RequireEven {
		t.Error("Config.Oligos.RequireEven should be overridden to false")
	}
}
