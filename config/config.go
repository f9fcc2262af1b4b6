// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PCRConfig is settings for simulating PCR
type PCRConfig struct {
	// the minimum annealing length for a primer binding site
	MinPrimerLength int `mapstructure:"min-primer-length"`
}

// GibsonConfig is settings for simulating Gibson assemblies
type GibsonConfig struct {
	// the minimum bp of terminal homology between two fragments
	MinHomology int `mapstructure:"min-homology"`

	// the minimum melting temperature of a homology region
	MinTm float64 `mapstructure:"min-tm"`
}

// OligoConfig is settings for designing overlapping assembly oligos
type OligoConfig struct {
	// the target melting temperature of every overlap
	Tm float64 `mapstructure:"tm"`

	// the minimum oligo length, used when targeting an oligo count
	MinLength int `mapstructure:"min-length"`

	// the maximum synthesizable oligo length
	MaxLength int `mapstructure:"max-length"`

	// the minimum overlap length between adjacent oligos
	OverlapMin int `mapstructure:"overlap-min"`

	// whether the design must hold an even number of oligos
	RequireEven bool `mapstructure:"require-even"`
}

// Config is the root-level settings struct, a mix of settings available in
// a config file and those available from the command line
type Config struct {
	// PCR simulation settings
	PCR PCRConfig `mapstructure:"pcr"`

	// Gibson assembly settings
	Gibson GibsonConfig `mapstructure:"gibson"`

	// oligo design settings
	Oligos OligoConfig `mapstructure:"oligos"`
}

// SetDefaults registers every setting's default value with Viper. Flags and
// config files override them.
func SetDefaults() {
	viper.SetDefault("pcr.min-primer-length", 14)

	viper.SetDefault("gibson.min-homology", 10)
	viper.SetDefault("gibson.min-tm", 63.0)

	viper.SetDefault("oligos.tm", 72.0)
	viper.SetDefault("oligos.min-length", 80)
	viper.SetDefault("oligos.max-length", 200)
	viper.SetDefault("oligos.overlap-min", 20)
	viper.SetDefault("oligos.require-even", true)
}

// NewConfig returns a new Config struct populated by Viper settings
// (from the local config file) and/or command line arguments
func NewConfig() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		logrus.WithError(err).Fatal("unable to decode settings")
	}
	return c
}
