package config

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// EngineConfig controls the quantity engine's arithmetic and the rounding
// levels each field is rendered at.
type EngineConfig struct {
	// Precision is the working precision in significant decimal digits. It is
	// fixed for the life of the process.
	Precision uint32 `mapstructure:"precision" validate:"gte=12,lte=100"`

	// SigFigs lists the significant-figure levels rendered for every field;
	// 0 means unrounded.
	SigFigs []int `mapstructure:"sig_figs" validate:"required,min=1,dive,gte=0"`
}

// CatalogConfig contains settings for batch compilation of particle records.
type CatalogConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=1,lte=64"`

	// Path optionally names a particle document the server compiles at
	// startup and serves read-only.
	Path string `mapstructure:"path"`
}
