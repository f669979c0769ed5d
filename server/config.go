package server

type Config struct {
	// MaxConcurrent caps in-flight connection handlers when > 0.
	// 0 keeps the default model: one goroutine per connection, unbounded.
	MaxConcurrent int
	EnableLogging bool
}

func DefaultConfig() *Config {
	return &Config{
		MaxConcurrent: 0,
		EnableLogging: true,
	}
}
