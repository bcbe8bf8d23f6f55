package config

// RedisConfig contains the Redis session store configuration. An empty
// Addr disables Redis; sessions then live in process memory and do not
// survive a restart.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Enabled reports whether a Redis session store is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}
