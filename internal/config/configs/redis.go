package configs

// Redis configures the Redis backed import store. When Enabled is false the
// server keeps pending imports in process memory.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
