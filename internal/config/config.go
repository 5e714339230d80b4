package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/path/to.sock)
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	JWTSecret string `env:"JWT_SECRET_KEY,required"`

	StorageBucket   string `env:"STORAGE_BUCKET,required"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// EmailDomain is the institutional suffix signups must carry.
	EmailDomain string `env:"ALLOWED_EMAIL_DOMAIN" envDefault:"@cmrcet.ac.in"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
