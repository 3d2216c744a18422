package config

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`

	// CorsAllowedOrigin is the single origin allowed to make cross-origin requests.
	CorsAllowedOrigin string `env:"HTTP_CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:4200"`
}
