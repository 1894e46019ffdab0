package config

import "github.com/kelseyhightower/envconfig"

// App holds the service configuration, loaded from the environment.
type App struct {
	// DB
	FormationDSN string `envconfig:"PG_FORMATION_DSN" required:"true"`
	// RabbitMQ (optional; the service runs without a broker)
	RabbitURL           string `envconfig:"RABBITMQ_URL"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"formation"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":9082"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
