package config

import "time"

const VERSION = "0.1.0"

func NewConfig() *Config {
	return &Config{
		MesosURL: "http://localhost:5050",
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

type Config struct {
	MesosURL string        `json:"mesos_url"`
	Timeout  time.Duration `json:"timeout"`
	LogLevel string        `json:"log_level"`
}
