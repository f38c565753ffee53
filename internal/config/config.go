// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	LogFile         string `yaml:"log_file"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// MaxRetries и RetryDelay управляют повторными попытками подключения
// при старте процесса, DialTimeout и Timeout — сетевыми таймаутами клиента.
type RedisConnection struct {
	Addr        string        `yaml:"addr" env-default:"localhost:6379"`
	Password    string        `yaml:"password"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries" env-default:"5"`
	RetryDelay  time.Duration `yaml:"retry_delay" env-default:"100ms"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"1s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"1s"`
}

// MustLoad функция для загрузки конфига, путь к файлу берется из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
