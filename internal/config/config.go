package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr           string   `yaml:"addr"`
	Redis          Redis    `yaml:"redis"`
	Log            Log      `yaml:"log"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Redis struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
	// Key prefixes for the two logical namespaces in the same store.
	PostsPrefix string `yaml:"posts_prefix"`
	UsersPrefix string `yaml:"users_prefix"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func defaults() Config {
	return Config{
		Addr: ":8080",
		Redis: Redis{
			Addr:        "localhost:6379",
			PostsPrefix: "posts:",
			UsersPrefix: "users:",
		},
		Log: Log{Level: "info"},
	}
}

func mustLoadPath(configPath string, output interface{}) {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

func MustLoad(configFolder string) *Config {
	cfg := defaults()
	mustLoadPath(path.Join(configFolder, "config.yaml"), &cfg)
	return &cfg
}
