package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Gemini struct {
		APIKey     string `env:"GEMINI_API_KEY,required"`
		ChatModel  string `env:"GEMINI_CHAT_MODEL" envDefault:"gemini-3-flash-preview"`
		ImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
		TTSModel   string `env:"GEMINI_TTS_MODEL" envDefault:"gemini-2.5-flash-preview-tts"`
		Voice      string `env:"GEMINI_TTS_VOICE" envDefault:"Kore"`
	}

	Session struct {
		// Длительности экранов intro и повторного intro после логина
		IntroDuration  int `env:"SESSION_INTRO_MS" envDefault:"4000"`
		ReplayDuration int `env:"SESSION_REPLAY_MS" envDefault:"2500"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Игнорируем ошибку, если .env файл не найден
		// В production окружении переменные могут быть установлены напрямую
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
