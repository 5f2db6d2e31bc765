// Package config assembles the process configuration once at startup.
// Every knob is environment-supplied and optional; values are forwarded to
// the transcription engine as-is and validated only there.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Model     string // whisper model size/variant
	Language  string // language hint; empty means auto-detect
	Device    string // compute device hint (cuda, cpu, ...)
	Compute   string // numeric precision hint (float16, int8, ...)
	ServerURL string // whisper.cpp server endpoint
	GroqKey   string // non-empty selects the hosted backend
	LogPath   string // diagnostics log directory override
}

// Load reads a .env file if present, then the environment.
func Load() *Config {
	godotenv.Load()
	return &Config{
		Model:     getenv("WHISPER_MODEL", "base"),
		Language:  getenv("WHISPER_LANG", "en"),
		Device:    getenv("WHISPER_DEVICE", "cuda"),
		Compute:   getenv("WHISPER_COMPUTE", "float16"),
		ServerURL: getenv("WHISPER_SERVER", "http://localhost:8080"),
		GroqKey:   os.Getenv("GROQ_API_KEY"),
		LogPath:   os.Getenv("DIKT_LOG_PATH"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
