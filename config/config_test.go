package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"WHISPER_MODEL", "WHISPER_LANG", "WHISPER_DEVICE", "WHISPER_COMPUTE", "WHISPER_SERVER", "GROQ_API_KEY"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Model != "base" {
		t.Errorf("Model = %q, want base", cfg.Model)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.Device != "cuda" {
		t.Errorf("Device = %q, want cuda", cfg.Device)
	}
	if cfg.Compute != "float16" {
		t.Errorf("Compute = %q, want float16", cfg.Compute)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.GroqKey != "" {
		t.Errorf("GroqKey = %q, want empty", cfg.GroqKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WHISPER_MODEL", "large-v3")
	t.Setenv("WHISPER_LANG", "de")
	t.Setenv("WHISPER_SERVER", "http://stt:9000")
	cfg := Load()
	if cfg.Model != "large-v3" || cfg.Language != "de" || cfg.ServerURL != "http://stt:9000" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
