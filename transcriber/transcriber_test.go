package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSelectsBackend(t *testing.T) {
	if got := New(Options{GroqKey: "k"}).Name(); got != "groq" {
		t.Errorf("with key: got %q, want groq", got)
	}
	if got := New(Options{ServerURL: "http://localhost:8080"}).Name(); got != "whisperd" {
		t.Errorf("without key: got %q, want whisperd", got)
	}
}

func TestWhisperdRequestShape(t *testing.T) {
	var gotFields map[string]string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inference" {
			t.Errorf("path = %q, want /inference", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatal(err)
		}
		gotFile, _ = io.ReadAll(f)
		json.NewEncoder(w).Encode(map[string]any{
			"text": "hello world",
			"segments": []map[string]any{
				{"text": " hello"}, {"text": " world"},
			},
		})
	}))
	defer srv.Close()

	tr := NewWhisperd(srv.URL, "base", "cuda", "float16")
	segments, err := tr.Transcribe(context.Background(), Request{
		Samples:    []int16{0, 100, -100},
		SampleRate: 16000,
		Language:   "en",
		Prompt:     "Hello, how are you?",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(segments) != 2 || segments[0] != " hello" || segments[1] != " world" {
		t.Errorf("segments = %q", segments)
	}
	for k, want := range map[string]string{
		"language":        "en",
		"prompt":          "Hello, how are you?",
		"model":           "base",
		"device":          "cuda",
		"compute_type":    "float16",
		"response_format": "verbose_json",
	} {
		if gotFields[k] != want {
			t.Errorf("field %s = %q, want %q", k, gotFields[k], want)
		}
	}
	if !bytes.HasPrefix(gotFile, []byte("RIFF")) {
		t.Error("uploaded file is not WAV")
	}
}

func TestWhisperdServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewWhisperd(srv.URL, "", "", "")
	if _, err := tr.Transcribe(context.Background(), Request{SampleRate: 16000}); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestGroqRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		if got := r.FormValue("model"); got != groqModel {
			t.Errorf("model = %q, want %q", got, groqModel)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(f)
		if !bytes.HasPrefix(data, []byte("fLaC")) {
			t.Error("uploaded file is not FLAC")
		}
		json.NewEncoder(w).Encode(map[string]any{"text": "ok"})
	}))
	defer srv.Close()

	tr := NewGroq("test-key")
	tr.apiURL = srv.URL

	segments, err := tr.Transcribe(context.Background(), Request{
		Samples:    make([]int16, 256),
		SampleRate: 16000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0] != "ok" {
		t.Errorf("segments = %q", segments)
	}
}

func TestWhisperdNoSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"text": ""})
	}))
	defer srv.Close()

	tr := NewWhisperd(srv.URL, "", "", "")
	segments, err := tr.Transcribe(context.Background(), Request{SampleRate: 16000})
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %q", segments)
	}
}
