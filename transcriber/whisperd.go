package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"dikt/encoder"
)

// Whisperd talks to a whisper.cpp server (POST /inference). Audio travels
// as WAV-wrapped PCM; model/device/compute hints are forwarded untouched.
type Whisperd struct {
	client  *http.Client
	baseURL string
	model   string
	device  string
	compute string
}

func NewWhisperd(baseURL, model, device, compute string) *Whisperd {
	return &Whisperd{
		client:  newHTTPClient(),
		baseURL: baseURL,
		model:   model,
		device:  device,
		compute: compute,
	}
}

func (w *Whisperd) Name() string { return "whisperd" }

type whisperdResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		Text string `json:"text"`
	} `json:"segments"`
	Error string `json:"error"`
}

func (w *Whisperd) Transcribe(ctx context.Context, req Request) ([]string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(encoder.WAV(req.Samples, req.SampleRate)); err != nil {
		return nil, err
	}

	writer.WriteField("response_format", "verbose_json")
	if req.Language != "" {
		writer.WriteField("language", req.Language)
	}
	if req.Prompt != "" {
		writer.WriteField("prompt", req.Prompt)
	}
	if w.model != "" {
		writer.WriteField("model", w.model)
	}
	if w.device != "" {
		writer.WriteField("device", w.device)
	}
	if w.compute != "" {
		writer.WriteField("compute_type", w.compute)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/inference", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("whisperd request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whisperd error %d: %s", resp.StatusCode, respBody)
	}

	var wr whisperdResponse
	if err := json.Unmarshal(respBody, &wr); err != nil {
		return nil, fmt.Errorf("whisperd response parse error: %w", err)
	}
	if wr.Error != "" {
		return nil, fmt.Errorf("whisperd: %s", wr.Error)
	}

	if len(wr.Segments) == 0 {
		if wr.Text == "" {
			return nil, nil
		}
		return []string{wr.Text}, nil
	}
	segments := make([]string, 0, len(wr.Segments))
	for _, seg := range wr.Segments {
		segments = append(segments, seg.Text)
	}
	return segments, nil
}
