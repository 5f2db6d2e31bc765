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

const groqModel = "whisper-large-v3-turbo"

// Groq is the hosted backend. Audio is FLAC-compressed before upload, which
// roughly halves transfer time over raw PCM.
type Groq struct {
	client *http.Client
	apiURL string
	apiKey string
}

func NewGroq(apiKey string) *Groq {
	return &Groq{
		client: newHTTPClient(),
		apiURL: "https://api.groq.com/openai/v1/audio/transcriptions",
		apiKey: apiKey,
	}
}

func (g *Groq) Name() string { return "groq" }

type groqResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		Text string `json:"text"`
	} `json:"segments"`
}

func (g *Groq) Transcribe(ctx context.Context, req Request) ([]string, error) {
	flacData, err := encoder.FLAC(req.Samples, req.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("flac encode: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.flac")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(flacData); err != nil {
		return nil, err
	}

	writer.WriteField("model", groqModel)
	writer.WriteField("response_format", "verbose_json")
	if req.Language != "" {
		writer.WriteField("language", req.Language)
	}
	if req.Prompt != "" {
		writer.WriteField("prompt", req.Prompt)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groq API error %d: %s", resp.StatusCode, respBody)
	}

	var gr groqResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, fmt.Errorf("groq response parse error: %w", err)
	}

	if len(gr.Segments) == 0 {
		if gr.Text == "" {
			return nil, nil
		}
		return []string{gr.Text}, nil
	}
	segments := make([]string, 0, len(gr.Segments))
	for _, seg := range gr.Segments {
		segments = append(segments, seg.Text)
	}
	return segments, nil
}
