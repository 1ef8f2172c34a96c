package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vidyai_backend/internal/config"
	"vidyai_backend/internal/model"
)

// Translator converts content between languages. Implementations may call
// out to an external service; Translate must return the input unchanged
// when source and target are equal.
type Translator interface {
	Translate(text string, src, dst model.Language) (string, error)
}

type TranslationService struct {
	config config.TranslationConfig
	client *http.Client
}

func NewTranslationService(cfg config.TranslationConfig) *TranslationService {
	return &TranslationService{
		config: cfg,
		client: &http.Client{},
	}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (s *TranslationService) Translate(text string, src, dst model.Language) (string, error) {
	if src == dst || text == "" {
		return text, nil
	}

	body, err := json.Marshal(translateRequest{
		Text:   text,
		Source: string(src),
		Target: string(dst),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/translate", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result translateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("translation API error: %s", result.Error)
	}

	return result.TranslatedText, nil
}
