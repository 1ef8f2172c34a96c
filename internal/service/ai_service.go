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

// ContentGenerator produces personalized study material.
type ContentGenerator interface {
	GeneratePersonalizedContent(req GenerateContentRequest) (string, error)
}

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateContentRequest carries everything the model needs to tailor the
// output to one student.
type GenerateContentRequest struct {
	Topic         string
	Subject       string
	Difficulty    int
	LearningStyle model.LearningStyle
	Language      model.Language
	GradeLevel    int
}

func (s *AIService) chat(system, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
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

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

func (s *AIService) GeneratePersonalizedContent(req GenerateContentRequest) (string, error) {
	system := "You are a tutor for school students. Write short, clear study material adapted to the student's learning style and grade level."
	prompt := fmt.Sprintf(
		"Write a lesson about %q for the subject %q.\nDifficulty: %d of 5.\nLearning style: %s.\nLanguage: %s.\nGrade level: %d.",
		req.Topic, req.Subject, req.Difficulty, req.LearningStyle, req.Language, req.GradeLevel,
	)
	return s.chat(system, prompt)
}
