package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"vidyai_backend/internal/config"
)

// EmotionResult is the detector's answer for a single frame.
type EmotionResult struct {
	Emotion     string             `json:"emotion"`
	Confidence  float64            `json:"confidence"`
	AllEmotions map[string]float64 `json:"all_emotions"`
}

// EngagementResult describes attentiveness inferred from a single frame.
type EngagementResult struct {
	FaceDetected    bool    `json:"face_detected"`
	EyesDetected    bool    `json:"eyes_detected"`
	EngagementLevel float64 `json:"engagement_level"` // 0-1
	Emotion         string  `json:"emotion"`
}

// VisionDetector is the boundary to the computer-vision service.
type VisionDetector interface {
	DetectEmotion(image io.Reader, filename string) (*EmotionResult, error)
	TrackEngagement(image io.Reader, filename string) (*EngagementResult, error)
}

// VisionService posts frames to the external detection API over multipart
// HTTP, mirroring how the detector is consumed by the web client.
type VisionService struct {
	config config.VisionConfig
	client *http.Client
}

func NewVisionService(cfg config.VisionConfig) *VisionService {
	return &VisionService{
		config: cfg,
		client: &http.Client{},
	}
}

func (s *VisionService) post(endpoint string, image io.Reader, filename string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, image); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

func (s *VisionService) DetectEmotion(image io.Reader, filename string) (*EmotionResult, error) {
	var result EmotionResult
	if err := s.post("/detect_emotion", image, filename, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *VisionService) TrackEngagement(image io.Reader, filename string) (*EngagementResult, error) {
	var result EngagementResult
	if err := s.post("/track_engagement", image, filename, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
