package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adityakr/bazaari/config"
	pkghttp "github.com/adityakr/bazaari/pkg/http"
	"github.com/adityakr/bazaari/pkg/logger"
)

// AIService proxies product description generation to the Gemini API so
// the API key never reaches the browser.
type AIService struct {
	client *pkghttp.Client
}

// NewAIService builds the service with a 30s outbound timeout.
func NewAIService() *AIService {
	return &AIService{
		client: pkghttp.New().WithTimeout(30 * time.Second),
	}
}

// Enabled reports whether an API key is configured.
func (s *AIService) Enabled() bool { return config.AIAPIKey() != "" }

type aiPart struct {
	Text string `json:"text"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
}

type generateRequest struct {
	Contents []aiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content aiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription asks the model for a short product description.
func (s *AIService) GenerateDescription(ctx context.Context, productName string, keywords []string) (string, error) {
	if !s.Enabled() {
		return "", ErrServiceUnavailable
	}

	prompt := fmt.Sprintf(
		"You are a professional e-commerce copywriter. Write a compelling, brief, and enticing product description for the following product. Product Name: %s Keywords to include: %s. The description should be a single paragraph, no more than 4 sentences.",
		productName, strings.Join(keywords, ", "),
	)

	req := generateRequest{
		Contents: []aiContent{{Parts: []aiPart{{Text: prompt}}}},
	}

	url := config.AIEndpoint() + "?key=" + config.AIAPIKey()

	var resp generateResponse
	if err := s.client.PostJSON(ctx, url, req, &resp); err != nil {
		logger.Error("ai: generation call failed", "error", err)
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ai: empty response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
