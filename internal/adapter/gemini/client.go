package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-zajac/ghroast/internal/app"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// ContentGenerator can generate model content. Implemented by *genai.Models.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client generates roasts with gemini models.
// This struct is an adapter for app.Generator.
type Client struct {
	models ContentGenerator
	model  string
}

var _ app.Generator = &Client{}

// NewClient creates new Client using gemini api with given api key.
func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return NewClientWithGenerator(gc.Models, model), nil
}

// NewClientWithGenerator creates new Client on top of given generator.
func NewClientWithGenerator(models ContentGenerator, model string) *Client {
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		models: models,
		model:  model,
	}
}

// Generate sends prompt as a single user turn and returns text of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &app.GenerationError{Err: err}
	}
	if resp == nil {
		return "", &app.GenerationError{}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &app.GenerationError{}
	}

	return text, nil
}

// Model returns name of the model used for generation.
func (c *Client) Model() string {
	return c.model
}
