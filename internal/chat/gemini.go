package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/clinic"
)

// GeminiResponder answers chat messages with Google's Gemini API.
type GeminiResponder struct {
	client  *genai.Client
	modelID string
	catalog *catalog.Catalog
	info    clinic.Info
}

// NewGeminiResponder creates a Gemini-backed responder.
func NewGeminiResponder(ctx context.Context, apiKey, modelID string, c *catalog.Catalog, info clinic.Info) (*GeminiResponder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create gemini client: %w", err)
	}

	return &GeminiResponder{
		client:  client,
		modelID: modelID,
		catalog: c,
		info:    info,
	}, nil
}

// Respond sends the message to Gemini with the lab persona as the system
// instruction and returns the first candidate's text.
func (g *GeminiResponder) Respond(ctx context.Context, user, message, lang string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	model.SystemInstruction = genai.NewUserContent(genai.Text(g.systemPrompt(user, lang)))

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("chat: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("chat: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("chat: gemini returned empty content")
	}

	var reply strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}
	if strings.TrimSpace(reply.String()) == "" {
		return "", errors.New("chat: gemini returned empty text")
	}
	return strings.TrimSpace(reply.String()), nil
}

func (g *GeminiResponder) systemPrompt(user, lang string) string {
	if strings.TrimSpace(user) == "" {
		user = "Customer"
	}
	languageInstruction := "Reply in English."
	if lang == "hi" {
		languageInstruction = "Reply in Hindi."
	}

	var prices strings.Builder
	for _, t := range g.catalog.List() {
		fmt.Fprintf(&prices, "- %s (%s): %d, preparation: %s\n", t.Name, t.ID, t.Price, t.Prep)
	}

	return fmt.Sprintf(
		"You are the %s chatbot. User name: %s. "+
			"Use a friendly tone and help with lab tests, appointment bookings, and loyalty offers. "+
			"Lab address: %s. If the user asks about test prices, use this list:\n%s%s",
		g.info.Name, user, g.info.Address, prices.String(), languageInstruction,
	)
}

// Close releases resources held by the Gemini client.
func (g *GeminiResponder) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
