// Package ai fronts the Gemini chat-completion API with a fixed system
// persona.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// systemPersona is the process-wide persona prepended to every exchange.
const systemPersona = `You are the Greanium AI, the built-in intelligence of the Greanium OS.
Greanium is a personal operating system created by Cormac Greaney.
Your primary role is to assist Cormac with knowledge, explanations, and guidance.
At the same time, you should also be welcoming and helpful to other people who may occasionally use the system.

Guidelines:
- Identify yourself as Greanium AI, the assistant of Greanium OS.
- Be helpful, clear, and practical.
- Treat Cormac Greaney as the system's owner, while also assisting any other users respectfully.
- Keep responses professional but approachable.
- If asked about context, explain that you operate inside Greanium OS, a personal web-based OS created by your creator Cormac Greaney.
`

// Client proxies prompts to the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a chat client with the given API key and model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{
		genai: client,
		model: model,
	}, nil
}

// Reply sends the persona plus the user prompt and returns the completion
// text. Upstream errors are returned as-is for the route to surface.
func (c *Client) Reply(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPersona, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
