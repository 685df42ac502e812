// Package generator produces Korean class-absence excuses, preferring the
// OpenAI chat-completions API and falling back to static texts whenever the
// remote service is unavailable. Generation never fails from the caller's
// point of view.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/go-resty/resty/v2"
	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/models"
)

const chatCompletionsPath = "/v1/chat/completions"

// placeholderAPIKey is treated the same as a missing credential.
const placeholderAPIKey = "default_key"

// noExcuseInResponse is returned as the excuse text when the remote call
// succeeds but the response carries no usable excuse field.
const noExcuseInResponse = "죄송합니다. 핑계 생성에 실패했습니다."

// Request describes one generation call. Category may be "random"; it is
// resolved to a concrete category before anything else happens.
type Request struct {
	Category  models.Category
	Tone      models.Tone
	UserInput string
	Subject   string
	Timeframe string
}

// Result is the outcome of a generation call. Category is always concrete,
// even when the request asked for "random".
type Result struct {
	Excuse   string
	Category models.Category
	Tone     models.Tone
}

// Generator produces excuse texts.
type Generator interface {
	Generate(ctx context.Context, req Request) Result
}

// OpenAIGenerator implements Generator over the chat-completions API with
// static fallbacks.
type OpenAIGenerator struct {
	client *resty.Client
	cfg    config.OpenAI

	// pick selects the concrete category index for "random" requests.
	// Swapped in tests for determinism.
	pick func(n int) int

	log *logger.Logger
}

// NewOpenAIGenerator builds a generator from the OpenAI configuration.
func NewOpenAIGenerator(cfg config.OpenAI, log *logger.Logger) *OpenAIGenerator {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey)

	return &OpenAIGenerator{
		client: client,
		cfg:    cfg,
		pick:   rand.Intn,
		log:    log,
	}
}

// Generate resolves the category, then either calls the remote API or serves
// a static fallback. Remote failures of any kind degrade to the fallback;
// they are logged, never surfaced.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) Result {
	if req.Category == models.CategoryRandom {
		req.Category = models.Categories[g.pick(len(models.Categories))]
	}

	if !g.hasCredential() {
		return Result{Excuse: fallbackFor(req.Category), Category: req.Category, Tone: req.Tone}
	}

	excuse, err := g.callRemote(ctx, req)
	if err != nil {
		g.log.Warn().Err(err).Str("category", string(req.Category)).Msg("remote generation failed, serving fallback")
		return Result{Excuse: fallbackFor(req.Category), Category: req.Category, Tone: req.Tone}
	}

	return Result{Excuse: excuse, Category: req.Category, Tone: req.Tone}
}

func (g *OpenAIGenerator) hasCredential() bool {
	return g.cfg.APIKey != "" && g.cfg.APIKey != placeholderAPIKey
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGenerator) callRemote(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: 0.8,
		MaxTokens:   500,
	}
	body.ResponseFormat.Type = "json_object"

	var chatResp chatResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&chatResp).
		Post(chatCompletionsPath)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &remoteError{status: resp.StatusCode()}
	}

	if len(chatResp.Choices) == 0 {
		return noExcuseInResponse, nil
	}

	var parsed struct {
		Excuse string `json:"excuse"`
	}
	if err = json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &parsed); err != nil || parsed.Excuse == "" {
		return noExcuseInResponse, nil
	}

	return parsed.Excuse, nil
}

type remoteError struct {
	status int
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("chat completions returned status %d", e.status)
}
