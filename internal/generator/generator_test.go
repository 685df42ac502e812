package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/models"
)

func newOfflineGenerator() *OpenAIGenerator {
	return NewOpenAIGenerator(config.OpenAI{}, logger.Nop())
}

func TestGenerateFallbackWithoutCredential(t *testing.T) {
	ctx := context.Background()
	g := newOfflineGenerator()

	for _, category := range models.Categories {
		for _, tone := range []models.Tone{models.ToneLight, models.ToneModerate, models.ToneSerious} {
			result := g.Generate(ctx, Request{Category: category, Tone: tone})

			assert.Equal(t, category, result.Category)
			assert.Equal(t, tone, result.Tone)
			assert.Equal(t, fallbackExcuses[category], result.Excuse)
			assert.True(t, strings.HasPrefix(result.Excuse, "안녕하세요 교수님"))
		}
	}
}

func TestGeneratePlaceholderKeyBehavesLikeMissing(t *testing.T) {
	g := NewOpenAIGenerator(config.OpenAI{APIKey: "default_key"}, logger.Nop())

	result := g.Generate(context.Background(), Request{Category: models.CategoryTransport, Tone: models.ToneModerate})
	assert.Equal(t, fallbackExcuses[models.CategoryTransport], result.Excuse)
}

func TestGenerateResolvesRandomCategory(t *testing.T) {
	ctx := context.Background()
	g := newOfflineGenerator()

	for i := range models.Categories {
		idx := i
		g.pick = func(int) int { return idx }

		result := g.Generate(ctx, Request{Category: models.CategoryRandom, Tone: models.ToneLight})

		assert.Equal(t, models.Categories[idx], result.Category)
		assert.NotEqual(t, models.CategoryRandom, result.Category)
		assert.Equal(t, fallbackExcuses[models.Categories[idx]], result.Excuse)
	}
}

func TestGenerateRemoteSuccess(t *testing.T) {
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, chatCompletionsPath, r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		content, _ := json.Marshal(map[string]string{"excuse": "안녕하세요 교수님, 생성된 핑계입니다."})
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": string(content)}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		APIKey:         "sk-test",
		BaseURL:        srv.URL,
		Model:          "gpt-4o",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	result := g.Generate(context.Background(), Request{
		Category:  models.CategoryFamily,
		Tone:      models.ToneSerious,
		Subject:   "자료구조",
		Timeframe: "오전 수업",
		UserInput: "병원 동행",
	})

	assert.Equal(t, "안녕하세요 교수님, 생성된 핑계입니다.", result.Excuse)
	assert.Equal(t, models.CategoryFamily, result.Category)
	assert.Equal(t, models.ToneSerious, result.Tone)

	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
	assert.InDelta(t, 0.8, gotBody.Temperature, 0.001)
	assert.Equal(t, 500, gotBody.MaxTokens)
	assert.Contains(t, gotBody.Messages[1].Content, "과목/수업: 자료구조")
	assert.Contains(t, gotBody.Messages[1].Content, "시간: 오전 수업")
	assert.Contains(t, gotBody.Messages[1].Content, "추가 상황 설명: 병원 동행")
}

func TestGenerateRemoteErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		APIKey:         "sk-test",
		BaseURL:        srv.URL,
		Model:          "gpt-4o",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	result := g.Generate(context.Background(), Request{Category: models.CategoryPersonal, Tone: models.ToneLight})
	assert.Equal(t, fallbackExcuses[models.CategoryPersonal], result.Excuse)
}

func TestGenerateRemoteMissingExcuseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "{}"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		APIKey:         "sk-test",
		BaseURL:        srv.URL,
		Model:          "gpt-4o",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	result := g.Generate(context.Background(), Request{Category: models.CategoryHealth, Tone: models.ToneModerate})
	assert.Equal(t, noExcuseInResponse, result.Excuse)
}

func TestBuildPromptOmitsEmptyOptionalValues(t *testing.T) {
	prompt := buildPrompt(Request{Category: models.CategoryHealth, Tone: models.ToneLight})

	assert.Contains(t, prompt, "상황 유형: "+categoryPrompts[models.CategoryHealth])
	assert.Contains(t, prompt, "톤: "+toneInstructions[models.ToneLight])
	assert.NotContains(t, prompt, "과목/수업:")
	assert.NotContains(t, prompt, "시간:")
	assert.NotContains(t, prompt, "추가 상황 설명:")
	assert.Contains(t, prompt, `"category": "health"`)
	assert.Contains(t, prompt, `"tone": "light"`)
}
