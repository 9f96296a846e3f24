package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-analyzer/internal/logger"
)

const defaultModel = "gemini-1.5-flash"

const checkPrompt = `Find spelling, grammar, and capitalization errors in the resume text below.
Return a JSON array (no markdown fences) of objects with fields:
- "kind": one of "typo", "grammar", "capitalization"
- "message": a short description of the error
- "snippet": the offending text

Return [] if there are no errors.

Text:
%s`

// GeminiChecker implements Checker on the Gemini API. The session is created
// once on first use; if initialization fails the checker is marked
// permanently failed so later requests do not retry the expensive setup.
type GeminiChecker struct {
	apiKey string
	model  string
	logger *zap.Logger
	cache  *Cache

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGeminiChecker builds a checker. The API connection is not opened until
// the first Check call.
func NewGeminiChecker(apiKey string, logger *zap.Logger) *GeminiChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiChecker{
		apiKey: apiKey,
		model:  defaultModel,
		logger: logger,
		cache:  NewCache(0),
	}
}

// Check analyzes text, memoizing results by content hash.
func (c *GeminiChecker) Check(ctx context.Context, text string) ([]Error, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if cached, ok := c.cache.Get(text); ok {
		return cached, nil
	}

	if err := c.init(ctx); err != nil {
		return nil, err
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(checkPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("grammar check failed: %w", err)
	}

	raw, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	results, err := parseErrors(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("grammar check complete",
		zap.Int("errors", len(results)),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)))

	c.cache.Put(text, results)
	return results, nil
}

// init creates the shared session exactly once per process. An init failure
// is sticky.
func (c *GeminiChecker) init(ctx context.Context) error {
	c.initOnce.Do(func() {
		if c.apiKey == "" {
			c.initErr = fmt.Errorf("grammar checker API key is empty")
			return
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			c.initErr = fmt.Errorf("failed to create grammar session: %w", err)
			c.logger.Warn("grammar session initialization failed; grammar checks disabled",
				zap.Error(err))
			return
		}
		c.client = client
	})
	return c.initErr
}

// Close releases the underlying session, if one was created.
func (c *GeminiChecker) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in grammar response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in grammar response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in grammar response")
	}
	return strings.Join(parts, ""), nil
}

// parseErrors decodes the model output, tolerating markdown fences and
// remapping unknown kinds to "grammar".
func parseErrors(raw string) ([]Error, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var results []Error
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, fmt.Errorf("failed to parse grammar response: %w", err)
	}
	for i := range results {
		switch results[i].Kind {
		case KindTypo, KindGrammar, KindCapitalization:
		default:
			results[i].Kind = KindGrammar
		}
	}
	return results, nil
}
