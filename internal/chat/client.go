// Package chat is the boundary to the external assistant service. The
// engine only supplies a context snapshot and renders the reply stream;
// chat failures never touch engine state.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/natjohn/wellbee/internal/constants"
	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/models"
)

var (
	// ErrRateLimited maps HTTP 429 from the gateway.
	ErrRateLimited = errors.New("rate limited, please try again later")
	// ErrPaymentRequired maps HTTP 402 from the gateway.
	ErrPaymentRequired = errors.New("payment required")
)

// FallbackMessage is appended to the transcript when the service fails.
const FallbackMessage = "Oops! 🐝 I'm having trouble connecting right now. Please try again in a moment!"

const systemPrompt = `You are a friendly, supportive, and motivating wellness assistant. You help users with their daily wellness routines, diet plans, and lifestyle improvements.

Your personality:
- Warm, encouraging, and never judgmental
- Keep responses concise but helpful (2-3 paragraphs max)
- Use emojis sparingly to keep things friendly

You can help with:
1. Explaining why certain routines or habits are beneficial
2. Suggesting alternatives for meals or exercises
3. Motivating users when they feel like skipping routines
4. Answering questions about nutrition, hydration, sleep, and exercise
5. Explaining how cheat days work and when to use them
6. Providing tips for staying disciplined and building habits

Guidelines:
- If users want to skip routines, gently encourage them but respect their choice
- If they ask about meal replacements, suggest healthy alternatives
- If they're struggling with motivation, provide actionable, simple tips
- Always be supportive - no guilt-tripping!
- If you don't know something, admit it and suggest they consult a professional

Remember: You're a wellness buddy, not a doctor. For medical advice, always recommend consulting healthcare professionals.`

// Client streams completions from an OpenAI-compatible endpoint.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, model, apiKey string) *Client {
	if endpoint == "" {
		endpoint = constants.DefaultChatEndpoint
	}
	if model == "" {
		model = constants.DefaultChatModel
	}
	return &Client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Stream      bool         `json:"stream"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
}

func contextMessage(c models.ChatContext) string {
	return fmt.Sprintf(`
Current user context:
- Name: %s
- Goal: %s
- Activity Level: %s
- Wake up time: %s
- Bed time: %s
- Daily water intake goal: %d glasses
- Today's workout: %s (%d minutes)
`, c.UserName, c.Goal, c.ActivityLevel, c.WakeUpTime, c.BedTime, c.WaterIntake, c.WorkoutName, c.WorkoutDuration)
}

func (c *Client) buildRequest(transcript []models.ChatMessage, userMessage string, snapshot models.ChatContext) apiRequest {
	msgs := []apiMessage{{Role: "system", Content: systemPrompt + contextMessage(snapshot)}}

	// Only the most recent transcript entries are sent for context.
	history := transcript
	if len(history) > constants.ChatHistoryWindow {
		history = history[len(history)-constants.ChatHistoryWindow:]
	}
	for _, m := range history {
		msgs = append(msgs, apiMessage{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, apiMessage{Role: "user", Content: userMessage})

	return apiRequest{
		Model:       c.model,
		Messages:    msgs,
		Stream:      true,
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// Stream sends userMessage with the transcript and context snapshot, and
// invokes onToken for each content token as it arrives. Connection
// attempts are retried with exponential backoff; 4xx responses and
// interruptions mid-stream are not.
func (c *Client) Stream(ctx context.Context, transcript []models.ChatMessage, userMessage string, snapshot models.ChatContext, onToken func(string)) error {
	body, err := json.Marshal(c.buildRequest(transcript, userMessage, snapshot))
	if err != nil {
		return fmt.Errorf("failed to encode chat request: %w", err)
	}

	connect := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.Warn("Chat connection attempt failed", "error", err)
			return nil, err
		}
		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			resp.Body.Close()
			return nil, backoff.Permanent(ErrRateLimited)
		case resp.StatusCode == http.StatusPaymentRequired:
			resp.Body.Close()
			return nil, backoff.Permanent(ErrPaymentRequired)
		case resp.StatusCode >= 500:
			resp.Body.Close()
			return nil, fmt.Errorf("assistant service error (status %d)", resp.StatusCode)
		default:
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("assistant service error (status %d)", resp.StatusCode))
		}
	}

	resp, err := backoff.Retry(ctx, connect,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	parser := &StreamParser{}
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, token := range parser.Feed(buf[:n]) {
				onToken(token)
			}
		}
		if parser.Done() {
			return nil
		}
		if readErr == io.EOF {
			// Stream ended without the explicit terminator; treat what we
			// received as complete.
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("chat stream interrupted: %w", readErr)
		}
	}
}
