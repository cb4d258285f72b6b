package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/natjohn/wellbee/internal/chat"
	"github.com/natjohn/wellbee/internal/constants"
	"github.com/natjohn/wellbee/internal/keyring"
	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/models"
)

type ChatCmd struct {
	Message []string `arg:"" optional:"" help:"Message to send. Omit for an interactive session."`

	Endpoint string `help:"Chat completions endpoint." default:"${chat_endpoint}"`
	Model    string `help:"Model identifier." default:"${chat_model}"`
}

func (c *ChatCmd) Run(ctx *Context) error {
	locked, err := ctx.Engine.IsFeatureLocked(constants.FeatureChat)
	if err != nil {
		return err
	}
	if locked {
		fmt.Println("🔒 Chat is a premium feature and your trial has ended.")
		fmt.Println("Run 'wellbee subscribe' to unlock it.")
		return nil
	}

	snapshot, err := ctx.Engine.ChatContext()
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey()
	if err != nil {
		return err
	}
	client := chat.NewClient(c.Endpoint, c.Model, apiKey)

	if len(c.Message) > 0 {
		return sendMessage(client, nil, strings.Join(c.Message, " "), snapshot)
	}

	// Interactive session. The transcript lives in memory for the session
	// only; recent messages are replayed with each request for context.
	fmt.Println("Chat with your wellness assistant. Type 'exit' to quit.")
	var transcript []models.ChatMessage
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		var reply strings.Builder
		fmt.Print("bee> ")
		err := client.Stream(context.Background(), transcript, line, snapshot, func(token string) {
			reply.WriteString(token)
			fmt.Print(token)
		})
		fmt.Println()
		if err != nil {
			logger.Warn("Chat request failed", "error", err)
			fmt.Println(chat.FallbackMessage)
			continue
		}

		transcript = append(transcript,
			models.ChatMessage{ID: uuid.NewString(), Role: models.ChatRoleUser, Content: line},
			models.ChatMessage{ID: uuid.NewString(), Role: models.ChatRoleAssistant, Content: reply.String()},
		)
	}
	return scanner.Err()
}

func sendMessage(client *chat.Client, transcript []models.ChatMessage, message string, snapshot models.ChatContext) error {
	err := client.Stream(context.Background(), transcript, message, snapshot, func(token string) {
		fmt.Print(token)
	})
	fmt.Println()
	if err != nil {
		logger.Warn("Chat request failed", "error", err)
		fmt.Println(chat.FallbackMessage)
	}
	return nil
}

// resolveAPIKey prefers the environment variable, then the OS keyring.
func resolveAPIKey() (string, error) {
	if key := os.Getenv(constants.ChatAPIKeyEnv); key != "" {
		return key, nil
	}
	key, err := keyring.GetAPIKey()
	if err == keyring.ErrNotFound {
		return "", fmt.Errorf("no chat API key configured; set %s or run 'wellbee chat key set'", constants.ChatAPIKeyEnv)
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

type ChatKeySetCmd struct {
	Key string `arg:"" optional:"" help:"API key. Omit to be prompted without echoing."`
}

func (c *ChatKeySetCmd) Run(ctx *Context) error {
	key := c.Key
	if key == "" {
		fmt.Print("API key: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return scanner.Err()
		}
		key = strings.TrimSpace(scanner.Text())
	}
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	if err := keyring.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	fmt.Println("✓ API key stored in the OS keyring.")
	return nil
}

type ChatKeyClearCmd struct{}

func (c *ChatKeyClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No API key stored.")
			return nil
		}
		return fmt.Errorf("failed to remove API key: %w", err)
	}
	fmt.Println("✓ API key removed from the OS keyring.")
	return nil
}
