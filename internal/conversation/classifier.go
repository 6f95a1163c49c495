package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// IntentClassifier maps a free-text customer message onto the closed intent
// set using a single LLM call. Responses that do not exactly name a known
// intent fall back to IntentHumanAgent; there is no retry.
type IntentClassifier struct {
	llm     LLMClient
	modelID string
	logger  *logging.Logger
	prompt  string
}

// NewIntentClassifier creates a classifier bound to the given model.
func NewIntentClassifier(llm LLMClient, modelID string, logger *logging.Logger) *IntentClassifier {
	if llm == nil {
		panic("conversation: LLM client cannot be nil")
	}
	if strings.TrimSpace(modelID) == "" {
		panic("conversation: classifier model id cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &IntentClassifier{
		llm:     llm,
		modelID: modelID,
		logger:  logger,
		prompt:  buildClassifierPrompt(),
	}
}

func buildClassifierPrompt() string {
	var intentList strings.Builder
	for _, intent := range AllIntents {
		fmt.Fprintf(&intentList, "- %s: %s\n", intent, intent.Description())
	}

	return fmt.Sprintf(`You are an AI assistant for a New Zealand tour and travel company. Your task is to classify the user's message into one of the predefined intents.

Available intents:
%s
First, think step by step about the user's request and what they're trying to accomplish.
Then, identify the SINGLE most appropriate intent from the list above that matches their request.

Output your answer as a single intent name from the list, without any additional text or explanation.`, intentList.String())
}

// Classify determines the intent of the user message. A classification model
// error is returned to the caller; an unparseable answer is not an error and
// resolves to IntentHumanAgent.
func (c *IntentClassifier) Classify(ctx context.Context, userInput string) (Intent, error) {
	resp, err := c.llm.Complete(ctx, LLMRequest{
		Model:       c.modelID,
		System:      []string{c.prompt},
		Messages:    []ChatMessage{{Role: ChatRoleUser, Content: userInput}},
		MaxTokens:   50,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("conversation: intent classification failed: %w", err)
	}

	intent := Intent(strings.TrimSpace(strings.ToLower(resp.Text)))
	if !intent.Valid() {
		c.logger.Warn("classifier returned unrecognized intent, routing to human agent",
			"raw_output", resp.Text,
		)
		return IntentHumanAgent, nil
	}
	return intent, nil
}
