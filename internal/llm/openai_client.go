package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/karltiama/endurorevamp-sub001/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical endurance training assistant.

You receive aggregated training load metrics, a daily load series, active goals, and the current weekly plan for a single athlete. You must base your conclusions only on the provided data.

Your goals:
- Describe the athlete's current training state in clear, neutral language.
- Explain what the acute/chronic balance and ramp rate mean for the coming days.
- Relate progress on active goals to the recent training pattern.
- Comment on whether the weekly plan fits the current load state.
- Give practical suggestions about pacing, rest, and session ordering.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention injuries, conditions, doctors, or treatment.
- Focus only on training behavior (effort distribution, rest days, progression rate).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the athlete's training state, referencing the balance and ramp numbers.",
  "observations": [
    "3-6 bullet points about trends in daily load, consistency, and acute vs chronic load.",
    "If goals are present, at least one item about goal progress.",
    "If a plan is present, one item about how the plan fits the current state."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about progression rate if the ramp rate is high.",
    "Include at least one suggestion about rest if the balance is strongly negative."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this athlete's training data.

- "metrics" carries the rolling state: "acute" (7-day load), "chronic" (42-day load), "balance" (chronic minus acute, negative means fatigued), "ramp_rate" (week-over-week change), and a coarse "status".
- "points" is the recent daily load series (one entry per training day).
- "goals" lists active goals with target and current progress.
- "plan", when present, is the current 7-day workout plan with per-day sessions and weekly totals.
- "thresholds" shows the heart-rate and power calibration the numbers are based on; "estimated" true means no explicit profile values were set.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachLLM is the interface for generating a training summary using an LLM.
type CoachLLM interface {
	// GenerateSummary takes a context object and returns an LLM-generated summary.
	GenerateSummary(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachSummary, error)
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating summaries.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateSummary calls OpenAI to narrate the athlete's training state.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachSummary, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(coachCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.CoachSummary
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
