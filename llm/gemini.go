package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the Gemini API for the three things the assistant needs:
// free-form chat, schedule-priorities extraction via the PlanSemanal
// tool, and one-shot structured generation (milestones, exam plans).
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		genai: gc,
		model: config.GetEnv("GEMINI_MODEL", defaultModel),
	}, nil
}

// Chat continues a plain conversation with the full history.
func (c *Client) Chat(ctx context.Context, history []types.ChatMessage) (string, error) {
	contents := formatHistory(history)
	if len(contents) == 0 {
		contents = genai.Text("Genera un mensaje de bienvenida para un estudiante de la UPN.")
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: textContent(chatSystemInstruction),
		Temperature:       genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty chat response")
	}
	return text, nil
}

// ExtractPriorities asks the model to call the PlanSemanal tool with
// the user's scheduling preferences. The boolean reports whether the
// model actually invoked the tool.
func (c *Client) ExtractPriorities(ctx context.Context, prompt string, recommendedHours float64) (schedule.Priorities, bool, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: textContent(planSystemInstruction(recommendedHours)),
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{planSemanalTool()}},
		},
		Temperature: genai.Ptr[float32](0.3),
	})
	if err != nil {
		return schedule.Priorities{}, false, fmt.Errorf("plan request failed: %w", err)
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		config.Logger.Warn("model did not invoke PlanSemanal, falling back to chat")
		return schedule.Priorities{}, false, nil
	}

	var patch schedule.Priorities
	if err := decodeArgs(calls[0].Args, &patch); err != nil {
		return schedule.Priorities{}, false, fmt.Errorf("failed to decode PlanSemanal args: %w", err)
	}
	return patch, true, nil
}

// GenerateMilestones produces a project's milestone list as structured
// JSON parsed out of the model text.
func (c *Client) GenerateMilestones(ctx context.Context, profile *types.UserProfile, req types.CreateProjectRequest) ([]types.Milestone, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(milestonePrompt(profile, req)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("milestone request failed: %w", err)
	}

	var milestones []types.Milestone
	if err := unmarshalModelJSON(resp.Text(), &milestones); err != nil {
		return nil, fmt.Errorf("failed to parse milestones: %w", err)
	}
	return milestones, nil
}

// GenerateExamPlan produces study blocks for the days leading up to the
// given exams. Crisis mode compresses everything into intensive
// last-minute sessions.
func (c *Client) GenerateExamPlan(ctx context.Context, profile *types.UserProfile, exams []types.ExamItem, crisis bool) ([]schedule.Block, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(examPlanPrompt(profile, exams, crisis)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("exam plan request failed: %w", err)
	}

	var blocks []schedule.Block
	if err := unmarshalModelJSON(resp.Text(), &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse exam plan: %w", err)
	}
	return blocks, nil
}

// formatHistory converts the frontend's message list to Gemini
// contents, mapping "assistant" to the model role and skipping
// non-text entries.
func formatHistory(history []types.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		if msg.Text == "" {
			continue
		}
		var role genai.Role = genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}

func textContent(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// decodeArgs converts a tool call's argument map into a typed struct
// through a JSON round trip.
func decodeArgs(args map[string]any, out any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// unmarshalModelJSON extracts the JSON payload from possibly chatty
// model text and decodes it.
func unmarshalModelJSON(text string, out any) error {
	payload, ok := ExtractJSON(text)
	if !ok {
		return fmt.Errorf("no valid JSON found in model response")
	}
	return json.Unmarshal([]byte(payload), out)
}
