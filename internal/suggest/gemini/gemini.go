package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"workcal/internal/core"
	"workcal/internal/log"
	"workcal/internal/suggest"

	"google.golang.org/genai"
)

// DefaultModel is used when no model id is configured.
const DefaultModel = "gemini-2.5-flash"

// Client asks a Gemini model for the public holidays of one country/month,
// constrained to a JSON array of {date, name} objects by a response schema.
type Client struct {
	client *genai.Client
	model  string
	logger *log.Logger
}

// Ensure interface conformance
var _ suggest.Fetcher = (*Client)(nil)

// New creates a Gemini-backed holiday fetcher.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: log.New(log.DefaultConfig()).WithComponent(log.ComponentGemini),
	}, nil
}

// NewFromEnv creates a client from GEMINI_API_KEY and GEMINI_MODEL.
func NewFromEnv(ctx context.Context) (*Client, error) {
	return New(ctx,
		strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		strings.TrimSpace(os.Getenv("GEMINI_MODEL")))
}

// holidaySchema constrains the completion to an array of {date, name}.
var holidaySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date": {Type: genai.TypeString, Description: "Date in YYYY-MM-DD format"},
			"name": {Type: genai.TypeString, Description: "Name of the holiday"},
		},
		Required: []string{"date", "name"},
	},
}

// FetchHolidays implements suggest.Fetcher. The model output is untrusted:
// entries that are malformed or fall outside the requested month are dropped
// before anything reaches the caller.
func (c *Client) FetchHolidays(ctx context.Context, country string, year int, month time.Month) ([]core.Holiday, error) {
	prompt := fmt.Sprintf(
		"List all major public holidays for %s in %s %d. "+
			"Return the specific date in YYYY-MM-DD format and the name of the holiday.",
		country, month.String(), year)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   holidaySchema,
		})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		c.logger.InfoContext(ctx, "Gemini returned no holiday text",
			log.FieldCountry, country, log.FieldYear, year, log.FieldMonth, int(month))
		return nil, nil
	}

	holidays, dropped, err := parseHolidays([]byte(text), year, month)
	if err != nil {
		return nil, fmt.Errorf("parse holidays: %w", err)
	}
	if dropped > 0 {
		c.logger.WarnContext(ctx, "Dropped malformed holiday suggestions",
			log.FieldCountry, country, log.FieldYear, year, log.FieldMonth, int(month),
			"dropped", dropped)
	}

	c.logger.InfoContext(ctx, "Fetched holiday suggestions",
		log.FieldCountry, country, log.FieldYear, year, log.FieldMonth, int(month),
		log.FieldHolidays, len(holidays))

	return holidays, nil
}
