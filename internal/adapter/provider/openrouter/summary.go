package openrouter

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

// DefaultSummarySystemMessage is used when a SummaryRequest has no system message.
const DefaultSummarySystemMessage = "You are a helpful assistant that generates concise summaries."

const summaryPrompt = `Generate a concise summary of the following content:

%s

Please provide the summary in the following format:
TITLE: <generated title>
CONTENT: <generated content>`

var (
	titleRe   = regexp.MustCompile(`(?s)TITLE:\s*(.*?)(?:\nCONTENT:|\z)`)
	contentRe = regexp.MustCompile(`(?s)CONTENT:\s*(.*)\z`)
)

// SummaryRequest asks for a titled summary of the given parts.
type SummaryRequest struct {
	Parts         []string
	SystemMessage string
	Model         string
	MaxTokens     *int
	Temperature   *float64
	Timeout       time.Duration
}

// Summary is a parsed summary response.
type Summary struct {
	Title   string
	Content string
}

// GenerateSummary joins the non-blank parts, asks the model for a summary in
// TITLE/CONTENT form and parses the answer.
func (c *Client) GenerateSummary(ctx context.Context, req SummaryRequest) (*Summary, error) {
	kept := make([]string, 0, len(req.Parts))
	for _, p := range req.Parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, domain.NewValidationError("content", "required")
	}

	system := req.SystemMessage
	if system == "" {
		system = DefaultSummarySystemMessage
	}

	result, err := c.CompleteChatRequest(ctx, ChatRequest{
		SystemMessage: system,
		UserMessage:   strings.Replace(summaryPrompt, "%s", strings.Join(kept, "\n\n"), 1),
		Model:         req.Model,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
		Timeout:       req.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return ParseSummary(result.Content)
}

// ParseSummary extracts the TITLE and CONTENT sections of a model answer.
func ParseSummary(text string) (*Summary, error) {
	tm := titleRe.FindStringSubmatch(text)
	cm := contentRe.FindStringSubmatch(text)
	if tm == nil || cm == nil || strings.TrimSpace(tm[1]) == "" || strings.TrimSpace(cm[1]) == "" {
		return nil, &ParsingError{Message: "failed to parse summary: missing title or content", Body: text}
	}

	return &Summary{
		Title:   strings.TrimSpace(tm[1]),
		Content: strings.TrimSpace(cm[1]),
	}, nil
}
