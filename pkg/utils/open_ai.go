package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// TripQuery is the structured result of extracting a free-text travel query.
// Duration uses the XDYN code, e.g. "5D4N".
type TripQuery struct {
	Location string `json:"location"`
	Duration string `json:"duration"`
}

type TripExtractorInterface interface {
	ExtractTrip(ctx context.Context, query string) (TripQuery, error)
}

type OpenAITripExtractor struct {
	client *openai.Client
	dev    bool
}

func NewOpenAITripExtractor() TripExtractorInterface {
	return &OpenAITripExtractor{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		dev:    os.Getenv("APP_ENV") == "dev",
	}
}

func (e *OpenAITripExtractor) ExtractTrip(ctx context.Context, query string) (TripQuery, error) {
	if e.dev {
		return TripQuery{Location: "Montreal", Duration: "5D4N"}, nil
	}

	prompt := fmt.Sprintf("%q\n\nFor the above string, extract the location and the duration "+
		"in the XDYN format, where X is the number of days and Y is the number of nights. "+
		"Return the response in JSON format with keys \"location\" and \"duration\".", query)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return TripQuery{}, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return TripQuery{}, ErrAIUnavailable
	}

	var out TripQuery
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return TripQuery{}, fmt.Errorf("%w: bad extraction payload: %v", ErrAIUnavailable, err)
	}
	if out.Location == "" || out.Duration == "" {
		return TripQuery{}, ErrInvalidInput
	}
	return out, nil
}
