package llm

import (
	"context"
	"fmt"

	llmv1 "github.com/querra-ai/querra/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient calls the dedicated LLM service. grpc.NewClient dials lazily;
// the connection is established on the first Complete call.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
	model  string
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient creates a client against the LLM service at addr.
func NewGRPCClient(addr, model string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
		model:  model,
	}, nil
}

// Complete sends the conversation and returns the completion text.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := req.conversation()
	pbMessages := make([]*llmv1.Message, len(messages))
	for i, m := range messages {
		pbMessages[i] = &llmv1.Message{Role: m.Role, Content: m.Content}
	}

	pbReq := &llmv1.CompleteRequest{
		Messages: pbMessages,
		Model:    c.model,
	}
	if req.MaxTokens > 0 {
		pbReq.MaxTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		pbReq.Temperature = req.Temperature
	}

	resp, err := c.client.Complete(ctx, pbReq)
	if err != nil {
		return nil, fmt.Errorf("LLM Complete call failed: %w", err)
	}
	return &Response{
		Text:         resp.GetText(),
		InputTokens:  int(resp.GetInputTokens()),
		OutputTokens: int(resp.GetOutputTokens()),
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
