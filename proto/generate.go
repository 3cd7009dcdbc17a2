// Package llmv1 holds the generated types and client for the LLM sidecar
// service defined in llm.proto.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
