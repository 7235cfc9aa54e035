// Package llm defines the completion types and provider abstraction the
// engine uses for answer generation and method selection.
//
// The central abstraction is Completer: a single-call, non-streaming chat
// completion. The engine treats every Completer as unreliable by contract;
// callers that need a guaranteed outcome pair the model call with a
// deterministic fallback rather than retrying.
//
//	client := llm.NewOpenAI("http://localhost:11434/v1", "", "llama3")
//	resp, err := client.Complete(ctx, []llm.Message{
//	    {Role: llm.RoleSystem, Content: "You are a synthesis assistant."},
//	    {Role: llm.RoleUser, Content: question},
//	}, llm.WithTemperature(0.1))
//
// NewOpenAI speaks the OpenAI chat completion API, which covers hosted
// OpenAI as well as local OpenAI-compatible servers.
package llm
