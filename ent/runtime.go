// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/chesscoach/ent/blunder"
	"github.com/abhisek/chesscoach/ent/llmrequestevent"
	"github.com/abhisek/chesscoach/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blunderFields := schema.Blunder{}.Fields()
	_ = blunderFields
	// blunderDescMotif is the schema descriptor for motif field.
	blunderDescMotif := blunderFields[7].Descriptor()
	// blunder.DefaultMotif holds the default value on creation for the motif field.
	blunder.DefaultMotif = blunderDescMotif.Default.(string)
	// blunderDescSeverity is the schema descriptor for severity field.
	blunderDescSeverity := blunderFields[8].Descriptor()
	// blunder.DefaultSeverity holds the default value on creation for the severity field.
	blunder.DefaultSeverity = blunderDescSeverity.Default.(string)
	// blunderDescExplanation is the schema descriptor for explanation field.
	blunderDescExplanation := blunderFields[9].Descriptor()
	// blunder.DefaultExplanation holds the default value on creation for the explanation field.
	blunder.DefaultExplanation = blunderDescExplanation.Default.(string)
	// blunderDescCreatedAt is the schema descriptor for created_at field.
	blunderDescCreatedAt := blunderFields[10].Descriptor()
	// blunder.DefaultCreatedAt holds the default value on creation for the created_at field.
	blunder.DefaultCreatedAt = blunderDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
