// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fairedu/adapt/ent/llmrequestevent"
	"github.com/fairedu/adapt/ent/pipelinerun"
	"github.com/fairedu/adapt/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRunID is the schema descriptor for run_id field.
	llmrequesteventDescRunID := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultRunID holds the default value on creation for the run_id field.
	llmrequestevent.DefaultRunID = llmrequesteventDescRunID.Default.(string)
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
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescTitle is the schema descriptor for title field.
	pipelinerunDescTitle := pipelinerunFields[2].Descriptor()
	// pipelinerun.DefaultTitle holds the default value on creation for the title field.
	pipelinerun.DefaultTitle = pipelinerunDescTitle.Default.(string)
	// pipelinerunDescLanguage is the schema descriptor for language field.
	pipelinerunDescLanguage := pipelinerunFields[3].Descriptor()
	// pipelinerun.DefaultLanguage holds the default value on creation for the language field.
	pipelinerun.DefaultLanguage = pipelinerunDescLanguage.Default.(string)
	// pipelinerunDescErrorMessage is the schema descriptor for error_message field.
	pipelinerunDescErrorMessage := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultErrorMessage holds the default value on creation for the error_message field.
	pipelinerun.DefaultErrorMessage = pipelinerunDescErrorMessage.Default.(string)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[6].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	// pipelinerunDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinerunDescUpdatedAt := pipelinerunFields[7].Descriptor()
	// pipelinerun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinerun.DefaultUpdatedAt = pipelinerunDescUpdatedAt.Default.(func() time.Time)
	// pipelinerun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinerun.UpdateDefaultUpdatedAt = pipelinerunDescUpdatedAt.UpdateDefault.(func() time.Time)
}
