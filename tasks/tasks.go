package tasks

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ---
// QUEUE DEFINITIONS
// ---
// Pipeline stages in order. Each worker handler chains the next stage
// by pushing onto the following queue.
const (
	// QueueHeadline is the first step: generate a unique headline.
	QueueHeadline = "q_script_headline"

	// QueueOutline expands the headline into an ordered outline.
	QueueOutline = "q_script_outline"

	// QueueSections expands each outline point into narration prose.
	QueueSections = "q_script_sections"

	// QueueVoiceover synthesizes the article into narration audio.
	QueueVoiceover = "q_script_voiceover"

	// QueueTranscript transcribes the narration audio to an SRT track.
	QueueTranscript = "q_script_transcript"

	// QueueSegment parses, groups, and enriches the transcript chunks.
	QueueSegment = "q_script_segment"

	// QueueFootage searches stock video clips for each chunk.
	QueueFootage = "q_script_footage"
)

// ---
// TASK PAYLOADS
// ---
// These are JSON-marshalled and pushed to Redis. TaskID correlates one
// script's journey through the queues in the logs.

type ScriptTaskPayload struct {
	TaskID   string `json:"task_id"`
	ScriptID uint   `json:"script_id"`
}

// NewScriptTask builds a payload with a fresh task ID.
func NewScriptTask(scriptID uint) ScriptTaskPayload {
	return ScriptTaskPayload{TaskID: uuid.NewString(), ScriptID: scriptID}
}

// Next carries the task ID forward onto the next queue.
func (p ScriptTaskPayload) Next() ScriptTaskPayload {
	return ScriptTaskPayload{TaskID: p.TaskID, ScriptID: p.ScriptID}
}

// Marshal creates a JSON payload for a task.
func Marshal(payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
