package tasks

import (
	"encoding/json"
	"testing"
)

func TestNewScriptTask(t *testing.T) {
	task := NewScriptTask(42)
	if task.ScriptID != 42 {
		t.Errorf("ScriptID = %d, want 42", task.ScriptID)
	}
	if task.TaskID == "" {
		t.Error("TaskID is empty")
	}
	if other := NewScriptTask(42); other.TaskID == task.TaskID {
		t.Error("TaskID not unique across tasks")
	}
}

func TestNextKeepsTaskID(t *testing.T) {
	task := NewScriptTask(7)
	next := task.Next()
	if next.TaskID != task.TaskID || next.ScriptID != task.ScriptID {
		t.Errorf("Next() = %+v, want same IDs as %+v", next, task)
	}
}

func TestMarshal(t *testing.T) {
	task := NewScriptTask(7)
	payload, err := Marshal(task)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded ScriptTaskPayload
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != task {
		t.Errorf("round trip = %+v, want %+v", decoded, task)
	}
}
