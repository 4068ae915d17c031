package reconcile

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the structured document a reconciliation run reports back to
// the orchestration host. It mirrors the classic automation-module shape:
// changed indicates whether any remote mutation happened, result carries
// the operation outcome (a project ID, a deletion marker), msg carries a
// human-readable note.
type Result struct {
	Changed   bool    `json:"changed"`
	Result    *string `json:"result"`
	Msg       *string `json:"msg"`
	ProjectID *string `json:"project_id,omitempty"`
}

// MarkChanged records that a remote mutation happened.
func (r *Result) MarkChanged() {
	r.Changed = true
}

// SetResult sets the result field.
func (r *Result) SetResult(s string) {
	r.Result = &s
}

// SetMsg sets the msg field.
func (r *Result) SetMsg(s string) {
	r.Msg = &s
}

// SetProjectID sets the project_id field.
func (r *Result) SetProjectID(id string) {
	r.ProjectID = &id
}

// Write emits the result as a single JSON object on w.
func (r *Result) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
