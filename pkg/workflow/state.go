// Package workflow implements the agent's stateful graph: named nodes with
// conditional edges, checkpointed transitions, bounded clarification and
// correction loops, and shallow fragment merging over a per-question state.
package workflow

import (
	"encoding/json"
	"time"

	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
)

// Limits bounds the graph's loops and audit lists.
type Limits struct {
	// MaxCorrectionRounds caps the validate/execute → correct loop.
	MaxCorrectionRounds int
	// MaxClarifyRounds caps the router → clarify loop before the question is
	// surfaced to the user.
	MaxClarifyRounds int
	// MaxAuditEntries caps each audit list by count.
	MaxAuditEntries int
	// MaxAuditBytes caps each audit list by serialized size.
	MaxAuditBytes int
	// MaxTransitions is the hard ceiling on node visits per run. The loop
	// counters bound every legal cycle; this is the backstop against a
	// miswired edge.
	MaxTransitions int
}

// Default loop and audit caps
const (
	DefaultMaxCorrectionRounds = 2
	DefaultMaxClarifyRounds    = 2
	DefaultMaxAuditEntries     = 100
	DefaultMaxAuditBytes       = 16 * 1024
	DefaultMaxTransitions      = 50
)

// DefaultLimits returns the caps used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxCorrectionRounds: DefaultMaxCorrectionRounds,
		MaxClarifyRounds:    DefaultMaxClarifyRounds,
		MaxAuditEntries:     DefaultMaxAuditEntries,
		MaxAuditBytes:       DefaultMaxAuditBytes,
		MaxTransitions:      DefaultMaxTransitions,
	}
}

// AuditEntry is one bounded observability record.
type AuditEntry struct {
	Node    string    `json:"node"`
	Code    string    `json:"code,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func (e AuditEntry) size() int {
	return len(e.Node) + len(e.Code) + len(e.Message)
}

// AuditList is a FIFO-bounded event list. Eviction drops the oldest entries
// first and preserves the dropped count.
type AuditList struct {
	Entries      []AuditEntry `json:"entries,omitempty"`
	DroppedCount int          `json:"dropped_count,omitempty"`
}

// Append adds entries and evicts from the front until both caps hold. The
// newest entry is always kept, oversized or not.
func (l *AuditList) Append(limits Limits, entries ...AuditEntry) {
	l.Entries = append(l.Entries, entries...)
	if limits.MaxAuditEntries > 0 {
		for len(l.Entries) > limits.MaxAuditEntries {
			l.Entries = l.Entries[1:]
			l.DroppedCount++
		}
	}
	if limits.MaxAuditBytes > 0 {
		for len(l.Entries) > 1 && l.totalSize() > limits.MaxAuditBytes {
			l.Entries = l.Entries[1:]
			l.DroppedCount++
		}
	}
}

func (l *AuditList) totalSize() int {
	total := 0
	for _, e := range l.Entries {
		total += e.size()
	}
	return total
}

// FewShotExample is one (question, SQL) pair fed to the generate node.
type FewShotExample struct {
	Question string `json:"question"`
	SQL      string `json:"sql"`
	Source   string `json:"source,omitempty"`
}

// State is the checkpointed workflow state carried through the graph. Nodes
// never mutate it directly; they return fragments merged by the runner.
type State struct {
	Question   string        `json:"question"`
	TraceID    string        `json:"trace_id,omitempty"`
	Messages   []llm.Message `json:"messages,omitempty"`
	CurrentSQL string        `json:"current_sql,omitempty"`

	Plan          string           `json:"plan,omitempty"`
	SchemaContext string           `json:"schema_context,omitempty"`
	FewShot       []FewShotExample `json:"few_shot,omitempty"`

	QueryResult *engine.QueryResult `json:"query_result,omitempty"`
	TablesUsed  []string            `json:"tables_used,omitempty"`

	Error         string         `json:"error,omitempty"`
	ErrorCategory string         `json:"error_category,omitempty"`
	ErrorCode     string         `json:"error_code,omitempty"`
	ErrorMetadata map[string]any `json:"error_metadata,omitempty"`

	RetryCount         int `json:"retry_count"`
	ClarifyCount       int `json:"clarify_count"`
	SchemaRefreshCount int `json:"schema_refresh_count"`

	TenantID          int64  `json:"tenant_id"`
	SchemaSnapshotID  string `json:"schema_snapshot_id,omitempty"`
	SchemaFingerprint string `json:"schema_fingerprint,omitempty"`

	DeadlineTS     time.Time `json:"deadline_ts"`
	TimeoutSeconds int       `json:"timeout_seconds,omitempty"`

	PageToken          string              `json:"page_token,omitempty"`
	PageSize           int                 `json:"page_size,omitempty"`
	Seed               int64               `json:"seed,omitempty"`
	InteractiveSession bool                `json:"interactive_session,omitempty"`
	ReplayBundle       engine.ReplayBundle `json:"replay_bundle,omitempty"`

	TelemetryContext map[string]string `json:"telemetry_context,omitempty"`

	TokenBudget        int `json:"token_budget,omitempty"`
	TokensConsumed     int `json:"tokens_consumed"`
	LLMPromptBytesUsed int `json:"llm_prompt_bytes_used"`

	DecisionEvents     AuditList `json:"decision_events"`
	ValidationFailures AuditList `json:"validation_failures"`

	FromCache             bool   `json:"from_cache"`
	AmbiguityType         string `json:"ambiguity_type,omitempty"`
	ClarificationQuestion string `json:"clarification_question,omitempty"`

	FinalAnswer string `json:"final_answer,omitempty"`
	Visualize   bool   `json:"visualize,omitempty"`
	ChartSpec   string `json:"chart_spec,omitempty"`

	PersistenceFailed bool `json:"persistence_failed,omitempty"`

	// surfaceClarification is set by the runner when the clarify loop is out
	// of self-resolution rounds; the clarify node must interrupt instead of
	// looping. Transient: never checkpointed.
	surfaceClarification bool
}

// Deadline returns the absolute budget, deriving it from TimeoutSeconds when
// no explicit deadline is set.
func (s *State) Deadline() time.Time {
	return s.DeadlineTS
}

// Clone deep-copies the state through its JSON form. Checkpointers use it so
// a stored snapshot never aliases live slices or maps.
func (s *State) Clone() (*State, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out State
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fragment is one node's contribution to the state. Nil pointers leave the
// field untouched; set pointers overwrite, including to the zero value, which
// is how nodes clear errors and flags.
type Fragment struct {
	CurrentSQL    *string
	Plan          *string
	SchemaContext *string
	FewShot       []FewShotExample

	QueryResult *engine.QueryResult
	ClearResult bool
	TablesUsed  []string

	Error         *string
	ErrorCategory *string
	ErrorCode     *string
	ErrorMetadata map[string]any

	SchemaRefreshCount *int

	SchemaSnapshotID  *string
	SchemaFingerprint *string
	DeadlineTS        *time.Time

	PageToken *string

	TokensConsumed     *int
	LLMPromptBytesUsed *int

	FromCache             *bool
	AmbiguityType         *string
	ClarificationQuestion *string
	FinalAnswer           *string
	ChartSpec             *string
	PersistenceFailed     *bool

	AppendMessages []llm.Message
	Decisions      []AuditEntry
	Failures       []AuditEntry

	// Interrupt suspends the run after this node; the session waits for a
	// user message and resumes from the checkpoint.
	Interrupt bool
}

// clearError returns a fragment resetting the structured failure state.
func clearError() *Fragment {
	empty := ""
	return &Fragment{Error: &empty, ErrorCategory: &empty, ErrorCode: &empty, ErrorMetadata: map[string]any{}}
}

func (f *Fragment) setError(category, code, message string, metadata map[string]any) {
	f.Error = ref(message)
	f.ErrorCategory = ref(category)
	f.ErrorCode = ref(code)
	if metadata == nil {
		metadata = map[string]any{}
	}
	f.ErrorMetadata = metadata
}

// Apply merges a fragment over the state. Scalar fields are shallow
// overwrites; audit lists append under the caps; the deadline only ever
// moves earlier.
func (s *State) Apply(f *Fragment, limits Limits) {
	if f == nil {
		return
	}
	if f.CurrentSQL != nil {
		s.CurrentSQL = *f.CurrentSQL
	}
	if f.Plan != nil {
		s.Plan = *f.Plan
	}
	if f.SchemaContext != nil {
		s.SchemaContext = *f.SchemaContext
	}
	if f.FewShot != nil {
		s.FewShot = f.FewShot
	}
	if f.ClearResult {
		s.QueryResult = nil
	}
	if f.QueryResult != nil {
		s.QueryResult = f.QueryResult
	}
	if f.TablesUsed != nil {
		s.TablesUsed = f.TablesUsed
	}
	if f.Error != nil {
		s.Error = *f.Error
	}
	if f.ErrorCategory != nil {
		s.ErrorCategory = *f.ErrorCategory
	}
	if f.ErrorCode != nil {
		s.ErrorCode = *f.ErrorCode
	}
	if f.ErrorMetadata != nil {
		s.ErrorMetadata = f.ErrorMetadata
	}
	if f.SchemaRefreshCount != nil {
		s.SchemaRefreshCount = *f.SchemaRefreshCount
	}
	if f.SchemaSnapshotID != nil {
		s.SchemaSnapshotID = *f.SchemaSnapshotID
	}
	if f.SchemaFingerprint != nil {
		s.SchemaFingerprint = *f.SchemaFingerprint
	}
	if f.DeadlineTS != nil {
		// Monotonic: a deadline never extends.
		if s.DeadlineTS.IsZero() || f.DeadlineTS.Before(s.DeadlineTS) {
			s.DeadlineTS = *f.DeadlineTS
		}
	}
	if f.PageToken != nil {
		s.PageToken = *f.PageToken
	}
	if f.TokensConsumed != nil {
		s.TokensConsumed = *f.TokensConsumed
	}
	if f.LLMPromptBytesUsed != nil {
		s.LLMPromptBytesUsed = *f.LLMPromptBytesUsed
	}
	if f.FromCache != nil {
		s.FromCache = *f.FromCache
	}
	if f.AmbiguityType != nil {
		s.AmbiguityType = *f.AmbiguityType
	}
	if f.ClarificationQuestion != nil {
		s.ClarificationQuestion = *f.ClarificationQuestion
	}
	if f.FinalAnswer != nil {
		s.FinalAnswer = *f.FinalAnswer
	}
	if f.ChartSpec != nil {
		s.ChartSpec = *f.ChartSpec
	}
	if f.PersistenceFailed != nil {
		s.PersistenceFailed = *f.PersistenceFailed
	}
	if len(f.AppendMessages) > 0 {
		s.Messages = append(s.Messages, f.AppendMessages...)
	}
	if len(f.Decisions) > 0 {
		s.DecisionEvents.Append(limits, f.Decisions...)
	}
	if len(f.Failures) > 0 {
		s.ValidationFailures.Append(limits, f.Failures...)
	}
}

func ref[T any](v T) *T { return &v }
