package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/sqlguard"
	"github.com/querra-ai/querra/pkg/telemetry"
)

// CachedQuery is a semantic-cache hit.
type CachedQuery struct {
	SQL           string
	SchemaVersion string
	CacheType     string
}

// CacheLookup resolves a question to previously generated SQL. Nil result
// means miss.
type CacheLookup interface {
	Lookup(ctx context.Context, tenantID int64, question string) (*CachedQuery, error)
}

// FewShotProvider supplies (question, SQL) examples for the generate prompt.
type FewShotProvider interface {
	Examples(ctx context.Context, tenantID int64, question string, limit int) ([]FewShotExample, error)
}

// DefaultFewShotLimit bounds examples pulled into the generate prompt.
const DefaultFewShotLimit = 3

const schemaSearchK = 5

// Nodes carries the collaborators behind the graph's node functions. All
// fields except LLM and Engine are optional; nil disables the concern.
type Nodes struct {
	LLM       llm.Client
	Engine    *engine.Engine
	Retriever schemastore.Retriever
	Cache     CacheLookup
	FewShot   FewShotProvider
	// Guard is the validation policy applied by the validate node.
	Guard sqlguard.Options
	// FewShotLimit caps examples per prompt; 0 uses the default.
	FewShotLimit int

	limits Limits
}

func (n *Nodes) funcs() map[string]NodeFunc {
	return map[string]NodeFunc{
		NodeCacheLookup: n.cacheLookup,
		NodeRetrieve:    n.retrieve,
		NodeRouter:      n.router,
		NodeClarify:     n.clarify,
		NodePlan:        n.plan,
		NodeGenerate:    n.generate,
		NodeValidate:    n.validate,
		NodeExecute:     n.execute,
		NodeCorrect:     n.correct,
		NodeVisualize:   n.visualize,
		NodeSynthesize:  n.synthesize,
	}
}

func (n *Nodes) fewShotLimit() int {
	if n.FewShotLimit > 0 {
		return n.FewShotLimit
	}
	return DefaultFewShotLimit
}

// llmAccount accumulates token and prompt-byte usage across one node's
// completions; the totals land in the node's fragment.
type llmAccount struct {
	tokens      int
	promptBytes int
}

func (a *llmAccount) apply(frag *Fragment, s *State) {
	if a.tokens == 0 && a.promptBytes == 0 {
		return
	}
	frag.TokensConsumed = ref(s.TokensConsumed + a.tokens)
	frag.LLMPromptBytesUsed = ref(s.LLMPromptBytesUsed + a.promptBytes)
}

// complete runs one budget-checked completion under an llm span.
func (n *Nodes) complete(ctx context.Context, s *State, acc *llmAccount, messages []llm.Message) (string, error) {
	budget := llm.Budget{Limit: s.TokenBudget, Consumed: s.TokensConsumed + acc.tokens}
	if err := budget.Check(); err != nil {
		return "", err
	}

	req := &llm.Request{Messages: messages}
	ctx, span := telemetry.StartSpan(ctx, "llm.complete", telemetry.KindLLM, map[string]any{
		"llm.prompt_bytes": req.PromptBytes(),
	})
	defer span.End()

	resp, err := n.LLM.Complete(ctx, req)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	acc.promptBytes += req.PromptBytes()
	acc.tokens += resp.TotalTokens()
	span.SetAttribute("llm.total_tokens", resp.TotalTokens())

	if err := budget.Charge(resp.TotalTokens()); err != nil {
		return resp.Text, err
	}
	return resp.Text, nil
}

func decision(node, code, message string) AuditEntry {
	return AuditEntry{Node: node, Code: code, Message: message, At: time.Now()}
}

// cacheLookup resolves the question against the semantic cache. Pre-seeded
// SQL (replay and test harnesses) short-circuits the lookup. Cache errors
// degrade to a miss.
func (n *Nodes) cacheLookup(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	if s.FromCache && s.CurrentSQL != "" {
		frag.Decisions = []AuditEntry{decision(NodeCacheLookup, "preseeded", "SQL supplied by caller")}
		return frag, nil
	}
	if n.Cache == nil || s.Question == "" {
		frag.FromCache = ref(false)
		return frag, nil
	}

	hit, err := n.Cache.Lookup(ctx, s.TenantID, s.Question)
	if err != nil {
		slog.Warn("Cache lookup failed, treating as miss", "tenant_id", s.TenantID, "error", err)
		frag.FromCache = ref(false)
		frag.Decisions = []AuditEntry{decision(NodeCacheLookup, "lookup_failed", err.Error())}
		return frag, nil
	}
	if hit == nil {
		frag.FromCache = ref(false)
		frag.Decisions = []AuditEntry{decision(NodeCacheLookup, "miss", "no cached SQL for question")}
		return frag, nil
	}

	frag.FromCache = ref(true)
	frag.CurrentSQL = ref(hit.SQL)
	frag.Decisions = []AuditEntry{decision(NodeCacheLookup, "hit", "cache_type="+hit.CacheType)}
	return frag, nil
}

// retrieve builds the schema context and few-shot examples for planning and
// generation. Retriever failures degrade to an empty context with a decision
// event rather than killing the run.
func (n *Nodes) retrieve(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	if n.Retriever == nil {
		return frag, nil
	}

	snapshot := n.Retriever.Snapshot()
	frag.SchemaSnapshotID = ref(snapshot.ID())
	frag.SchemaFingerprint = ref(snapshot.ID())

	results, err := n.Retriever.SearchNodes(ctx, s.Question, schemastore.NodeTable, schemaSearchK)
	if err != nil {
		slog.Warn("Schema search failed, continuing without context", "error", err)
		frag.Decisions = []AuditEntry{decision(NodeRetrieve, "schema_search_failed", err.Error())}
		return frag, nil
	}

	var b strings.Builder
	for _, r := range results {
		def, err := n.Retriever.GetTableDef(ctx, r.Node.Name)
		if err != nil {
			continue
		}
		writeTableDef(&b, def)
	}
	frag.SchemaContext = ref(b.String())
	frag.Decisions = []AuditEntry{decision(NodeRetrieve, "schema_context_built",
		fmt.Sprintf("%d tables", len(results)))}

	if n.FewShot != nil {
		examples, err := n.FewShot.Examples(ctx, s.TenantID, s.Question, n.fewShotLimit())
		if err != nil {
			slog.Warn("Few-shot retrieval failed, continuing without examples", "error", err)
		} else if len(examples) > 0 {
			frag.FewShot = examples
		}
	}
	return frag, nil
}

func writeTableDef(b *strings.Builder, def *schemastore.TableDef) {
	fmt.Fprintf(b, "TABLE %s", def.Name)
	if def.Description != "" {
		fmt.Fprintf(b, " -- %s", def.Description)
	}
	b.WriteString("\n")
	for _, c := range def.Columns {
		fmt.Fprintf(b, "  %s %s", c.Name, c.Type)
		if c.Description != "" {
			fmt.Fprintf(b, " -- %s", c.Description)
		}
		b.WriteString("\n")
	}
	for _, fk := range def.ForeignKeys {
		fmt.Fprintf(b, "  FK %s -> %s.%s\n", fk.Column, fk.RefTable, fk.RefColumn)
	}
	b.WriteString("\n")
}

// router classifies the question as answerable or ambiguous.
func (n *Nodes) router(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, routerMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)

	label := strings.ToLower(strings.TrimSpace(text))
	label = strings.Trim(label, `"'.`)
	if label == "none" || label == "" {
		frag.AmbiguityType = ref("")
		frag.Decisions = []AuditEntry{decision(NodeRouter, "answerable", "no ambiguity detected")}
		return frag, nil
	}
	if i := strings.IndexAny(label, " \n"); i > 0 {
		label = label[:i]
	}
	frag.AmbiguityType = ref(label)
	frag.Decisions = []AuditEntry{decision(NodeRouter, "ambiguous", label)}
	return frag, nil
}

// clarify resolves an ambiguity. Interactive sessions surface the question
// to the user immediately; batch runs self-answer with a stated assumption
// until the round cap, then surface.
func (n *Nodes) clarify(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	question, err := n.complete(ctx, s, acc, clarifyMessages(s))
	if err != nil {
		return nil, err
	}
	question = strings.TrimSpace(question)
	frag.ClarificationQuestion = ref(question)

	if s.InteractiveSession || s.surfaceClarification {
		acc.apply(frag, s)
		frag.AppendMessages = []llm.Message{{Role: llm.RoleAssistant, Content: question}}
		frag.Decisions = []AuditEntry{decision(NodeClarify, "surfaced", question)}
		frag.Interrupt = true
		return frag, nil
	}

	answer, err := n.complete(ctx, s, acc, clarifyAnswerMessages(s, question))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	answer = strings.TrimSpace(answer)
	frag.AppendMessages = []llm.Message{
		{Role: llm.RoleAssistant, Content: question},
		{Role: llm.RoleUser, Content: answer},
	}
	frag.Decisions = []AuditEntry{decision(NodeClarify, "self_answered", answer)}
	return frag, nil
}

// plan sketches the query before generation.
func (n *Nodes) plan(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, planMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	frag.Plan = ref(strings.TrimSpace(text))
	return frag, nil
}

// generate produces the working SQL.
func (n *Nodes) generate(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, generateMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	frag.CurrentSQL = ref(extractSQL(text))
	frag.Decisions = []AuditEntry{decision(NodeGenerate, "sql_generated", "")}
	return frag, nil
}

// validate runs the structural policy check before dispatch. Failures route
// to correct; the engine re-validates before touching the tool regardless.
func (n *Nodes) validate(_ context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	if strings.TrimSpace(s.CurrentSQL) == "" {
		frag.setError("validation", string(sqlguard.ViolationValidationError),
			"no SQL to validate", map[string]any{"retryable": true})
		frag.Failures = []AuditEntry{decision(NodeValidate, string(sqlguard.ViolationValidationError), "empty SQL")}
		return frag, nil
	}

	res := sqlguard.Validate(s.CurrentSQL, n.Guard)
	if !res.IsValid {
		v := res.Violations[0]
		frag.setError("validation", string(v.Type), v.Message, map[string]any{
			"retryable":       true,
			"violation_count": len(res.Violations),
		})
		frag.Failures = []AuditEntry{decision(NodeValidate, string(v.Type), v.Message)}
		return frag, nil
	}

	clear := clearError()
	clear.TablesUsed = tableNames(res.Metadata.TableLineage)
	clear.Decisions = []AuditEntry{decision(NodeValidate, "valid", "")}
	return clear, nil
}

func tableNames(lineage []sqlguard.TableRef) []string {
	seen := make(map[string]struct{}, len(lineage))
	names := make([]string, 0, len(lineage))
	for _, t := range lineage {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}
	return names
}

// execute dispatches the working SQL through the engine and maps the outcome
// back onto the state.
func (n *Nodes) execute(ctx context.Context, s *State) (*Fragment, error) {
	out, err := n.Engine.Execute(ctx, &engine.Request{
		SQL:              s.CurrentSQL,
		TenantID:         s.TenantID,
		Question:         s.Question,
		Deadline:         s.DeadlineTS,
		PageToken:        s.PageToken,
		PageSize:         s.PageSize,
		SchemaSnapshotID: s.SchemaSnapshotID,
		Seed:             s.Seed,
		FromCache:        s.FromCache,
		RetryCount:       s.RetryCount,
		ReplayBundle:     s.ReplayBundle,
	})
	if err != nil {
		return nil, fmt.Errorf("engine dispatch failed: %w", err)
	}

	frag := &Fragment{}
	for _, d := range out.Decisions {
		frag.Decisions = append(frag.Decisions, decision(NodeExecute, d.Stage+"."+d.Reason, fmt.Sprintf("%v", d.Details)))
	}

	if out.Error != nil {
		metadata := map[string]any{"retryable": out.Error.Retryable}
		for k, v := range out.Error.Metadata {
			metadata[k] = v
		}
		frag.setError(out.Error.Category, out.Error.Code, out.Error.Message, metadata)
		frag.ClearResult = true
		frag.Failures = []AuditEntry{decision(NodeExecute, out.Error.Code, out.Error.Message)}
		return frag, nil
	}

	clear := clearError()
	clear.Decisions = frag.Decisions
	clear.QueryResult = out.Result
	if out.Result.NextPageToken != "" {
		clear.PageToken = ref(out.Result.NextPageToken)
	}
	return clear, nil
}

// correct asks the model to repair the failed SQL.
func (n *Nodes) correct(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, correctMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	frag.CurrentSQL = ref(extractSQL(text))
	frag.Decisions = []AuditEntry{decision(NodeCorrect, "sql_repaired",
		fmt.Sprintf("round %d, previous error %s", s.RetryCount, s.ErrorCode))}
	return frag, nil
}

// visualize emits a chart spec for the result.
func (n *Nodes) visualize(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, visualizeMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	frag.ChartSpec = ref(strings.TrimSpace(text))
	return frag, nil
}

// synthesize composes the final natural-language answer.
func (n *Nodes) synthesize(ctx context.Context, s *State) (*Fragment, error) {
	frag := &Fragment{}
	acc := &llmAccount{}

	text, err := n.complete(ctx, s, acc, synthesizeMessages(s))
	if err != nil {
		return nil, err
	}
	acc.apply(frag, s)
	text = strings.TrimSpace(text)
	frag.FinalAnswer = ref(text)
	frag.AppendMessages = []llm.Message{{Role: llm.RoleAssistant, Content: text}}
	return frag, nil
}
