package workflow

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/querra-ai/querra/pkg/llm"
)

// Prompt composition for the LLM-backed nodes. Stateless — all state comes
// from parameters.

const routerSystemPrompt = `You route natural-language questions about a SQL database.
Decide whether the question is answerable as-is or ambiguous.
Reply with exactly one lowercase token:
- "none" when the question is specific enough to answer
- otherwise an ambiguity label such as "ambiguous_metric", "ambiguous_timeframe", "ambiguous_entity", "missing_filter"`

const clarifySystemPrompt = `You help disambiguate a question about a SQL database.
Ask exactly one concise clarifying question that would resolve the ambiguity. Reply with the question only.`

const clarifySelfAnswerPrompt = `Answer the clarifying question on the user's behalf with the most reasonable default assumption, in one short sentence. Reply with the answer only.`

const planSystemPrompt = `You plan SQL queries. Given a question and the relevant schema,
describe in a few numbered steps which tables to use, how to join them, what to filter, and what to return.
Do not write SQL yet.`

const generateSystemPrompt = `You write a single SQL SELECT statement answering the user's question.
Rules:
- One statement, SELECT only. Never modify data.
- Use only the tables and columns from the provided schema.
- Prefer explicit column lists over *.
Reply with the SQL only, no commentary.`

const correctSystemPrompt = `A SQL statement failed. Produce a corrected SELECT statement.
Keep the original intent, fix the reported problem, use only the provided schema.
Reply with the SQL only, no commentary.`

const visualizeSystemPrompt = `You produce chart specifications. Given a question and result rows,
reply with a single JSON object: {"type": "bar"|"line"|"pie"|"table", "x": column, "y": column, "title": string}.
Reply with the JSON only.`

const synthesizeSystemPrompt = `You summarize SQL query results for the user.
Answer the user's question directly from the rows, in plain language. Mention when the result is truncated.
Do not show SQL unless asked.`

func routerMessages(s *State) []llm.Message {
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: routerSystemPrompt}}
	msgs = append(msgs, conversationTail(s)...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: "Question: " + s.Question})
	return msgs
}

func clarifyMessages(s *State) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\nAmbiguity: %s", s.Question, s.AmbiguityType)
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: clarifySystemPrompt}}
	msgs = append(msgs, conversationTail(s)...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: b.String()})
	return msgs
}

func clarifyAnswerMessages(s *State, question string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: clarifySelfAnswerPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Original question: %s\nClarifying question: %s", s.Question, question)},
	}
}

func planMessages(s *State) []llm.Message {
	var b strings.Builder
	writeSchemaSection(&b, s)
	fmt.Fprintf(&b, "Question: %s", s.Question)
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: planSystemPrompt}}
	msgs = append(msgs, conversationTail(s)...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: b.String()})
	return msgs
}

func generateMessages(s *State) []llm.Message {
	var b strings.Builder
	writeSchemaSection(&b, s)
	if len(s.FewShot) > 0 {
		b.WriteString("Examples of similar questions:\n")
		for _, ex := range s.FewShot {
			fmt.Fprintf(&b, "Q: %s\nSQL: %s\n\n", ex.Question, ex.SQL)
		}
	}
	if s.Plan != "" {
		fmt.Fprintf(&b, "Plan:\n%s\n\n", s.Plan)
	}
	fmt.Fprintf(&b, "Question: %s", s.Question)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: generateSystemPrompt},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func correctMessages(s *State) []llm.Message {
	var b strings.Builder
	writeSchemaSection(&b, s)
	fmt.Fprintf(&b, "Question: %s\n\nFailed SQL:\n%s\n\nError (%s): %s",
		s.Question, s.CurrentSQL, s.ErrorCode, s.Error)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: correctSystemPrompt},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func visualizeMessages(s *State) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nResult rows:\n%s", s.Question, rowsSample(s, 20))
	return []llm.Message{
		{Role: llm.RoleSystem, Content: visualizeSystemPrompt},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

func synthesizeMessages(s *State) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", s.Question)
	if s.QueryResult != nil {
		fmt.Fprintf(&b, "Rows returned: %d\n", s.QueryResult.RowsReturned)
		if s.QueryResult.IsTruncated {
			fmt.Fprintf(&b, "The result is truncated (%s).\n", s.QueryResult.PartialReason)
		}
		fmt.Fprintf(&b, "Result rows:\n%s", rowsSample(s, 20))
	}
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: synthesizeSystemPrompt}}
	msgs = append(msgs, conversationTail(s)...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: b.String()})
	return msgs
}

func writeSchemaSection(b *strings.Builder, s *State) {
	if s.SchemaContext != "" {
		fmt.Fprintf(b, "Schema:\n%s\n\n", s.SchemaContext)
	}
}

// conversationTail carries prior clarification turns into later prompts.
const maxConversationTail = 6

func conversationTail(s *State) []llm.Message {
	msgs := s.Messages
	if len(msgs) > maxConversationTail {
		msgs = msgs[len(msgs)-maxConversationTail:]
	}
	return msgs
}

// rowsSample renders up to n result rows as JSON lines for prompts.
func rowsSample(s *State, n int) string {
	if s.QueryResult == nil || len(s.QueryResult.Rows) == 0 {
		return "(no rows)"
	}
	rows := s.QueryResult.Rows
	if len(rows) > n {
		rows = rows[:n]
	}
	var b strings.Builder
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			continue
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return b.String()
}

// extractSQL strips markdown fences and surrounding prose from a model reply.
func extractSQL(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "sql")
		rest = strings.TrimPrefix(rest, "\n")
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		text = rest
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
}
