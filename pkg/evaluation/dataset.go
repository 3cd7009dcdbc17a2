package evaluation

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single dataset line; golden SQL can be long but a
// line past this size is a broken file, not a test case.
const maxLineBytes = 1 << 20

// Case is one golden dataset entry: a natural-language question and the SQL
// it should translate to.
type Case struct {
	ID          string         `json:"id"`
	Question    string         `json:"question"`
	ExpectedSQL string         `json:"expected_sql"`
	TenantID    int64          `json:"tenant_id,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// LoadDataset reads a JSONL golden dataset from path.
func LoadDataset(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	cases, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return cases, nil
}

// ReadDataset parses one JSON case per line. Blank lines are skipped; a case
// without an id is assigned one from its line number.
func ReadDataset(r io.Reader) ([]Case, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var cases []Case
	seen := make(map[string]struct{})
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var c Case
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if c.Question == "" {
			return nil, fmt.Errorf("line %d: missing question", line)
		}
		if c.ExpectedSQL == "" {
			return nil, fmt.Errorf("line %d: missing expected_sql", line)
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("case-%04d", line)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate case id %q", line, c.ID)
		}
		seen[c.ID] = struct{}{}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan dataset: %w", err)
	}
	return cases, nil
}
