package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// EntitySnapshot is the minimal data needed to compute diffs between entity
// versions.
type EntitySnapshot struct {
	Name            string
	Code            string
	EntityType      EntityType
	Jurisdiction    string
	EffectiveFrom   string
	TerminationDate string
	Attributes      map[string]any
	Version         int64
}

// NewEntitySnapshot captures the diffable view of an entity version.
func NewEntitySnapshot(entity Entity) EntitySnapshot {
	termination := ""
	if entity.TerminationDate != nil {
		termination = entity.TerminationDate.Format("2006-01-02")
	}
	return EntitySnapshot{
		Name:            entity.Name,
		Code:            entity.Code,
		EntityType:      entity.EntityType,
		Jurisdiction:    entity.Jurisdiction,
		EffectiveFrom:   entity.EffectiveFrom.Format("2006-01-02"),
		TerminationDate: termination,
		Attributes:      cloneAttributes(entity.Attributes),
		Version:         entity.Version,
	}
}

// CanonicalText flattens the snapshot into deterministic lines suitable for
// diffing.
func (s EntitySnapshot) CanonicalText() ([]string, error) {
	lines := []string{
		fmt.Sprintf("Name: %s", s.Name),
		fmt.Sprintf("Code: %s", s.Code),
		fmt.Sprintf("EntityType: %s", s.EntityType),
		fmt.Sprintf("Jurisdiction: %s", s.Jurisdiction),
		fmt.Sprintf("EffectiveFrom: %s", s.EffectiveFrom),
	}
	if s.TerminationDate != "" {
		lines = append(lines, fmt.Sprintf("TerminationDate: %s", s.TerminationDate))
	}
	lines = append(lines, fmt.Sprintf("Version: %d", s.Version), "Attributes:")

	flattened := map[string]string{}
	if len(s.Attributes) > 0 {
		if err := flattenValue("", s.Attributes, flattened); err != nil {
			return nil, err
		}
	}

	if len(flattened) == 0 {
		lines = append(lines, "  (empty)")
		return lines, nil
	}

	keys := make([]string, 0, len(flattened))
	for key := range flattened {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("  %s: %s", key, flattened[key]))
	}

	return lines, nil
}

// DiffEntitySnapshots produces a unified diff between two snapshots using the
// provided labels.
func DiffEntitySnapshots(baseLabel string, base *EntitySnapshot, targetLabel string, target *EntitySnapshot) (string, error) {
	baseString, err := canonicalString(base)
	if err != nil {
		return "", err
	}

	targetString, err := canonicalString(target)
	if err != nil {
		return "", err
	}

	return buildUnifiedDiff(baseLabel, targetLabel, baseString, targetString), nil
}

func canonicalString(snapshot *EntitySnapshot) (string, error) {
	if snapshot == nil {
		return "", nil
	}

	lines, err := snapshot.CanonicalText()
	if err != nil {
		return "", err
	}

	return strings.Join(lines, "\n") + "\n", nil
}

func flattenValue(prefix string, value any, acc map[string]string) error {
	switch typed := value.(type) {
	case map[string]any:
		if len(typed) == 0 {
			if prefix != "" {
				acc[prefix] = "{}"
			}
			return nil
		}
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			nextPrefix := key
			if prefix != "" {
				nextPrefix = prefix + "." + key
			}
			if err := flattenValue(nextPrefix, typed[key], acc); err != nil {
				return err
			}
		}
	case []any:
		if len(typed) == 0 {
			if prefix != "" {
				acc[prefix] = "[]"
			}
			return nil
		}
		for idx, item := range typed {
			nextPrefix := fmt.Sprintf("%s[%d]", prefix, idx)
			if prefix == "" {
				nextPrefix = fmt.Sprintf("[%d]", idx)
			}
			if err := flattenValue(nextPrefix, item, acc); err != nil {
				return err
			}
		}
	case nil:
		if prefix != "" {
			acc[prefix] = "null"
		}
	default:
		if prefix == "" {
			return fmt.Errorf("attribute key missing for value %v", typed)
		}
		encoded, err := json.Marshal(typed)
		if err != nil {
			acc[prefix] = fmt.Sprintf("%v", typed)
		} else {
			acc[prefix] = string(encoded)
		}
	}

	return nil
}

type diffOp struct {
	prefix string
	line   string
}

func buildUnifiedDiff(baseLabel, targetLabel, baseContent, targetContent string) string {
	baseLines := splitLines(baseContent)
	targetLines := splitLines(targetContent)

	ops := diffLines(baseLines, targetLines)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("--- %s\n", baseLabel))
	builder.WriteString(fmt.Sprintf("+++ %s\n", targetLabel))
	builder.WriteString("@@ -0,0 +0,0 @@\n")
	for _, operation := range ops {
		builder.WriteString(operation.prefix)
		builder.WriteString(operation.line)
		builder.WriteString("\n")
	}

	return builder.String()
}

func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffLines walks a longest-common-subsequence table to emit keep/add/remove
// operations between the two line sets.
func diffLines(base, target []string) []diffOp {
	m := len(base)
	n := len(target)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if base[i] == target[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	ops := make([]diffOp, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		if base[i] == target[j] {
			ops = append(ops, diffOp{prefix: " ", line: base[i]})
			i++
			j++
			continue
		}

		if dp[i+1][j] >= dp[i][j+1] {
			ops = append(ops, diffOp{prefix: "-", line: base[i]})
			i++
		} else {
			ops = append(ops, diffOp{prefix: "+", line: target[j]})
			j++
		}
	}

	for i < m {
		ops = append(ops, diffOp{prefix: "-", line: base[i]})
		i++
	}

	for j < n {
		ops = append(ops, diffOp{prefix: "+", line: target[j]})
		j++
	}

	return ops
}
