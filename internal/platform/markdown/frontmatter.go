package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// SplitFrontmatter separates a leading YAML block from the markdown body.
// Content without a frontmatter block yields empty metadata and the content unchanged.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return map[string]any{}, content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	var raw, body string
	switch {
	case strings.HasPrefix(rest, separator):
		body = strings.TrimPrefix(rest, separator)
	default:
		idx := strings.Index(rest, "\n"+separator)
		if idx < 0 {
			if !strings.HasSuffix(rest, "\n---") {
				return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
			}
			raw = strings.TrimSuffix(rest, "\n---")
		} else {
			raw = rest[:idx]
			body = rest[idx+len("\n"+separator):]
		}
	}

	decoded := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	if decoded == nil {
		decoded = map[string]any{}
	}
	return decoded, strings.TrimPrefix(body, "\n"), nil
}

func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	buf.WriteString("\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
