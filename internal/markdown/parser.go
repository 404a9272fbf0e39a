package markdown

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
	)

	return &Parser{
		md: md,
	}
}

// ExtractFrontmatter parses the YAML (---) or TOML (+++) block at the top of
// source and returns its top-level keys with values rendered as strings.
// A document without front matter yields an empty map.
func (p *Parser) ExtractFrontmatter(source []byte) (map[string]string, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return map[string]string{}, nil
	}

	var meta map[string]any
	if err := data.Decode(&meta); err != nil {
		// Plain "key: value" headers such as an unquoted title with a colon
		// are not valid YAML but are still read line by line.
		if lines, ok := lineFrontmatter(source); ok {
			slog.Debug("front matter is not valid YAML, reading it line by line", "error", err)
			return lines, nil
		}
		return nil, fmt.Errorf("decode front matter: %w", err)
	}

	out := make(map[string]string, len(meta))
	for key, value := range meta {
		if value == nil {
			continue
		}
		out[key] = stringify(value)
	}
	return out, nil
}

// lineFrontmatter reads a --- delimited block as "key: value" lines, splitting
// each on the first ": ". Lines without a separator are ignored.
func lineFrontmatter(source []byte) (map[string]string, bool) {
	lines := strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return nil, false
	}

	out := make(map[string]string)
	for _, line := range lines[1:] {
		if strings.TrimRight(line, " \t") == "---" {
			return out, true
		}
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return nil, false
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
