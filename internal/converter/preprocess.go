package converter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/riverfjs/mdplain/internal/types"
)

// SplitFrontMatter 拆分文档头部元数据（YAML ---、TOML +++、JSON ;;;）与正文
//
// 没有元数据时返回零值 FrontMatter（Raw 为空 map）和原始正文。
func SplitFrontMatter(source []byte) (types.FrontMatter, []byte, error) {
	raw := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return types.FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	raw = normalizeMap(raw)
	fm := types.FrontMatter{
		Title:   stringField(raw, "title"),
		Slug:    stringField(raw, "slug"),
		Summary: stringField(raw, "summary"),
		Tags:    stringsField(raw, "tags"),
		Raw:     raw,
	}
	if draft, ok := raw["draft"].(bool); ok {
		fm.Draft = draft
	}
	return fm, body, nil
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// stringsField accepts either a list or a comma separated string.
func stringsField(raw map[string]any, key string) []string {
	var out []string
	switch v := raw[key].(type) {
	case []any:
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, item := range strings.Split(v, ",") {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// normalizeMap converts nested map[any]any values produced by the YAML
// decoder into map[string]any so the result can be encoded as JSON.
func normalizeMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeValue(val)
		}
		return m
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = normalizeValue(item)
		}
		return items
	default:
		return v
	}
}
