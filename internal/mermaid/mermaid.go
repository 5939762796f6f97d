package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Config Mermaid 配置
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig 返回默认 Mermaid 配置
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
	}
}

type pakoState struct {
	Code    string  `json:"code"`
	Mermaid *Config `json:"mermaid"`
}

// compressToDeflate 使用 DEFLATE 算法压缩数据
func compressToDeflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePako 生成 Mermaid 图表的 pako 编码
func GeneratePako(graphMarkdown string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	jsonBytes, err := json.Marshal(pakoState{Code: graphMarkdown, Mermaid: config})
	if err != nil {
		return "", err
	}

	compressed, err := compressToDeflate(jsonBytes)
	if err != nil {
		return "", fmt.Errorf("compress diagram: %w", err)
	}
	return "pako:" + base64.URLEncoding.EncodeToString(compressed), nil
}

// DecodePako 将 pako 编码还原为图表源码
func DecodePako(pako string) (string, error) {
	encoded, ok := strings.CutPrefix(pako, "pako:")
	if !ok {
		return "", fmt.Errorf("missing pako: prefix")
	}
	compressed, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode pako: %w", err)
	}
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("decompress pako: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decompress pako: %w", err)
	}
	var state pakoState
	if err := json.Unmarshal(raw, &state); err != nil {
		return "", fmt.Errorf("unmarshal pako: %w", err)
	}
	return state.Code, nil
}

// GetMermaidLiveURL 获取 Mermaid Live 编辑器 URL
func GetMermaidLiveURL(graphMarkdown string) (string, error) {
	pako, err := GeneratePako(graphMarkdown, nil)
	if err != nil {
		return "", err
	}
	return "https://mermaid.live/edit#" + pako, nil
}

// GetMermaidInkURL 获取 Mermaid Ink 图片 URL
func GetMermaidInkURL(graphMarkdown string) (string, error) {
	pako, err := GeneratePako(graphMarkdown, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.ink/img/%s?theme=default&width=500&scale=2&type=webp", pako), nil
}
