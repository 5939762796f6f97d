package mdplain

import (
	"strings"
	"time"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = 200

// CountWords 统计以空白分隔的词数
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime 估算阅读时间，按整分钟向上取整
//
// 参数：
//   - text: 纯文本（通常为 Strip 的输出）
//   - wordsPerMinute: 阅读速度，<= 0 时使用 DefaultWordsPerMinute
//
// 返回：
//   - time.Duration: 空文本为 0，否则至少 1 分钟
func ReadingTime(text string, wordsPerMinute int) time.Duration {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := CountWords(text)
	if words == 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return time.Duration(minutes) * time.Minute
}
