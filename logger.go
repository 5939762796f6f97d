package mdplain

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/riverfjs/mdplain/internal/logger"
)

// Logger 全局日志记录器，默认只输出 warn 及以上级别到 stderr
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mdplain",
	Level:  log.WarnLevel,
})

// SetLogger 设置自定义日志记录器，nil 表示丢弃所有日志
//
// Logger 的替换没有加锁：必须在并发调用 Process 之前完成设置。
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logger.Discard()
	}
	Logger = l
}
