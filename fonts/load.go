package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var supported = map[string]bool{".ttf": true, ".otf": true, ".woff": true, ".woff2": true}

// Load 读取磁盘上的字体文件，仅接受 ttf/otf/woff/woff2。
func Load(path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supported[ext] {
		return nil, fmt.Errorf("不支持的字体格式 %q: %s", ext, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 为空", path)
	}
	return data, nil
}
