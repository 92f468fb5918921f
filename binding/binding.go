package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将模板中的 ${name} 替换为 values 中对应的值。
// 若 values 为空或名称不存在，则保留原占位符。
func Interpolate(template string, values map[string]any) string {
	if len(values) == 0 {
		return template
	}
	return exprPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		name := strings.TrimSpace(groups[1])
		if val, ok := values[name]; ok && val != nil {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Names 返回模板中引用的全部名称，按出现顺序且去重。
func Names(template string) []string {
	seen := map[string]bool{}
	var names []string
	for _, groups := range exprPattern.FindAllStringSubmatch(template, -1) {
		name := strings.TrimSpace(groups[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Check 确认模板只引用 allowed 中的名称。
func Check(template string, allowed ...string) error {
	ok := map[string]bool{}
	for _, a := range allowed {
		ok[a] = true
	}
	for _, name := range Names(template) {
		if !ok[name] {
			return fmt.Errorf("unknown placeholder ${%s} in %q", name, template)
		}
	}
	return nil
}
