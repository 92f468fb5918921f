package layout

// 该文件定义批量求解的结果结构，供 CLI 输出、预览渲染与调试 JSON 共用。

// Result 保存一批广告牌的求解结果，顺序与输入一致。
type Result struct {
	Cases  []CaseResult `json:"cases"`
	Solved int          `json:"solved"`
	Failed int          `json:"failed"`
}

// CaseResult 记录单个广告牌的最大字号与该字号下的排版行。
// Err 不为空时 FontSize 与 Lines 无意义。
type CaseResult struct {
	Case      int       `json:"case"` // 从 1 开始编号
	Billboard Billboard `json:"billboard"`
	FontSize  int       `json:"fontSize"`
	Lines     []Line    `json:"lines,omitempty"`
	Err       error     `json:"-"`
	Error     string    `json:"error,omitempty"`
}

// OK 表示该广告牌求解成功。
func (c CaseResult) OK() bool { return c.Err == nil }

// Line 表示排好的一行：单词区间 [Start, End) 以及按字号缩放后的宽度。
type Line struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Width int `json:"width"`
}

// Len 返回该行的单词数量。
func (l Line) Len() int { return l.End - l.Start }
