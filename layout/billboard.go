package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ErrNoWords 表示广告牌上没有任何单词，无法计算字号上限。
var ErrNoWords = errors.New("billboard has no words")

var validate = validator.New()

// PreconditionError 描述调用方违反前置条件的情况（例如空单词序列）。
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("layout: %s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// Billboard 保存广告牌的宽高与按显示顺序排列的单词长度。
// 排版只关心长度；Words 仅用于预览渲染，可以为空。
type Billboard struct {
	Width       int      `json:"width" validate:"min=0"`
	Height      int      `json:"height" validate:"min=0"`
	WordLengths []int    `json:"wordLengths" validate:"dive,gt=0"`
	Words       []string `json:"words,omitempty"`
}

// FromWords 按字符（rune）数计算单词长度，不做校验。
func FromWords(width, height int, words []string) Billboard {
	lengths := make([]int, len(words))
	for i, w := range words {
		lengths[i] = utf8.RuneCountInString(w)
	}
	return Billboard{
		Width:       width,
		Height:      height,
		WordLengths: lengths,
		Words:       append([]string(nil), words...),
	}
}

// NewBillboard 与 FromWords 相同，但会校验结果。
func NewBillboard(width, height int, words []string) (Billboard, error) {
	b := FromWords(width, height, words)
	if err := b.Validate(); err != nil {
		return Billboard{}, err
	}
	return b, nil
}

// Validate 检查宽高非负且每个单词长度为正。
func (b Billboard) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid billboard: %w", err)
	}
	return nil
}

// Fits 判断在给定字号下，全部单词能否按贪心方式排进广告牌。
// 字号 0 恒为 true；负字号恒为 false。
func (b Billboard) Fits(fontSize int) bool {
	if fontSize == 0 {
		return true
	}
	if fontSize < 0 {
		return false
	}
	return b.fitsFrom(fontSize, b.Height/fontSize, 0, nil)
}

// Pack 与 Fits 使用同一套贪心规则，同时返回每一行包含的单词区间。
// 当 Fits(fontSize) 为 false 时返回已排好的部分行与 false。
func (b Billboard) Pack(fontSize int) ([]Line, bool) {
	if fontSize == 0 {
		return nil, true
	}
	if fontSize < 0 {
		return nil, false
	}
	var lines []Line
	ok := b.fitsFrom(fontSize, b.Height/fontSize, 0, &lines)
	return lines, ok
}

// fitsFrom 从 index 开始，在剩余 lines 行内逐行贪心排版。
// 行宽 fontSize*units <= Width 等价于 units <= Width/fontSize，units 为单词字符数加空格数；
// 按字符格比较，大宽度下也不会整数溢出。
func (b Billboard) fitsFrom(fontSize, lines, index int, record *[]Line) bool {
	n := len(b.WordLengths)
	if index >= n {
		return true
	}
	capacity := b.Width / fontSize
	for ; index < n; lines-- {
		if lines <= 0 {
			return false
		}
		start := index
		units, sep := 0, 0
		for index < n {
			l := b.WordLengths[index]
			if l > capacity-units-sep {
				break
			}
			units += sep + l
			sep = 1
			index++
		}
		if index == start {
			return false
		}
		if record != nil {
			*record = append(*record, Line{Start: start, End: index, Width: fontSize * units})
		}
	}
	return true
}

// UpperLimit 返回最长单词能独占一行时的最大字号 width / max(wordLengths)。
func (b Billboard) UpperLimit() (int, error) {
	return b.upperLimit("upper limit")
}

func (b Billboard) upperLimit(op string) (int, error) {
	if len(b.WordLengths) == 0 {
		return 0, &PreconditionError{Op: op, Err: ErrNoWords}
	}
	longest := 0
	for _, l := range b.WordLengths {
		if l > longest {
			longest = l
		}
	}
	if longest <= 0 {
		return 0, &PreconditionError{Op: op, Err: fmt.Errorf("word length must be positive, got %d", longest)}
	}
	return b.Width / longest, nil
}

// MaxFont 在 [0, UpperLimit] 内二分查找能排下全部单词的最大字号。
func (b Billboard) MaxFont() (int, error) {
	upper, err := b.upperLimit("max font")
	if err != nil {
		return 0, err
	}
	lower := 0
	for upper-lower > 1 {
		mid := lower + (upper-lower)/2
		if b.Fits(mid) {
			lower = mid
		} else {
			upper = mid
		}
	}
	if b.Fits(upper) {
		return upper, nil
	}
	return lower, nil
}
