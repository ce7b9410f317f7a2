package example

// Sentence 表示一条双语例句。
// English 是源语言句子，Chinese 是对应的中文翻译；
// 当例句来自在线词典时，Chinese 字段是带"[需要翻译]"前缀的占位符。
type Sentence struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
}
