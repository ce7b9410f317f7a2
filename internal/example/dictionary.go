package example

// Dictionary 是内置的例句词典。
// 数据在构造时填充完毕，之后只读，因此可以被任意多个请求无锁并发读取。
type Dictionary struct {
	entries map[string][]Sentence
}

// NewBuiltinDictionary 用内置例句表构造词典。
// 应该在应用启动时调用一次，返回的词典在进程生命周期内共享。
func NewBuiltinDictionary() *Dictionary {
	return &Dictionary{entries: builtinExamples}
}

// NewDictionary 用给定的数据构造词典，键必须是小写单词。测试用。
func NewDictionary(entries map[string][]Sentence) *Dictionary {
	return &Dictionary{entries: entries}
}

// Lookup 返回单词对应的例句列表，未收录时返回nil。
// 输入先经过Canonicalize归一化。
func (d *Dictionary) Lookup(word string) []Sentence {
	return d.entries[Canonicalize(word)]
}

// Contains 报告词典是否收录了该单词。
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.entries[Canonicalize(word)]
	return ok
}

// Size 返回收录的单词数量。
func (d *Dictionary) Size() int {
	return len(d.entries)
}
