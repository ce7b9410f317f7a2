package example

import "strings"

// Canonicalize 从任意输入中提取规范的查询键：
// 取开头最长的一段ASCII字母并转为小写，以容忍"word (noun)"、"word!"这类输入。
// 如果开头没有字母，则原样返回输入。
// 本地查表和在线查询都必须先经过这里，保证两边的键空间一致。
func Canonicalize(text string) string {
	end := 0
	for end < len(text) {
		c := text[end]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		end++
	}
	if end == 0 {
		return text
	}
	return strings.ToLower(text[:end])
}
