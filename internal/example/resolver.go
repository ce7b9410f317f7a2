package example

import (
	"context"

	"go.uber.org/zap"
)

// Source 标记一次例句解析实际走过的路径。
// 在线查询失败对调用方是静默的（表现为空结果），用类型化的来源
// 把"确实没有数据"和"在线查询失败"区分开，方便测试和排查。
type Source int

const (
	// SourceNone 本地未收录，在线查询成功但没有任何例句。
	SourceNone Source = iota
	// SourceLocal 内置词典命中，未发起在线查询。
	SourceLocal
	// SourceRemote 例句来自在线词典。
	SourceRemote
	// SourceRemoteFailed 本地未收录且在线查询失败，结果为空。
	SourceRemoteFailed
)

// Resolution 是一次例句解析的结果。
type Resolution struct {
	// Word 是归一化后的查询键。
	Word string
	// Examples 按来源给定的顺序排列，可能为空。
	Examples []Sentence
	// Source 记录本次结果的实际来源。
	Source Source
}

// Resolver 实现"本地优先，在线兜底"的例句解析策略。
type Resolver struct {
	dict   *Dictionary
	remote RemoteFetcher
	logger *zap.Logger
}

// NewResolver 组装解析策略。remote可以为nil，表示不启用在线兜底。
func NewResolver(dict *Dictionary, remote RemoteFetcher, logger *zap.Logger) *Resolver {
	return &Resolver{dict: dict, remote: remote, logger: logger}
}

// Resolve 解析一个单词的例句。
// 1. 归一化输入；
// 2. 查内置词典，命中则无条件返回本地结果，不会与在线数据合并；
// 3. 未命中则发起一次在线查询，任何失败都被吞掉，对外表现为空结果。
// 不缓存在线结果，每次未命中都会重新查询。
func (r *Resolver) Resolve(ctx context.Context, word string) Resolution {
	key := Canonicalize(word)

	if local := r.dict.Lookup(key); len(local) > 0 {
		return Resolution{Word: key, Examples: local, Source: SourceLocal}
	}

	if r.remote == nil {
		return Resolution{Word: key, Source: SourceNone}
	}

	remote, err := r.remote.FetchExamples(ctx, key)
	if err != nil {
		// 在线失败不升级为错误，只留一条日志
		r.logger.Warn("在线词典查询失败", zap.String("word", key), zap.Error(err))
		return Resolution{Word: key, Source: SourceRemoteFailed}
	}
	if len(remote) == 0 {
		return Resolution{Word: key, Source: SourceNone}
	}

	r.logger.Info("从在线词典获取到例句", zap.String("word", key), zap.Int("count", len(remote)))
	return Resolution{Word: key, Examples: remote, Source: SourceRemote}
}
