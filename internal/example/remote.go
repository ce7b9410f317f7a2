package example

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
)

// DefaultRemoteBaseURL 是Free Dictionary API的入口，路径末尾拼接单词。
const DefaultRemoteBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

// maxRemoteExamples 限制一次在线查询收集的例句数量。
// 按文档顺序收集，够5条就提前返回，不是"全部取回再挑5条"。
const maxRemoteExamples = 5

// pendingTranslationPrefix 标记在线例句尚未翻译的占位前缀。
const pendingTranslationPrefix = "[需要翻译] "

// RemoteFetcher 是例句解析策略依赖的在线查询接口。
type RemoteFetcher interface {
	FetchExamples(ctx context.Context, word string) ([]Sentence, error)
}

// RemoteClient 调用Free Dictionary API获取英文例句。
// 没有重试、退避和缓存；超时沿用所给HTTP客户端自身的配置。
type RemoteClient struct {
	baseURL string
	client  *http.Client
}

// NewRemoteClient 构造在线词典客户端。
// baseURL为空时使用DefaultRemoteBaseURL，client为nil时使用http.DefaultClient。
func NewRemoteClient(baseURL string, client *http.Client) *RemoteClient {
	if baseURL == "" {
		baseURL = DefaultRemoteBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteClient{baseURL: baseURL, client: client}
}

// 响应模式：顶层是entry数组，每个entry带meanings数组，
// 每个meaning带definitions数组，definition的example字段可选。
type dictionaryEntry struct {
	Meanings []struct {
		Definitions []struct {
			Example string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// FetchExamples 发起一次同步GET查询并按文档顺序展开例句树。
// 网络错误、非2xx状态、响应不符合模式都会返回包装了apperr.ErrRemoteLookup的错误。
// 每条例句的中文翻译是占位符，不调用任何翻译服务。
func (r *RemoteClient) FetchExamples(ctx context.Context, word string) ([]Sentence, error) {
	reqURL := r.baseURL + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.New(apperr.ErrRemoteLookup, fmt.Sprintf("构造在线词典请求失败: %v", err))
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.ErrRemoteLookup, fmt.Sprintf("在线词典请求失败: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.New(apperr.ErrRemoteLookup, fmt.Sprintf("在线词典返回状态码 %d", resp.StatusCode))
	}

	var entries []dictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, apperr.New(apperr.ErrRemoteLookup, fmt.Sprintf("在线词典响应解析失败: %v", err))
	}

	var examples []Sentence
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if def.Example == "" {
					continue
				}
				examples = append(examples, Sentence{
					English: def.Example,
					Chinese: pendingTranslationPrefix + def.Example,
				})
				if len(examples) >= maxRemoteExamples {
					return examples, nil
				}
			}
		}
	}
	return examples, nil
}
