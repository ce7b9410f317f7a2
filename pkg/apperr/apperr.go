package apperr

import (
	"errors"
	"net/http"
)

// 跨层使用的哨兵错误。
// 服务层用 apperr.New(哨兵, "中文提示") 包装后返回，
// 处理器通过 errors.Is 匹配哨兵并转换为HTTP状态码。
var (
	// ErrValidation 请求字段缺失或格式错误 -> 400
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized 用户不存在或凭证错误 -> 401
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound 资源不存在 -> 404
	ErrNotFound = errors.New("not found")
	// ErrConflict 唯一性冲突（如用户名已存在）-> 409
	ErrConflict = errors.New("conflict")
	// ErrRemoteLookup 上游词典服务失败。
	// 它永远不会到达HTTP边界：例句解析策略会把它吞掉并返回空结果。
	ErrRemoteLookup = errors.New("remote lookup failed")
)

// Error 把一个哨兵错误和展示给调用方的消息绑定在一起。
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// New 构造一个归类到kind的错误，message是最终返回给调用方的文本。
func New(kind error, message string) error {
	return &Error{kind: kind, message: message}
}

// HTTPStatus 把服务层错误映射为HTTP状态码，未识别的错误一律500。
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
