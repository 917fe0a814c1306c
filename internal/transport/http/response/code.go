package response

import (
	"net/http"

	"barber-booking-api/internal/apperr"
)

// 业务码直接基于 HTTP 语义
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeServerError     = 500
)

// CodeMsgMap 集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeOK:              "OK",
	CodeBadRequest:      "Bad Request",
	CodeUnauthorized:    "Unauthorized",
	CodeForbidden:       "Forbidden",
	CodeNotFound:        "Not Found",
	CodeTooManyRequests: "Too Many Requests",
	CodeServerError:     "Internal Server Error",
}

// CodeOf 错误类别 → 业务码。状态流转非法算 400。
func CodeOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return CodeNotFound
	case apperr.KindInvalid, apperr.KindTransition:
		return CodeBadRequest
	case apperr.KindUnauthenticated:
		return CodeUnauthorized
	case apperr.KindForbidden:
		return CodeForbidden
	default:
		return CodeServerError
	}
}

// HTTPStatus 业务码同时作为 HTTP 状态返回（0 → 200）
func HTTPStatus(code int) int {
	if code == CodeOK {
		return http.StatusOK
	}
	return code
}
