package ez

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/apperr"
	resp "barber-booking-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// Action 一行注册：I 入参，O 出参。
// Handler 返回的错误按 apperr.Kind 统一映射成响应码。
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // 例："/auth/login"、"/appointments/:id/confirm"
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			Fail(c, apperr.Invalid(bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

// Fail 错误类别决定业务码和 HTTP 状态（404/400/401/403/500）
func Fail(c *gin.Context, err error) {
	code := resp.CodeOf(apperr.KindOf(err))
	c.JSON(resp.HTTPStatus(code), resp.Error(code, err.Error()))
}

// IDParam 路径里的数字 ID
func IDParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Invalid("invalid " + name)
	}
	return uint(v), nil
}
