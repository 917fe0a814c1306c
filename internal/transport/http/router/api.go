package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barber-booking-api/internal/core/auth"
	"barber-booking-api/internal/domain"
	httpez "barber-booking-api/internal/transport/http/ez"
	mdw "barber-booking-api/internal/transport/http/middleware"
)

// NewAPIEngine 客户端/员工端：登录、目录浏览、预约操作。
// 预约相关接口要求 Staff 以上（Client 类账号本来就登录不了这个入口）。
func NewAPIEngine(l *zap.Logger, svcs Services, jwter *auth.JWTer) *gin.Engine {
	r := newEngine(l)

	api := r.Group("/api/v1")
	ezPublic := httpez.New(api)

	mountPublicActions(ezPublic, svcs)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, domain.CategoryStaff))
	ezAuth := httpez.New(authed)

	mountAccountActions(ezAuth, svcs)
	mountAppointmentActions(ezAuth, svcs)

	return r
}
