package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/core/auth"
	"barber-booking-api/internal/domain"
	resp "barber-booking-api/internal/transport/http/response"
)

const (
	KeyUserID   = "userId"
	KeyCategory = "category"
)

// AuthJWT 校验 Bearer token；minCategory > 0 时要求至少该类别
// （Client < Staff < Admin）。过期 token 一律 401，无宽限。
func AuthJWT(j *auth.JWTer, minCategory domain.UserCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeUnauthorized),
				resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeUnauthorized),
				resp.Error(resp.CodeUnauthorized, "invalid or expired token"))
			return
		}
		if minCategory > 0 && claims.Category < minCategory {
			c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeForbidden),
				resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyCategory, claims.Category)
		c.Next()
	}
}

// UserID 从上下文取当前登录用户
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(KeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func Category(c *gin.Context) domain.UserCategory {
	if v, ok := c.Get(KeyCategory); ok {
		if cat, ok := v.(domain.UserCategory); ok {
			return cat
		}
	}
	return 0
}
