package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/domain"
	"barber-booking-api/internal/service"
	httpez "barber-booking-api/internal/transport/http/ez"
	mdw "barber-booking-api/internal/transport/http/middleware"
)

type userOut struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Category domain.UserCategory `json:"category"`
	Active   bool                `json:"active"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Name: u.Name, Email: u.Email, Category: u.Category, Active: u.Active}
}

// mountPublicActions 无需登录的入口：登录、注册、目录浏览、枚举
func mountPublicActions(ezPublic httpez.EZ, svcs Services) {
	type loginIn struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		UserID    uint                `json:"userId"`
		Category  domain.UserCategory `json:"category"`
		Token     string              `json:"token"`
		ExpiresAt time.Time           `json:"expiresAt"`
	}
	httpez.Register(ezPublic, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			res, err := svcs.Accounts.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{UserID: res.UserID, Category: res.Category, Token: res.Token, ExpiresAt: res.ExpiresAt}, nil
		},
	})

	type registerIn struct {
		Name     string              `json:"name" binding:"required,max=120"`
		Email    string              `json:"email" binding:"required,email"`
		Password string              `json:"password" binding:"required,min=6"`
		Category domain.UserCategory `json:"category" binding:"required"`
	}
	httpez.Register(ezPublic, httpez.Action[registerIn, userOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (userOut, error) {
			u, err := svcs.Accounts.Register(c.Request.Context(), in.Name, in.Email, in.Password, in.Category)
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})

	httpez.Register(ezPublic, httpez.Action[struct{}, []service.EnumItem]{
		Method: http.MethodGet,
		Path:   "/users/categories",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]service.EnumItem, error) {
			return svcs.Accounts.Categories(), nil
		},
	})

	httpez.Register(ezPublic, httpez.Action[struct{}, []service.EnumItem]{
		Method: http.MethodGet,
		Path:   "/appointments/statuses",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]service.EnumItem, error) {
			return svcs.Scheduler.Statuses(), nil
		},
	})

	mountCatalogReadActions(ezPublic, svcs)
}

// mountAccountActions 登录态下的账号接口
func mountAccountActions(ezAuth httpez.EZ, svcs Services) {
	httpez.Register(ezAuth, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (userOut, error) {
			u, err := svcs.Accounts.GetByID(c.Request.Context(), mdw.UserID(c))
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})

	type changePwIn struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	httpez.Register(ezAuth, httpez.Action[changePwIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/users/:id/password",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *changePwIn) (gin.H, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := svcs.Accounts.ChangePassword(c.Request.Context(), id, in.OldPassword, in.NewPassword); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
