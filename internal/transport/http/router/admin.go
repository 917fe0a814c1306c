package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barber-booking-api/internal/core/auth"
	"barber-booking-api/internal/domain"
	"barber-booking-api/internal/service"
	httpez "barber-booking-api/internal/transport/http/ez"
	mdw "barber-booking-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端：账号管理、目录管理、预约强改、报表。
// 统一要求 Admin 类别。
func NewAdminEngine(l *zap.Logger, svcs Services, jwter *auth.JWTer) *gin.Engine {
	r := newEngine(l)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.CategoryAdmin))
	ezAdmin := httpez.New(admin)

	mountUserAdminActions(ezAdmin, svcs)
	mountCatalogAdminActions(ezAdmin, svcs)
	mountOverrideActions(ezAdmin, svcs)
	mountReportActions(ezAdmin, svcs)

	return r
}

func mountUserAdminActions(ezAdmin httpez.EZ, svcs Services) {
	httpez.Register(ezAdmin, httpez.Action[listQ, []userOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]userOut, error) {
			us, err := svcs.Accounts.List(c.Request.Context(), in.Active)
			if err != nil {
				return nil, err
			}
			out := make([]userOut, 0, len(us))
			for i := range us {
				out = append(out, toUserOut(&us[i]))
			}
			return out, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (userOut, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return userOut{}, err
			}
			u, err := svcs.Accounts.GetByID(c.Request.Context(), id)
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})

	type userUpdateIn struct {
		Name     string              `json:"name" binding:"required,max=120"`
		Email    string              `json:"email" binding:"required,email"`
		Category domain.UserCategory `json:"category" binding:"required"`
	}
	httpez.Register(ezAdmin, httpez.Action[userUpdateIn, userOut]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *userUpdateIn) (userOut, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return userOut{}, err
			}
			u, err := svcs.Accounts.Update(c.Request.Context(), id, in.Name, in.Email, in.Category)
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})

	// 软删/恢复
	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := svcs.Accounts.Deactivate(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPut,
		Path:   "/users/:id/restore",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := svcs.Accounts.Restore(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

// mountOverrideActions 预约全量覆盖，可直接指定状态，绕过流转限制
func mountOverrideActions(ezAdmin httpez.EZ, svcs Services) {
	type overrideIn struct {
		ScheduledAt time.Time                `json:"scheduledAt"`
		ServiceID   uint                     `json:"serviceId" binding:"required"`
		UserID      uint                     `json:"userId" binding:"required"`
		Status      domain.AppointmentStatus `json:"status" binding:"required"`
	}
	httpez.Register(ezAdmin, httpez.Action[overrideIn, appointmentOut]{
		Method: http.MethodPut,
		Path:   "/appointments/:id/override",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *overrideIn) (appointmentOut, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return appointmentOut{}, err
			}
			edit := service.Edit{ScheduledAt: in.ScheduledAt, ServiceID: in.ServiceID, UserID: in.UserID}
			a, err := svcs.Scheduler.Override(c.Request.Context(), id, edit, in.Status)
			if err != nil {
				return appointmentOut{}, err
			}
			return toAppointmentOut(a), nil
		},
	})
}
