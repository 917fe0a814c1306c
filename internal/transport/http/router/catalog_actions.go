package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/domain"
	httpez "barber-booking-api/internal/transport/http/ez"
)

type listQ struct {
	Active bool `form:"active,default=true"`
}

// mountCatalogReadActions 浏览目录不需要登录
func mountCatalogReadActions(ezPublic httpez.EZ, svcs Services) {
	httpez.Register(ezPublic, httpez.Action[listQ, []domain.Service]{
		Method: http.MethodGet,
		Path:   "/services",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Service, error) {
			return svcs.Catalog.List(c.Request.Context(), in.Active)
		},
	})

	httpez.Register(ezPublic, httpez.Action[struct{}, *domain.Service]{
		Method: http.MethodGet,
		Path:   "/services/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Service, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			return svcs.Catalog.GetByID(c.Request.Context(), id)
		},
	})
}

// mountCatalogAdminActions 目录管理（管理端）
func mountCatalogAdminActions(ezAdmin httpez.EZ, svcs Services) {
	type serviceIn struct {
		Name        string  `json:"name" binding:"required,max=120"`
		Price       float64 `json:"price" binding:"required"`
		Description string  `json:"description" binding:"max=255"`
	}

	httpez.Register(ezAdmin, httpez.Action[serviceIn, *domain.Service]{
		Method: http.MethodPost,
		Path:   "/services",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *serviceIn) (*domain.Service, error) {
			return svcs.Catalog.Create(c.Request.Context(), in.Name, in.Price, in.Description)
		},
	})

	httpez.Register(ezAdmin, httpez.Action[serviceIn, *domain.Service]{
		Method: http.MethodPut,
		Path:   "/services/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *serviceIn) (*domain.Service, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			return svcs.Catalog.Update(c.Request.Context(), id, in.Name, in.Price, in.Description)
		},
	})

	// 软删：下架但保留历史
	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/services/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := svcs.Catalog.Deactivate(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPut,
		Path:   "/services/:id/restore",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return nil, err
			}
			if err := svcs.Catalog.Restore(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[listQ, []domain.Service]{
		Method: http.MethodGet,
		Path:   "/services",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Service, error) {
			return svcs.Catalog.List(c.Request.Context(), in.Active)
		},
	})
}
