package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/domain"
	httpez "barber-booking-api/internal/transport/http/ez"
)

// mountReportActions 经营报表（原来是存储过程，这里是聚合查询）
func mountReportActions(ezAdmin httpez.EZ, svcs Services) {
	type rangeIn struct {
		From time.Time `json:"from" binding:"required"`
		To   time.Time `json:"to" binding:"required"`
	}

	httpez.Register(ezAdmin, httpez.Action[rangeIn, *domain.AttendanceSummary]{
		Method: http.MethodPost,
		Path:   "/reports/attendance",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *rangeIn) (*domain.AttendanceSummary, error) {
			return svcs.Reports.Attendance(c.Request.Context(), in.From, in.To)
		},
	})

	httpez.Register(ezAdmin, httpez.Action[rangeIn, *domain.RevenueSummary]{
		Method: http.MethodPost,
		Path:   "/reports/revenue",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *rangeIn) (*domain.RevenueSummary, error) {
			return svcs.Reports.Revenue(c.Request.Context(), in.From, in.To)
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, []domain.WeekdayCount]{
		Method: http.MethodGet,
		Path:   "/reports/weekly",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.WeekdayCount, error) {
			return svcs.Reports.WeeklyPerformance(c.Request.Context())
		},
	})

	// 当天排班的管理端视图
	httpez.Register(ezAdmin, httpez.Action[struct{}, []appointmentOut]{
		Method: http.MethodGet,
		Path:   "/reports/day",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]appointmentOut, error) {
			as, err := svcs.Scheduler.ListForDay(c.Request.Context(), time.Now().UTC())
			if err != nil {
				return nil, err
			}
			return toAppointmentList(as), nil
		},
	})
}
