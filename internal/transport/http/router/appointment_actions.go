package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
	"barber-booking-api/internal/service"
	httpez "barber-booking-api/internal/transport/http/ez"
)

type appointmentOut struct {
	ID          uint                     `json:"id"`
	ScheduledAt time.Time                `json:"scheduledAt"`
	Status      domain.AppointmentStatus `json:"status"`
	StatusName  string                   `json:"statusName"`
	Service     domain.Service           `json:"service"`
	User        userOut                  `json:"user"`
}

func toAppointmentOut(a *domain.Appointment) appointmentOut {
	return appointmentOut{
		ID:          a.ID,
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status,
		StatusName:  a.Status.String(),
		Service:     a.Service,
		User:        toUserOut(&a.User),
	}
}

func toAppointmentList(as []domain.Appointment) []appointmentOut {
	out := make([]appointmentOut, 0, len(as))
	for i := range as {
		out = append(out, toAppointmentOut(&as[i]))
	}
	return out
}

type editIn struct {
	ScheduledAt time.Time `json:"scheduledAt"`
	ServiceID   uint      `json:"serviceId" binding:"required"`
	UserID      uint      `json:"userId" binding:"required"`
}

func (in *editIn) edit() service.Edit {
	return service.Edit{ScheduledAt: in.ScheduledAt, ServiceID: in.ServiceID, UserID: in.UserID}
}

func mountAppointmentActions(ezAuth httpez.EZ, svcs Services) {
	httpez.Register(ezAuth, httpez.Action[editIn, appointmentOut]{
		Method: http.MethodPost,
		Path:   "/appointments",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *editIn) (appointmentOut, error) {
			a, err := svcs.Scheduler.Create(c.Request.Context(), in.UserID, in.ServiceID, in.ScheduledAt)
			if err != nil {
				return appointmentOut{}, err
			}
			return toAppointmentOut(a), nil
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, appointmentOut]{
		Method: http.MethodGet,
		Path:   "/appointments/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (appointmentOut, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return appointmentOut{}, err
			}
			a, err := svcs.Scheduler.GetByID(c.Request.Context(), id)
			if err != nil {
				return appointmentOut{}, err
			}
			return toAppointmentOut(a), nil
		},
	})

	transition := func(path string, step func(c *gin.Context, id uint) (*domain.Appointment, error)) {
		httpez.Register(ezAuth, httpez.Action[struct{}, appointmentOut]{
			Method: http.MethodPut,
			Path:   path,
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *struct{}) (appointmentOut, error) {
				id, err := httpez.IDParam(c, "id")
				if err != nil {
					return appointmentOut{}, err
				}
				a, err := step(c, id)
				if err != nil {
					return appointmentOut{}, err
				}
				return toAppointmentOut(a), nil
			},
		})
	}
	transition("/appointments/:id/confirm", func(c *gin.Context, id uint) (*domain.Appointment, error) {
		return svcs.Scheduler.Confirm(c.Request.Context(), id)
	})
	transition("/appointments/:id/cancel", func(c *gin.Context, id uint) (*domain.Appointment, error) {
		return svcs.Scheduler.Cancel(c.Request.Context(), id)
	})

	httpez.Register(ezAuth, httpez.Action[editIn, appointmentOut]{
		Method: http.MethodPut,
		Path:   "/appointments/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *editIn) (appointmentOut, error) {
			id, err := httpez.IDParam(c, "id")
			if err != nil {
				return appointmentOut{}, err
			}
			a, err := svcs.Scheduler.Update(c.Request.Context(), id, in.edit())
			if err != nil {
				return appointmentOut{}, err
			}
			return toAppointmentOut(a), nil
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, []appointmentOut]{
		Method: http.MethodGet,
		Path:   "/appointments",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]appointmentOut, error) {
			as, err := svcs.Scheduler.ListActive(c.Request.Context())
			if err != nil {
				return nil, err
			}
			return toAppointmentList(as), nil
		},
	})

	// 当天排班；?date=2025-03-01 可看任意一天
	type dayIn struct {
		Date string `form:"date"`
	}
	httpez.Register(ezAuth, httpez.Action[dayIn, []appointmentOut]{
		Method: http.MethodGet,
		Path:   "/appointments/day",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *dayIn) ([]appointmentOut, error) {
			day := time.Now().UTC()
			if in.Date != "" {
				var err error
				day, err = time.Parse("2006-01-02", in.Date)
				if err != nil {
					return nil, apperr.Invalid("date must be YYYY-MM-DD")
				}
			}
			as, err := svcs.Scheduler.ListForDay(c.Request.Context(), day)
			if err != nil {
				return nil, err
			}
			return toAppointmentList(as), nil
		},
	})
}
