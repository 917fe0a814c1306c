package domain

import (
	"context"
	"time"
)

type AttendanceSummary struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
}

type RevenueSummary struct {
	Projected float64 `json:"projected"` // 未取消预约的合计金额
	Realized  float64 `json:"realized"`  // 已完成预约的合计金额
}

type WeekdayCount struct {
	Weekday int   `json:"weekday"` // 1=周一 … 7=周日
	Count   int64 `json:"count"`
}

type ReportRepository interface {
	AttendanceSummary(ctx context.Context, from, to time.Time) (*AttendanceSummary, error)
	RevenueSummary(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
	WeeklyPerformance(ctx context.Context, now time.Time) ([]WeekdayCount, error)
}
