package domain

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod разбирает токен периода из параметра запроса.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	default:
		return "", NewValidationError("unknown period %q, expected one of: day, week, month, year", s)
	}
}

// Start возвращает нижнюю границу периода относительно now:
// day - начало текущих суток, week - начало суток семью днями ранее,
// month - первое число текущего месяца, year - первое января текущего года.
// Все границы усекаются до полуночи.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		weekAgo := now.AddDate(0, 0, -7)
		return time.Date(weekAgo.Year(), weekAgo.Month(), weekAgo.Day(), 0, 0, 0, 0, now.Location())
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		panic(fmt.Sprintf("invalid period %q", p))
	}
}
