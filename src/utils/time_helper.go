package utils

import "time"

type TimeServiceInterface interface {
	GetNowUnix() int64
	GetNowDateTimeString() string
}

type TimeHelper struct {
}

func (t *TimeHelper) GetNowUnix() int64 {
	return time.Now().Unix()
}
func (t *TimeHelper) GetNowDateTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
