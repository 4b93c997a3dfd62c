package middleware

import "time"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestObserver . RequestObserver
type RequestObserver interface {
	ObserveRequest(route string, status int, took time.Duration)
}
