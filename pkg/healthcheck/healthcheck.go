package healthcheck

import "sync/atomic"

var serverUp atomic.Bool

func InitHealthCheck() {
	serverUp.Store(true)
}

func Readiness() bool {
	return serverUp.Load()
}

func Liveness() bool {
	return serverUp.Load()
}

func ServerShutdown() {
	serverUp.Store(false)
}
