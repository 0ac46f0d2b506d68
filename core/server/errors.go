package server

import "errors"

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("server failed to listen")
	ErrShutdown             = errors.New("server shutdown error")
)
