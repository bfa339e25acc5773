package service

import "time"

const (
	idleSleepDuration = 500 * time.Millisecond
	backoffBase       = 100 * time.Millisecond
	backoffMax        = 5 * time.Second
)
