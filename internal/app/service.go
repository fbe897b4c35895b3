package app

import (
	"time"

	"artifactory-cleanup/internal/adapters"
	"artifactory-cleanup/internal/ports"
)

type Service struct {
	ConfigLoader ports.ConfigPort
	Executor     ports.DeleteExecutorPort
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		ConfigLoader: adapters.NewConfigFileAdapter(),
		Executor:     adapters.NewJFrogDeleteAdapter(),
		Clock:        time.Now,
	}
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
