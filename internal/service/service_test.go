package service

// Общие хелперы тестов сервисного слоя.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: мок хранилища сгенерирован в пакете /mocks (MockStorage).

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/harisahmad000005/osint-news-platform/internal/config"
	"github.com/harisahmad000005/osint-news-platform/mocks"
)

// testConfig — конфигурация по умолчанию для тестов.
func testConfig() config.Config {
	return config.Config{
		Poller: config.PollerConfig{
			Interval:       time.Minute,
			MaxConcurrent:  4,
			AttemptTimeout: 2 * time.Second,
			RatePerSecond:  100,
		},
		Health: config.HealthConfig{
			FailureThreshold: 5,
			ErrorMaxLen:      500,
		},
		Trending: config.TrendingConfig{
			WindowDays:    7,
			TopEntities:   5,
			TrendingRanks: 10,
		},
	}
}

func newTestService(t *testing.T, opts ...Option) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	return New(st, testConfig(), opts...), st, ctrl
}
