package internal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"paygate/config"
	"paygate/services"
)

const (
	testMerchantID = "MS12345678"
	testHashKey    = "12345678901234567890123456789012"
	testHashIV     = "1234567890123456"
	testTimeStamp  = 1700000000
)

func testConfig() *config.Config {
	conf := &config.Config{}
	conf.Listen.BindIP = "127.0.0.1"
	conf.Listen.Port = "0"
	conf.Cors.AllowedOrigins = []string{"*"}
	conf.Gateway = config.Gateway{
		MerchantID:  testMerchantID,
		HashKey:     testHashKey,
		HashIV:      testHashIV,
		ReturnURL:   "https://example.com/return",
		NotifyURL:   "https://example.com/notify",
		Version:     "2.0",
		RespondType: "JSON",
		ItemDesc:    "Mock Interview Analysis",
		LoginType:   0,
		Credit:      1,
		WebATM:      1,
		VACC:        1,
	}
	return conf
}

func nopLogger() *Logger {
	return newLogger("test", zap.NewNop(), nil)
}

func fixedClock(sec int64) func() time.Time {
	return func() time.Time {
		return time.Unix(sec, 0)
	}
}

type memoryDatabase struct {
	mu       sync.Mutex
	messages []services.Data
	err      error
}

func (m *memoryDatabase) WriteLogMessage(_ context.Context, data services.Data) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, data)
	return m.err
}

func (m *memoryDatabase) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}
