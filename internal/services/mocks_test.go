package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/logger"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Level: "error"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// MockPairSender is a mock implementation of services.PairSender
type MockPairSender struct {
	mock.Mock
}

func (m *MockPairSender) SendPair(ctx context.Context, customer, business mailer.Envelope) error {
	args := m.Called(ctx, customer, business)
	return args.Error(0)
}
