package services

import (
	"context"
	"paygate/entity"
)

type Payments interface {
	CreatePayment(ctx context.Context, request *entity.TradeRequest) (*entity.SignedPayload, error)
}
