package internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paygate/config"
	"paygate/entity"
	"paygate/services"
)

// Payments prepares signed trade info for the hosted checkout.
// It keeps no per-request state, concurrent calls need no coordination.
type Payments struct {
	gateway   config.Gateway
	encryptor *Encryptor
	logger    services.LogHandler
	now       func() time.Time
}

// NewPayments fails with ConfigurationError when the gateway key material is unusable.
func NewPayments(conf *config.Config) (*Payments, error) {
	encryptor, err := NewEncryptor(conf.Gateway.HashKey, conf.Gateway.HashIV)
	if err != nil {
		return nil, err
	}
	return &Payments{
		gateway:   conf.Gateway,
		encryptor: encryptor,
		now:       time.Now,
	}, nil
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	if p.gateway.MerchantID == "" {
		p.logger.Warn("merchant id is not configured")
	}
}

// CreatePayment validates the request and returns the gateway form fields.
func (p *Payments) CreatePayment(ctx context.Context, request *entity.TradeRequest) (*entity.SignedPayload, error) {
	if request == nil || request.Amount.IsEmpty() || request.Email == "" {
		return nil, &ValidationError{Message: msgMissingFields}
	}
	if _, err := request.Amount.Decimal(); err != nil {
		return nil, &ValidationError{Message: msgInvalidAmount, Err: err}
	}

	timeStamp := unixSeconds(p.now())
	orderNo := request.SessionId
	if orderNo == "" {
		orderNo = fmt.Sprintf("ORD%d", timeStamp)
	}
	itemDesc := request.ItemDesc
	if itemDesc == "" {
		itemDesc = p.gateway.ItemDesc
	}

	info := entity.TradeInfo{
		MerchantID:      p.gateway.MerchantID,
		RespondType:     p.gateway.RespondType,
		TimeStamp:       timeStamp,
		Version:         p.gateway.Version,
		MerchantOrderNo: orderNo,
		Amt:             request.Amount.String(),
		ItemDesc:        itemDesc,
		ReturnURL:       p.gateway.ReturnURL,
		NotifyURL:       p.gateway.NotifyURL,
		Email:           request.Email,
		LoginType:       p.gateway.LoginType,
		Credit:          p.gateway.Credit,
		WebATM:          p.gateway.WebATM,
		VACC:            p.gateway.VACC,
	}

	payload, err := p.sign(info)
	if err != nil {
		p.logError(ctx, fmt.Sprintf("sign order %s", orderNo), err)
		return nil, err
	}
	p.logInfo(ctx, fmt.Sprintf("order %s signed; amount %s; email %s", orderNo, info.Amt, secret(info.Email)))
	return payload, nil
}

func (p *Payments) sign(info entity.TradeInfo) (*entity.SignedPayload, error) {
	tradeString := EncodeTradeInfo(info)
	if p.logger != nil {
		p.logger.Debug(fmt.Sprintf("trade string: %s", tradeString))
	}

	tradeInfo, err := p.encryptor.Encrypt(tradeString)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return &entity.SignedPayload{
		MerchantID:      info.MerchantID,
		TradeInfo:       tradeInfo,
		TradeSha:        p.encryptor.TradeSha(tradeInfo),
		Version:         info.Version,
		MerchantOrderNo: info.MerchantOrderNo,
	}, nil
}

func (p *Payments) logInfo(ctx context.Context, text string) {
	if p.logger != nil {
		p.logger.Info(fmt.Sprintf("[%s] %s", GetRequestID(ctx), text))
	}
}

func (p *Payments) logError(ctx context.Context, text string, err error) {
	if p.logger != nil {
		p.logger.Error(fmt.Sprintf("[%s] %s", GetRequestID(ctx), text), err)
	}
}

// unixSeconds rounds to the nearest second, as the reference gateway clients do.
func unixSeconds(t time.Time) int64 {
	return (t.UnixMilli() + 500) / 1000
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
