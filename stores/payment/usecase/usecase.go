package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/payment"
)

type PaymentUseCaseCfg struct {
	RecordRepo   payment.RecordRepo
	PayTokenRepo domain.PayTokenRepo
	ChainId      domain.ChainId
}

type impl struct {
	recordRepo   payment.RecordRepo
	payTokenRepo domain.PayTokenRepo
	chainId      domain.ChainId
}

func New(cfg *PaymentUseCaseCfg) payment.Service {
	return &impl{
		recordRepo:   cfg.RecordRepo,
		payTokenRepo: cfg.PayTokenRepo,
		chainId:      cfg.ChainId,
	}
}

func (im *impl) Settle(ctx ctx.Ctx, params payment.SettleParams) (*payment.Record, error) {
	if params.TotalPrice == nil || params.TotalPrice.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	if params.PlatformFeeBps < 0 || params.PlatformFeeBps > domain.MaxBps.Int64() {
		return nil, domain.ErrBadParamInput
	}

	payToken := &domain.PayToken{ChainId: im.chainId, Address: domain.NativeTokenAddress, TokenDecimals: 18}
	if !params.Currency.IsNativeToken() {
		pt, err := im.payTokenRepo.FindOne(ctx, im.chainId, params.Currency)
		if err == domain.ErrNotFound {
			return nil, domain.ErrInvalidCurrency
		} else if err != nil {
			return nil, err
		}
		payToken = pt
	}

	fee := new(big.Int).Mul(params.TotalPrice, big.NewInt(params.PlatformFeeBps))
	fee.Div(fee, domain.MaxBps)

	record := &payment.Record{
		PaymentId:    uuid.New().String(),
		Payer:        params.Payer.ToLower(),
		Payee:        params.Payee.ToLower(),
		Currency:     params.Currency.ToLower(),
		TotalPrice:   params.TotalPrice.String(),
		DisplayPrice: payToken.DisplayAmount(params.TotalPrice),
		PlatformFee:  fee.String(),
		FeeRecipient: params.FeeRecipient.ToLower(),
		CreatedAt:    time.Now(),
	}
	if err := im.recordRepo.Insert(ctx, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"record": *record,
		}).Error("failed to recordRepo.Insert")
		return nil, err
	}
	return record, nil
}
