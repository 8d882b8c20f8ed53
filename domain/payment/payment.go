package payment

import (
	"math/big"
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

type Record struct {
	PaymentId    string         `json:"paymentId" bson:"paymentId"`
	Payer        domain.Address `json:"payer" bson:"payer"`
	Payee        domain.Address `json:"payee" bson:"payee"`
	Currency     domain.Address `json:"currency" bson:"currency"`
	TotalPrice   string         `json:"totalPrice" bson:"totalPrice"`
	DisplayPrice string         `json:"displayPrice" bson:"displayPrice"`
	PlatformFee  string         `json:"platformFee" bson:"platformFee"`
	FeeRecipient domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}

type SettleParams struct {
	Payer          domain.Address
	Payee          domain.Address
	Currency       domain.Address
	TotalPrice     *big.Int
	PlatformFeeBps int64
	FeeRecipient   domain.Address
}

type RecordRepo interface {
	Insert(ctx ctx.Ctx, record *Record) error
	FindOne(ctx ctx.Ctx, paymentId string) (*Record, error)
	FindAllByPayer(ctx ctx.Ctx, payer domain.Address) ([]*Record, error)
}

// Service splits a sale total into platform fee and seller proceeds and
// records the resulting payment.
type Service interface {
	Settle(ctx ctx.Ctx, params SettleParams) (*Record, error)
}
