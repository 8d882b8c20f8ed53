package domain

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/nftreasury/goapi/base/ctx"
)

type PayTokenId struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is a currency the marketplace accepts. The native token sentinel
// address is seeded at startup so native payments pass currency validation.
type PayToken struct {
	Name          string  `bson:"name"`
	Symbol        string  `bson:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId"`
	Address       Address `bson:"address"`
}

// DisplayAmount converts a raw on-chain amount into token units.
func (t *PayToken) DisplayAmount(amount *big.Int) string {
	unit := decimal.NewFromBigInt(big.NewInt(1), -t.TokenDecimals)
	return decimal.NewFromBigInt(amount, 0).Mul(unit).String()
}

func (t *PayToken) ToId() *PayTokenId {
	return &PayTokenId{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}
