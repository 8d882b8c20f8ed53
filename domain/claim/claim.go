package claim

import (
	"math/big"
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

// ConditionId identifies a claim phase. Resetting claim eligibility
// starts a new phase, which resets every wallet's claimed count.
type ConditionId int64

type Condition struct {
	ConditionId            ConditionId    `json:"conditionId" bson:"conditionId"`
	StartTimestamp         time.Time      `json:"startTimestamp" bson:"startTimestamp"`
	MaxClaimableSupply     int64          `json:"maxClaimableSupply" bson:"maxClaimableSupply"`
	SupplyClaimed          int64          `json:"supplyClaimed" bson:"supplyClaimed"`
	QuantityLimitPerWallet string         `json:"quantityLimitPerWallet" bson:"quantityLimitPerWallet"`
	MerkleRoot             string         `json:"merkleRoot" bson:"merkleRoot"`
	PricePerToken          string         `json:"pricePerToken" bson:"pricePerToken"`
	Currency               domain.Address `json:"currency" bson:"currency"`
	Metadata               string         `json:"metadata" bson:"metadata"`
	UpdatedAt              time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (c *Condition) WalletLimit() (*big.Int, error) {
	limit, ok := new(big.Int).SetString(c.QuantityLimitPerWallet, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return limit, nil
}

func (c *Condition) Price() (*big.Int, error) {
	p, ok := new(big.Int).SetString(c.PricePerToken, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return p, nil
}

// AllowlistProof carries a merkle proof plus the per-leaf overrides the
// allowlist may grant. A zero-value override falls back to the condition.
type AllowlistProof struct {
	Proof                  []string `json:"proof"`
	QuantityLimitPerWallet string   `json:"quantityLimitPerWallet"`
	PricePerToken          string   `json:"pricePerToken"`
	Currency               string   `json:"currency"`
}

type WalletClaim struct {
	ConditionId ConditionId    `json:"conditionId" bson:"conditionId"`
	Wallet      domain.Address `json:"wallet" bson:"wallet"`
	Claimed     int64          `json:"claimed" bson:"claimed"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type SetConditionParams struct {
	StartTimestamp         int64          `json:"startTimestamp"`
	MaxClaimableSupply     int64          `json:"maxClaimableSupply" validate:"gte=0"`
	QuantityLimitPerWallet string         `json:"quantityLimitPerWallet"`
	MerkleRoot             string         `json:"merkleRoot"`
	PricePerToken          string         `json:"pricePerToken"`
	Currency               domain.Address `json:"currency"`
	Metadata               string         `json:"metadata"`
	ResetClaimEligibility  bool           `json:"resetClaimEligibility"`
}

type ClaimParams struct {
	Receiver      domain.Address  `json:"receiver" validate:"required"`
	Quantity      int64           `json:"quantity" validate:"gt=0"`
	Currency      domain.Address  `json:"currency"`
	PricePerToken string          `json:"pricePerToken"`
	Proof         *AllowlistProof `json:"proof"`
}

type ConditionRepo interface {
	Get(ctx ctx.Ctx) (*Condition, error)
	Set(ctx ctx.Ctx, condition *Condition) error
	// ConsumeSupply adds quantity to supplyClaimed of the current phase,
	// failing with ErrClaimRejected when the cap would be exceeded.
	ConsumeSupply(ctx ctx.Ctx, id ConditionId, quantity, maxClaimableSupply int64) error
}

type WalletClaimRepo interface {
	FindOne(ctx ctx.Ctx, id ConditionId, wallet domain.Address) (*WalletClaim, error)
	Increment(ctx ctx.Ctx, id ConditionId, wallet domain.Address, quantity int64) error
}

type UseCase interface {
	GetCondition(ctx ctx.Ctx) (*Condition, error)
	SetCondition(ctx ctx.Ctx, caller domain.Address, params SetConditionParams) (*Condition, error)
	// VerifyClaim checks eligibility without consuming any quota.
	VerifyClaim(ctx ctx.Ctx, claimer domain.Address, params ClaimParams) error
	// Claim verifies, consumes supply and wallet quota for claimer, and
	// mints to the receiver. Returns the first minted tokenId.
	Claim(ctx ctx.Ctx, claimer domain.Address, params ClaimParams) (int64, error)
	GetWalletClaimed(ctx ctx.Ctx, wallet domain.Address) (int64, error)
}
