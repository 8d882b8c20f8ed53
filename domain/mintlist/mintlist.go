package mintlist

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/domain/listing"
)

type ClaimAndListParams struct {
	Receiver      domain.Address              `json:"receiver" validate:"required"`
	Quantity      int64                       `json:"quantity" validate:"gt=0"`
	Currency      domain.Address              `json:"currency"`
	PricePerToken string                      `json:"pricePerToken"`
	Proof         *claim.AllowlistProof       `json:"proof"`
	Listing       listing.CreateListingParams `json:"listing"`
}

type ClaimAndListResult struct {
	TokenId   int64            `json:"tokenId"`
	Listing   *listing.Listing `json:"listing,omitempty"`
	Listed    bool             `json:"listed"`
	ListError string           `json:"listError,omitempty"`
}

// UseCase mints through the claim engine on behalf of a claimer and
// immediately lists the minted token. Restricted to operator accounts.
type UseCase interface {
	ClaimAndList(ctx ctx.Ctx, caller domain.Address, params ClaimAndListParams) (*ClaimAndListResult, error)
}
