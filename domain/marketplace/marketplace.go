package marketplace

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

const (
	// DefaultListPriceBpsIncrease is applied to the buyout price each time
	// a listing is bought out.
	DefaultListPriceBpsIncrease int64 = 1000
	DefaultPlatformFeeBps       int64 = 0
)

// Flags is the marketplace-wide configuration singleton.
type Flags struct {
	OutsideListingAllowed bool           `json:"outsideListingAllowed" bson:"outsideListingAllowed"`
	AuctionEnabled        bool           `json:"auctionEnabled" bson:"auctionEnabled"`
	PlatformFeeBps        int64          `json:"platformFeeBps" bson:"platformFeeBps"`
	ListPriceBpsIncrease  int64          `json:"listPriceBpsIncrease" bson:"listPriceBpsIncrease"`
	PlatformFeeRecipient  domain.Address `json:"platformFeeRecipient" bson:"platformFeeRecipient"`
}

func DefaultFlags() *Flags {
	return &Flags{
		OutsideListingAllowed: false,
		AuctionEnabled:        false,
		PlatformFeeBps:        DefaultPlatformFeeBps,
		ListPriceBpsIncrease:  DefaultListPriceBpsIncrease,
	}
}

type FlagsPatchable struct {
	OutsideListingAllowed *bool           `json:"outsideListingAllowed" bson:"outsideListingAllowed,omitempty"`
	AuctionEnabled        *bool           `json:"auctionEnabled" bson:"auctionEnabled,omitempty"`
	PlatformFeeBps        *int64          `json:"platformFeeBps" bson:"platformFeeBps,omitempty"`
	ListPriceBpsIncrease  *int64          `json:"listPriceBpsIncrease" bson:"listPriceBpsIncrease,omitempty"`
	PlatformFeeRecipient  *domain.Address `json:"platformFeeRecipient" bson:"platformFeeRecipient,omitempty"`
}

type FlagsRepo interface {
	Get(ctx ctx.Ctx) (*Flags, error)
	Update(ctx ctx.Ctx, patchable FlagsPatchable) error
}

type FlagsUseCase interface {
	Get(ctx ctx.Ctx) (*Flags, error)
	SetOutsideListingAllowed(ctx ctx.Ctx, caller domain.Address, allowed bool) error
	SetAuctionEnabled(ctx ctx.Ctx, caller domain.Address, enabled bool) error
	SetPlatformFee(ctx ctx.Ctx, caller domain.Address, bps int64, recipient domain.Address) error
	SetListPriceBpsIncrease(ctx ctx.Ctx, caller domain.Address, bps int64) error
}
