package listing

import (
	"math/big"
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

type ListingId int64

type ListingType string

const (
	ListingTypeDirect  ListingType = "direct"
	ListingTypeAuction ListingType = "auction"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Listing struct {
	ListingId            ListingId      `json:"listingId" bson:"listingId"`
	AssetContract        domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId              domain.TokenId `json:"tokenId" bson:"tokenId"`
	TokenOwner           domain.Address `json:"tokenOwner" bson:"tokenOwner"`
	Quantity             int64          `json:"quantity" bson:"quantity"`
	CurrencyToAccept     domain.Address `json:"currencyToAccept" bson:"currencyToAccept"`
	ReservePricePerToken string         `json:"reservePricePerToken" bson:"reservePricePerToken"`
	BuyoutPricePerToken  string         `json:"buyoutPricePerToken" bson:"buyoutPricePerToken"`
	ListingType          ListingType    `json:"listingType" bson:"listingType"`
	StartTime            time.Time      `json:"startTime" bson:"startTime"`
	EndTime              time.Time      `json:"endTime" bson:"endTime"`
	Status               Status         `json:"status" bson:"status"`
	CreatedBy            domain.Address `json:"createdBy" bson:"createdBy"`
	CreatedAt            time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt" bson:"updatedAt"`
	SaleCount            int64          `json:"saleCount" bson:"saleCount"`
}

func (l *Listing) LowerCase() {
	l.AssetContract = l.AssetContract.ToLower()
	l.TokenOwner = l.TokenOwner.ToLower()
	l.CurrencyToAccept = l.CurrencyToAccept.ToLower()
	l.CreatedBy = l.CreatedBy.ToLower()
}

func (l *Listing) BuyoutPrice() (*big.Int, error) {
	p, ok := new(big.Int).SetString(l.BuyoutPricePerToken, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return p, nil
}

// NextBuyoutPrice returns the price the listing re-arms with after a
// buyout, increased by `bps` basis points and truncated toward zero.
func NextBuyoutPrice(price *big.Int, bps int64) *big.Int {
	inc := new(big.Int).Mul(price, big.NewInt(bps))
	inc.Div(inc, domain.MaxBps)
	return new(big.Int).Add(price, inc)
}

type ListingPatchable struct {
	TokenOwner          *domain.Address `json:"tokenOwner" bson:"tokenOwner,omitempty"`
	BuyoutPricePerToken *string         `json:"buyoutPricePerToken" bson:"buyoutPricePerToken,omitempty"`
	Quantity            *int64          `json:"quantity" bson:"quantity,omitempty"`
	Status              *Status         `json:"status" bson:"status,omitempty"`
	UpdatedAt           *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
	SaleCount           *int64          `json:"saleCount" bson:"saleCount,omitempty"`
}

type CreateListingParams struct {
	AssetContract        domain.Address `json:"assetContract" validate:"required"`
	OnBehalfOf           domain.Address `json:"onBehalfOf"`
	TokenId              domain.TokenId `json:"tokenId" validate:"required"`
	Quantity             int64          `json:"quantity" validate:"gt=0"`
	CurrencyToAccept     domain.Address `json:"currencyToAccept"`
	ReservePricePerToken string         `json:"reservePricePerToken"`
	BuyoutPricePerToken  string         `json:"buyoutPricePerToken" validate:"required"`
	ListingType          ListingType    `json:"listingType"`
	StartTime            int64          `json:"startTime"`
	SecondsUntilEndTime  int64          `json:"secondsUntilEndTime"`
}

type BuyParams struct {
	ListingId          ListingId      `json:"listingId"`
	BuyFor             domain.Address `json:"buyFor" validate:"required"`
	Quantity           int64          `json:"quantity" validate:"gt=0"`
	Currency           domain.Address `json:"currency"`
	TotalOfferedAmount string         `json:"totalOfferedAmount" validate:"required"`
}

type SaleReceipt struct {
	ListingId              ListingId      `json:"listingId" bson:"listingId"`
	AssetContract          domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId                domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller                 domain.Address `json:"seller" bson:"seller"`
	Buyer                  domain.Address `json:"buyer" bson:"buyer"`
	Quantity               int64          `json:"quantity" bson:"quantity"`
	PricePerToken          string         `json:"pricePerToken" bson:"pricePerToken"`
	TotalPricePaid         string         `json:"totalPricePaid" bson:"totalPricePaid"`
	PlatformFee            string         `json:"platformFee" bson:"platformFee"`
	PaymentId              string         `json:"paymentId" bson:"paymentId"`
	NewBuyoutPricePerToken string         `json:"newBuyoutPricePerToken" bson:"newBuyoutPricePerToken"`
	Time                   time.Time      `json:"time" bson:"time"`
}

type FindAllOptions struct {
	AssetContract *domain.Address
	TokenId       *domain.TokenId
	TokenOwner    *domain.Address
	Status        *Status
	ListingType   *ListingType
	Offset        *int32
	Limit         *int32
	Sort          *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithAssetContract(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		address = address.ToLower()
		options.AssetContract = &address
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithTokenOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		owner = owner.ToLower()
		options.TokenOwner = &owner
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithListingType(t ListingType) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingType = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	FindOne(ctx ctx.Ctx, id ListingId) (*Listing, error)
	Create(ctx ctx.Ctx, listing *Listing) (ListingId, error)
	Update(ctx ctx.Ctx, id ListingId, patchable ListingPatchable) error
}

type SaleReceiptRepo interface {
	Insert(ctx ctx.Ctx, receipt *SaleReceipt) error
	FindAllByListing(ctx ctx.Ctx, id ListingId) ([]*SaleReceipt, error)
}

type UseCase interface {
	CreateListing(ctx ctx.Ctx, lister domain.Address, params CreateListingParams) (*Listing, error)
	Buy(ctx ctx.Ctx, buyer domain.Address, params BuyParams) (*SaleReceipt, error)
	CancelListing(ctx ctx.Ctx, caller domain.Address, id ListingId) error
	GetListing(ctx ctx.Ctx, id ListingId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
