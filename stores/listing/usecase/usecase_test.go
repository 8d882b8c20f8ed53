package usecase

import (
	"testing"
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	mAsset "github.com/nftreasury/goapi/domain/asset/mocks"
	"github.com/nftreasury/goapi/domain/listing"
	mListing "github.com/nftreasury/goapi/domain/listing/mocks"
	"github.com/nftreasury/goapi/domain/marketplace"
	mMarketplace "github.com/nftreasury/goapi/domain/marketplace/mocks"
	"github.com/nftreasury/goapi/domain/payment"
	mPayment "github.com/nftreasury/goapi/domain/payment/mocks"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	mQuery "github.com/nftreasury/goapi/service/query/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	treasuryContract = domain.Address("0x1111111111111111111111111111111111111111")
	outsideContract  = domain.Address("0x2222222222222222222222222222222222222222")
	seller           = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	buyer            = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	stranger         = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
)

type listingSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	saleReceiptRepo *mListing.SaleReceiptRepo
	flagsUC         *mMarketplace.FlagsUseCase
	roleUC          *mRole.UseCase
	assetUC         *mAsset.UseCase
	paymentService  *mPayment.Service
	q               *mQuery.Mongo

	im *impl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.saleReceiptRepo = &mListing.SaleReceiptRepo{}
	s.flagsUC = &mMarketplace.FlagsUseCase{}
	s.roleUC = &mRole.UseCase{}
	s.assetUC = &mAsset.UseCase{}
	s.paymentService = &mPayment.Service{}
	s.q = &mQuery.Mongo{}

	s.im = New(&ListingUseCaseCfg{
		ListingRepo:          s.listingRepo,
		SaleReceiptRepo:      s.saleReceiptRepo,
		FlagsUC:              s.flagsUC,
		RoleUC:               s.roleUC,
		AssetUC:              s.assetUC,
		PaymentService:       s.paymentService,
		Q:                    s.q,
		PrimaryAssetContract: treasuryContract,
	}).(*impl)
}

func (s *listingSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.saleReceiptRepo.AssertExpectations(s.T())
	s.flagsUC.AssertExpectations(s.T())
	s.roleUC.AssertExpectations(s.T())
	s.assetUC.AssertExpectations(s.T())
	s.paymentService.AssertExpectations(s.T())
	s.q.AssertExpectations(s.T())
}

func (s *listingSuite) useTransactionPassthrough() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
}

func defaultCreateParams() listing.CreateListingParams {
	return listing.CreateListingParams{
		AssetContract:       treasuryContract,
		TokenId:             domain.TokenId("1"),
		Quantity:            1,
		BuyoutPricePerToken: "1000",
		SecondsUntilEndTime: 3600,
	}
}

func (s *listingSuite) TestCreateListing() {
	c := ctx.Background()

	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.roleUC.On("IsAdminOrLister", mock.Anything, seller).Return(true, nil).Once()

	var created *listing.Listing
	s.listingRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*listing.Listing)
		}).
		Return(listing.ListingId(7), nil).Once()

	lst, err := s.im.CreateListing(c, seller, defaultCreateParams())
	s.NoError(err)
	s.Equal(listing.ListingId(7), lst.ListingId)
	s.Equal(seller, created.TokenOwner)
	s.Equal(seller, created.CreatedBy)
	s.Equal(listing.ListingTypeDirect, created.ListingType)
	s.Equal(listing.StatusActive, created.Status)
	s.Equal(domain.NativeTokenAddress, created.CurrencyToAccept)
	s.Equal("1000", created.BuyoutPricePerToken)
	s.Equal("0", created.ReservePricePerToken)
}

func (s *listingSuite) TestCreateListingOnBehalfOf() {
	c := ctx.Background()

	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.roleUC.On("IsAdminOrLister", mock.Anything, seller).Return(true, nil).Once()

	var created *listing.Listing
	s.listingRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*listing.Listing)
		}).
		Return(listing.ListingId(8), nil).Once()

	params := defaultCreateParams()
	params.OnBehalfOf = stranger
	_, err := s.im.CreateListing(c, seller, params)
	s.NoError(err)
	s.Equal(stranger, created.TokenOwner)
	s.Equal(seller, created.CreatedBy)
}

func (s *listingSuite) TestCreateListingOutsideContractBlocked() {
	c := ctx.Background()

	// flag is checked before the role, so the role usecase must not be hit
	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()

	params := defaultCreateParams()
	params.AssetContract = outsideContract
	_, err := s.im.CreateListing(c, seller, params)
	s.Equal(domain.ErrPolicyViolation, err)
	s.roleUC.AssertNotCalled(s.T(), "IsAdminOrLister", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCreateListingOutsideContractAllowedByFlag() {
	c := ctx.Background()

	flags := marketplace.DefaultFlags()
	flags.OutsideListingAllowed = true
	s.flagsUC.On("Get", mock.Anything).Return(flags, nil).Once()
	s.roleUC.On("IsAdminOrLister", mock.Anything, seller).Return(true, nil).Once()
	s.listingRepo.On("Create", mock.Anything, mock.Anything).Return(listing.ListingId(9), nil).Once()

	params := defaultCreateParams()
	params.AssetContract = outsideContract
	_, err := s.im.CreateListing(c, seller, params)
	s.NoError(err)
}

func (s *listingSuite) TestCreateListingAuctionBlocked() {
	c := ctx.Background()

	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()

	params := defaultCreateParams()
	params.ListingType = listing.ListingTypeAuction
	_, err := s.im.CreateListing(c, seller, params)
	s.Equal(domain.ErrPolicyViolation, err)
	s.roleUC.AssertNotCalled(s.T(), "IsAdminOrLister", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCreateListingRequiresRole() {
	c := ctx.Background()

	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.roleUC.On("IsAdminOrLister", mock.Anything, stranger).Return(false, nil).Once()

	_, err := s.im.CreateListing(c, stranger, defaultCreateParams())
	s.Equal(domain.ErrUnauthorized, err)
}

func activeListing() *listing.Listing {
	return &listing.Listing{
		ListingId:            1,
		AssetContract:        treasuryContract,
		TokenId:              domain.TokenId("1"),
		TokenOwner:           seller,
		Quantity:             1,
		CurrencyToAccept:     domain.NativeTokenAddress,
		ReservePricePerToken: "0",
		BuyoutPricePerToken:  "1000",
		ListingType:          listing.ListingTypeDirect,
		StartTime:            time.Now().Add(-time.Hour),
		EndTime:              time.Now().Add(time.Hour),
		Status:               listing.StatusActive,
		CreatedBy:            seller,
	}
}

func defaultBuyParams() listing.BuyParams {
	return listing.BuyParams{
		ListingId:          1,
		BuyFor:             buyer,
		Quantity:           1,
		Currency:           domain.NativeTokenAddress,
		TotalOfferedAmount: "1000",
	}
}

func (s *listingSuite) TestBuyEscalatesPriceAndRearms() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.useTransactionPassthrough()

	s.assetUC.On("OwnerOf", mock.Anything, lst.TokenId).Return(seller, nil).Once()
	s.assetUC.On("Transfer", mock.Anything, seller, seller, buyer, lst.TokenId).Return(nil).Once()

	s.paymentService.On("Settle", mock.Anything, mock.MatchedBy(func(p payment.SettleParams) bool {
		return p.Payer == buyer && p.Payee == seller && p.TotalPrice.String() == "1000"
	})).Return(&payment.Record{PaymentId: "pay-1", PlatformFee: "0"}, nil).Once()

	s.listingRepo.On("Update", mock.Anything, listing.ListingId(1), mock.MatchedBy(func(p listing.ListingPatchable) bool {
		return p.TokenOwner != nil && *p.TokenOwner == buyer &&
			p.BuyoutPricePerToken != nil && *p.BuyoutPricePerToken == "1100" &&
			p.Quantity == nil && // the listing survives with its quantity intact
			p.Status == nil &&
			p.SaleCount != nil && *p.SaleCount == 1
	})).Return(nil).Once()

	s.saleReceiptRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	receipt, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.NoError(err)
	s.Equal("1000", receipt.PricePerToken)
	s.Equal("1100", receipt.NewBuyoutPricePerToken)
	s.Equal(seller, receipt.Seller)
	s.Equal(buyer, receipt.Buyer)
	s.Equal("pay-1", receipt.PaymentId)
}

func (s *listingSuite) TestBuyTruncatesEscalation() {
	c := ctx.Background()
	lst := activeListing()
	lst.BuyoutPricePerToken = "999"

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.useTransactionPassthrough()

	s.assetUC.On("OwnerOf", mock.Anything, lst.TokenId).Return(seller, nil).Once()
	s.assetUC.On("Transfer", mock.Anything, seller, seller, buyer, lst.TokenId).Return(nil).Once()
	s.paymentService.On("Settle", mock.Anything, mock.Anything).
		Return(&payment.Record{PaymentId: "pay-2", PlatformFee: "0"}, nil).Once()
	s.listingRepo.On("Update", mock.Anything, listing.ListingId(1), mock.MatchedBy(func(p listing.ListingPatchable) bool {
		// floor(999 * 1000 / 10000) = 99, not 99.9
		return p.BuyoutPricePerToken != nil && *p.BuyoutPricePerToken == "1098"
	})).Return(nil).Once()
	s.saleReceiptRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	params := defaultBuyParams()
	params.TotalOfferedAmount = "999"
	receipt, err := s.im.Buy(c, buyer, params)
	s.NoError(err)
	s.Equal("1098", receipt.NewBuyoutPricePerToken)
}

func (s *listingSuite) TestBuyFromCurrentHolder() {
	c := ctx.Background()
	lst := activeListing()

	// the token moved out of band after listing; the sale still goes
	// through, sourcing the asset from whoever holds it now
	holder := stranger

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.useTransactionPassthrough()

	s.assetUC.On("OwnerOf", mock.Anything, lst.TokenId).Return(holder, nil).Once()
	s.assetUC.On("Transfer", mock.Anything, holder, holder, buyer, lst.TokenId).Return(nil).Once()
	s.paymentService.On("Settle", mock.Anything, mock.Anything).
		Return(&payment.Record{PaymentId: "pay-3", PlatformFee: "0"}, nil).Once()
	s.listingRepo.On("Update", mock.Anything, listing.ListingId(1), mock.Anything).Return(nil).Once()
	s.saleReceiptRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.NoError(err)
}

func (s *listingSuite) TestBuyNotFound() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.Equal(domain.ErrInvalidListing, err)
}

func (s *listingSuite) TestBuyCancelledListing() {
	c := ctx.Background()
	lst := activeListing()
	lst.Status = listing.StatusCancelled

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()

	_, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.Equal(domain.ErrInvalidListing, err)
}

func (s *listingSuite) TestBuyExpiredListing() {
	c := ctx.Background()
	lst := activeListing()
	lst.EndTime = time.Now().Add(-time.Minute)

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()

	_, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.Equal(domain.ErrInvalidListing, err)
}

func (s *listingSuite) TestBuyWrongCurrency() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()

	params := defaultBuyParams()
	params.Currency = outsideContract
	_, err := s.im.Buy(c, buyer, params)
	s.Equal(domain.ErrPaymentMismatch, err)
}

func (s *listingSuite) TestBuyWrongAmount() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()

	params := defaultBuyParams()
	params.TotalOfferedAmount = "999"
	_, err := s.im.Buy(c, buyer, params)
	s.Equal(domain.ErrPaymentMismatch, err)
}

func (s *listingSuite) TestBuyTooMany() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()

	params := defaultBuyParams()
	params.Quantity = 2
	params.TotalOfferedAmount = "2000"
	_, err := s.im.Buy(c, buyer, params)
	s.Equal(domain.ErrQuantityExceeded, err)
}

func (s *listingSuite) TestBuyTransferFailureRollsBack() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.flagsUC.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()
	s.useTransactionPassthrough()

	s.assetUC.On("OwnerOf", mock.Anything, lst.TokenId).Return(seller, nil).Once()
	s.assetUC.On("Transfer", mock.Anything, seller, seller, buyer, lst.TokenId).
		Return(domain.ErrUnauthorized).Once()

	_, err := s.im.Buy(c, buyer, defaultBuyParams())
	s.Error(err)
	s.paymentService.AssertNotCalled(s.T(), "Settle", mock.Anything, mock.Anything)
	s.listingRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	s.saleReceiptRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCancelListingByOwner() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.listingRepo.On("Update", mock.Anything, listing.ListingId(1), mock.MatchedBy(func(p listing.ListingPatchable) bool {
		return p.Status != nil && *p.Status == listing.StatusCancelled
	})).Return(nil).Once()

	s.NoError(s.im.CancelListing(c, seller, 1))
}

func (s *listingSuite) TestCancelListingByAdmin() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, stranger).Return(true, nil).Once()
	s.listingRepo.On("Update", mock.Anything, listing.ListingId(1), mock.Anything).Return(nil).Once()

	s.NoError(s.im.CancelListing(c, stranger, 1))
}

func (s *listingSuite) TestCancelListingUnauthorized() {
	c := ctx.Background()
	lst := activeListing()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(1)).Return(lst, nil).Once()
	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, stranger).Return(false, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.CancelListing(c, stranger, 1))
}

func (s *listingSuite) TestGetListingNotFound() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.ListingId(42)).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.GetListing(c, 42)
	s.Equal(domain.ErrInvalidListing, err)
}
