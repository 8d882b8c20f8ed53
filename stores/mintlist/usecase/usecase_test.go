package usecase

import (
	"testing"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	mClaim "github.com/nftreasury/goapi/domain/claim/mocks"
	"github.com/nftreasury/goapi/domain/listing"
	mListing "github.com/nftreasury/goapi/domain/listing/mocks"
	"github.com/nftreasury/goapi/domain/mintlist"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	treasuryContract = domain.Address("0x1111111111111111111111111111111111111111")
	operator         = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	receiver         = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

type mintlistSuite struct {
	suite.Suite

	claimUC   *mClaim.UseCase
	listingUC *mListing.UseCase
	roleUC    *mRole.UseCase

	im *impl
}

func TestMintListSuite(t *testing.T) {
	suite.Run(t, new(mintlistSuite))
}

func (s *mintlistSuite) SetupTest() {
	s.claimUC = &mClaim.UseCase{}
	s.listingUC = &mListing.UseCase{}
	s.roleUC = &mRole.UseCase{}

	s.im = New(&MintListUseCaseCfg{
		ClaimUC:              s.claimUC,
		ListingUC:            s.listingUC,
		RoleUC:               s.roleUC,
		PrimaryAssetContract: treasuryContract,
	}).(*impl)
}

func (s *mintlistSuite) TearDownTest() {
	s.claimUC.AssertExpectations(s.T())
	s.listingUC.AssertExpectations(s.T())
	s.roleUC.AssertExpectations(s.T())
}

func defaultParams() mintlist.ClaimAndListParams {
	return mintlist.ClaimAndListParams{
		Receiver: receiver,
		Quantity: 1,
		Currency: domain.NativeTokenAddress,
		Listing: listing.CreateListingParams{
			BuyoutPricePerToken: "1000",
			SecondsUntilEndTime: 3600,
		},
	}
}

func (s *mintlistSuite) TestClaimAndList() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, operator).Return(true, nil).Once()
	s.claimUC.On("Claim", mock.Anything, receiver, mock.MatchedBy(func(p claim.ClaimParams) bool {
		return p.Receiver == receiver && p.Quantity == 1
	})).Return(int64(42), nil).Once()

	created := &listing.Listing{ListingId: 5, TokenOwner: receiver}
	s.listingUC.On("CreateListing", mock.Anything, operator, mock.MatchedBy(func(p listing.CreateListingParams) bool {
		return p.AssetContract == treasuryContract &&
			p.TokenId == domain.TokenId("42") &&
			p.OnBehalfOf == receiver &&
			p.ListingType == listing.ListingTypeDirect &&
			p.Quantity == 1
	})).Return(created, nil).Once()

	result, err := s.im.ClaimAndList(c, operator, defaultParams())
	s.NoError(err)
	s.Equal(int64(42), result.TokenId)
	s.True(result.Listed)
	s.Equal(created, result.Listing)
	s.Empty(result.ListError)
}

func (s *mintlistSuite) TestClaimAndListRejectsNonOperator() {
	c := ctx.Background()

	// the receiver calling with the exact same arguments is still refused;
	// only an operator may drive this flow
	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, receiver).Return(false, nil).Once()

	_, err := s.im.ClaimAndList(c, receiver, defaultParams())
	s.Equal(domain.ErrUnauthorized, err)
	s.claimUC.AssertNotCalled(s.T(), "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func (s *mintlistSuite) TestClaimSurvivesListingFailure() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, operator).Return(true, nil).Once()
	s.claimUC.On("Claim", mock.Anything, receiver, mock.Anything).Return(int64(43), nil).Once()
	s.listingUC.On("CreateListing", mock.Anything, operator, mock.Anything).
		Return(nil, domain.ErrPolicyViolation).Once()

	result, err := s.im.ClaimAndList(c, operator, defaultParams())
	s.NoError(err)
	s.Equal(int64(43), result.TokenId)
	s.False(result.Listed)
	s.Equal(domain.ErrPolicyViolation.Error(), result.ListError)
}

func (s *mintlistSuite) TestClaimFailureAborts() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, operator).Return(true, nil).Once()
	s.claimUC.On("Claim", mock.Anything, receiver, mock.Anything).
		Return(int64(0), domain.ErrClaimRejected).Once()

	_, err := s.im.ClaimAndList(c, operator, defaultParams())
	s.Equal(domain.ErrClaimRejected, err)
	s.listingUC.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}
