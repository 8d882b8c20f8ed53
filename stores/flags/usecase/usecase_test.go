package usecase

import (
	"testing"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/marketplace"
	mMarketplace "github.com/nftreasury/goapi/domain/marketplace/mocks"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	admin    = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	stranger = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
)

type flagsSuite struct {
	suite.Suite

	flagsRepo *mMarketplace.FlagsRepo
	roleUC    *mRole.UseCase

	im *impl
}

func TestFlagsSuite(t *testing.T) {
	suite.Run(t, new(flagsSuite))
}

func (s *flagsSuite) SetupTest() {
	s.flagsRepo = &mMarketplace.FlagsRepo{}
	s.roleUC = &mRole.UseCase{}

	s.im = New(&FlagsUseCaseCfg{
		FlagsRepo: s.flagsRepo,
		RoleUC:    s.roleUC,
	}).(*impl)
}

func (s *flagsSuite) TearDownTest() {
	s.flagsRepo.AssertExpectations(s.T())
	s.roleUC.AssertExpectations(s.T())
}

func (s *flagsSuite) TestGet() {
	c := ctx.Background()

	s.flagsRepo.On("Get", mock.Anything).Return(marketplace.DefaultFlags(), nil).Once()

	flags, err := s.im.Get(c)
	s.NoError(err)
	s.False(flags.OutsideListingAllowed)
	s.False(flags.AuctionEnabled)
	s.Equal(marketplace.DefaultListPriceBpsIncrease, flags.ListPriceBpsIncrease)
}

func (s *flagsSuite) TestSettersRequireAdmin() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, stranger).Return(false, nil).Times(4)

	s.Equal(domain.ErrUnauthorized, s.im.SetOutsideListingAllowed(c, stranger, true))
	s.Equal(domain.ErrUnauthorized, s.im.SetAuctionEnabled(c, stranger, true))
	s.Equal(domain.ErrUnauthorized, s.im.SetPlatformFee(c, stranger, 100, admin))
	s.Equal(domain.ErrUnauthorized, s.im.SetListPriceBpsIncrease(c, stranger, 100))
}

func (s *flagsSuite) TestSetOutsideListingAllowed() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.flagsRepo.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.FlagsPatchable) bool {
		return p.OutsideListingAllowed != nil && *p.OutsideListingAllowed
	})).Return(nil).Once()

	s.NoError(s.im.SetOutsideListingAllowed(c, admin, true))
}

func (s *flagsSuite) TestSetPlatformFee() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.flagsRepo.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.FlagsPatchable) bool {
		return p.PlatformFeeBps != nil && *p.PlatformFeeBps == 250 &&
			p.PlatformFeeRecipient != nil && *p.PlatformFeeRecipient == admin
	})).Return(nil).Once()

	s.NoError(s.im.SetPlatformFee(c, admin, 250, admin))
}

func (s *flagsSuite) TestSetPlatformFeeRejectsOutOfRange() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Twice()

	s.Equal(domain.ErrBadParamInput, s.im.SetPlatformFee(c, admin, 10001, admin))
	s.Equal(domain.ErrBadParamInput, s.im.SetPlatformFee(c, admin, -1, admin))
}

func (s *flagsSuite) TestSetListPriceBpsIncrease() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.flagsRepo.On("Update", mock.Anything, mock.MatchedBy(func(p marketplace.FlagsPatchable) bool {
		return p.ListPriceBpsIncrease != nil && *p.ListPriceBpsIncrease == 500
	})).Return(nil).Once()

	s.NoError(s.im.SetListPriceBpsIncrease(c, admin, 500))
}
