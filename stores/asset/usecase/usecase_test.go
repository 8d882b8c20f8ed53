package usecase

import (
	"testing"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	mAsset "github.com/nftreasury/goapi/domain/asset/mocks"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	collection  = domain.Address("0x1111111111111111111111111111111111111111")
	marketplace = domain.Address("0x2222222222222222222222222222222222222222")
	admin       = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	owner       = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	third       = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
)

type assetSuite struct {
	suite.Suite

	tokenRepo          *mAsset.TokenRepo
	approvalRepo       *mAsset.ApprovalRepo
	approvedMarketRepo *mAsset.ApprovedMarketRepo
	lazyMintRepo       *mAsset.LazyMintRepo
	roleUC             *mRole.UseCase

	im *impl
}

func TestAssetSuite(t *testing.T) {
	suite.Run(t, new(assetSuite))
}

func (s *assetSuite) SetupTest() {
	s.tokenRepo = &mAsset.TokenRepo{}
	s.approvalRepo = &mAsset.ApprovalRepo{}
	s.approvedMarketRepo = &mAsset.ApprovedMarketRepo{}
	s.lazyMintRepo = &mAsset.LazyMintRepo{}
	s.roleUC = &mRole.UseCase{}

	s.im = New(&AssetUseCaseCfg{
		TokenRepo:          s.tokenRepo,
		ApprovalRepo:       s.approvalRepo,
		ApprovedMarketRepo: s.approvedMarketRepo,
		LazyMintRepo:       s.lazyMintRepo,
		RoleUC:             s.roleUC,
		CollectionAddress:  collection,
	}).(*impl)
}

func (s *assetSuite) TearDownTest() {
	s.tokenRepo.AssertExpectations(s.T())
	s.approvalRepo.AssertExpectations(s.T())
	s.approvedMarketRepo.AssertExpectations(s.T())
	s.lazyMintRepo.AssertExpectations(s.T())
	s.roleUC.AssertExpectations(s.T())
}

func (s *assetSuite) tid(id domain.TokenId) asset.TokenId {
	return asset.TokenId{ContractAddress: collection, TokenId: id}
}

func ownedToken(id domain.TokenId) *asset.Token {
	return &asset.Token{
		ContractAddress: collection,
		TokenId:         id,
		Owner:           owner,
	}
}

func (s *assetSuite) TestLazyMint() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.lazyMintRepo.On("NextTokenIdToMint", mock.Anything).Return(int64(10), nil).Once()
	s.lazyMintRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *asset.LazyMintBatch) bool {
		return b.StartTokenId == 10 && b.Amount == 5 && b.BaseUri == "ipfs://base/"
	})).Return(nil).Once()

	batch, err := s.im.LazyMint(c, admin, 5, "ipfs://base/")
	s.NoError(err)
	s.Equal(int64(10), batch.StartTokenId)
}

func (s *assetSuite) TestLazyMintRequiresAdmin() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, third).Return(false, nil).Once()

	_, err := s.im.LazyMint(c, third, 5, "ipfs://base/")
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *assetSuite) TestMintTo() {
	c := ctx.Background()

	s.lazyMintRepo.On("NextTokenIdToMint", mock.Anything).Return(int64(10), nil).Once()
	s.lazyMintRepo.On("NextTokenIdToClaim", mock.Anything).Return(int64(3), nil).Once()
	s.lazyMintRepo.On("ConsumeNextTokenIdToClaim", mock.Anything, int64(2)).Return(int64(3), nil).Once()
	batch := &asset.LazyMintBatch{BaseUri: "ipfs://base/", StartTokenId: 0, Amount: 10}
	s.lazyMintRepo.On("FindBatchForToken", mock.Anything, int64(3)).Return(batch, nil).Once()
	s.lazyMintRepo.On("FindBatchForToken", mock.Anything, int64(4)).Return(batch, nil).Once()

	var minted []*asset.Token
	s.tokenRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			minted = append(minted, args.Get(1).(*asset.Token))
		}).
		Return(nil).Twice()

	firstId, err := s.im.MintTo(c, owner, 2)
	s.NoError(err)
	s.Equal(int64(3), firstId)
	s.Len(minted, 2)
	s.Equal(domain.TokenId("3"), minted[0].TokenId)
	s.Equal("ipfs://base/3", minted[0].TokenUri)
	s.Equal(owner, minted[0].Owner)
	s.Equal(domain.TokenId("4"), minted[1].TokenId)
}

func (s *assetSuite) TestMintToExhaustsLazySupply() {
	c := ctx.Background()

	s.lazyMintRepo.On("NextTokenIdToMint", mock.Anything).Return(int64(10), nil).Once()
	s.lazyMintRepo.On("NextTokenIdToClaim", mock.Anything).Return(int64(9), nil).Once()

	_, err := s.im.MintTo(c, owner, 2)
	s.Equal(domain.ErrQuantityExceeded, err)
}

func (s *assetSuite) TestTransferByOwner() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()
	s.tokenRepo.On("Update", mock.Anything, s.tid("1"), mock.MatchedBy(func(p asset.TokenPatchable) bool {
		return p.Owner != nil && *p.Owner == third
	})).Return(nil).Once()
	s.approvalRepo.On("RemoveTokenApproval", mock.Anything, s.tid("1")).Return(domain.ErrNotFound).Once()

	s.NoError(s.im.Transfer(c, owner, owner, third, "1"))
}

func (s *assetSuite) TestTransferByApprovedOperator() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()
	s.approvalRepo.On("FindTokenApproval", mock.Anything, s.tid("1")).
		Return(&asset.Approval{ContractAddress: collection, TokenId: "1", Operator: marketplace}, nil).Once()
	s.tokenRepo.On("Update", mock.Anything, s.tid("1"), mock.Anything).Return(nil).Once()
	s.approvalRepo.On("RemoveTokenApproval", mock.Anything, s.tid("1")).Return(nil).Once()

	s.NoError(s.im.Transfer(c, marketplace, owner, third, "1"))
}

func (s *assetSuite) TestTransferUnauthorizedOperator() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()
	s.approvalRepo.On("FindTokenApproval", mock.Anything, s.tid("1")).Return(nil, domain.ErrNotFound).Once()
	s.approvalRepo.On("FindOperatorApproval", mock.Anything, collection, owner, third).
		Return(nil, domain.ErrNotFound).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Transfer(c, third, owner, third, "1"))
}

func (s *assetSuite) TestTransferWrongFrom() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Transfer(c, owner, third, admin, "1"))
}

func (s *assetSuite) TestApproveRequiresWhitelistedMarketplace() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()
	s.approvedMarketRepo.On("FindOne", mock.Anything, third).Return(nil, domain.ErrNotFound).Once()

	// even the owner cannot approve an unlisted operator
	s.Equal(domain.ErrPolicyViolation, s.im.Approve(c, owner, "1", third))
	s.approvalRepo.AssertNotCalled(s.T(), "UpsertTokenApproval", mock.Anything, mock.Anything)
}

func (s *assetSuite) TestApprove() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()
	s.approvedMarketRepo.On("FindOne", mock.Anything, marketplace).
		Return(&asset.ApprovedMarket{Address: marketplace, Approved: true}, nil).Once()
	s.approvalRepo.On("UpsertTokenApproval", mock.Anything, mock.MatchedBy(func(a *asset.Approval) bool {
		return a.TokenId == domain.TokenId("1") && a.Operator == marketplace
	})).Return(nil).Once()

	s.NoError(s.im.Approve(c, owner, "1", marketplace))
}

func (s *assetSuite) TestApproveNotOwner() {
	c := ctx.Background()
	token := ownedToken("1")

	s.tokenRepo.On("FindOne", mock.Anything, s.tid("1")).Return(token, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Approve(c, third, "1", marketplace))
}

func (s *assetSuite) TestSetApprovalForAllGate() {
	c := ctx.Background()

	s.approvedMarketRepo.On("FindOne", mock.Anything, third).Return(nil, domain.ErrNotFound).Once()

	s.Equal(domain.ErrPolicyViolation, s.im.SetApprovalForAll(c, owner, third, true))
}

func (s *assetSuite) TestSetApprovalForAllRevokeSkipsGate() {
	c := ctx.Background()

	// revoking never consults the whitelist
	s.approvalRepo.On("UpsertOperatorApproval", mock.Anything, mock.MatchedBy(func(a *asset.OperatorApproval) bool {
		return a.Owner == owner && a.Operator == third && !a.Approved
	})).Return(nil).Once()

	s.NoError(s.im.SetApprovalForAll(c, owner, third, false))
}

func (s *assetSuite) TestSetApprovedMarketplaceRequiresAdmin() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, third).Return(false, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.SetApprovedMarketplace(c, third, marketplace, true))
}

func (s *assetSuite) TestSetApprovedMarketplace() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.approvedMarketRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(m *asset.ApprovedMarket) bool {
		return m.Address == marketplace && m.Approved
	})).Return(nil).Once()

	s.NoError(s.im.SetApprovedMarketplace(c, admin, marketplace, true))
}
