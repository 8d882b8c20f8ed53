package usecase

import (
	"bytes"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/merkle"
	"github.com/nftreasury/goapi/domain"
	mAsset "github.com/nftreasury/goapi/domain/asset/mocks"
	"github.com/nftreasury/goapi/domain/claim"
	mClaim "github.com/nftreasury/goapi/domain/claim/mocks"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	mQuery "github.com/nftreasury/goapi/service/query/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	admin   = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	claimer = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	other   = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
)

type claimSuite struct {
	suite.Suite

	conditionRepo   *mClaim.ConditionRepo
	walletClaimRepo *mClaim.WalletClaimRepo
	roleUC          *mRole.UseCase
	assetUC         *mAsset.UseCase
	q               *mQuery.Mongo

	im *impl
}

func TestClaimSuite(t *testing.T) {
	suite.Run(t, new(claimSuite))
}

func (s *claimSuite) SetupTest() {
	s.conditionRepo = &mClaim.ConditionRepo{}
	s.walletClaimRepo = &mClaim.WalletClaimRepo{}
	s.roleUC = &mRole.UseCase{}
	s.assetUC = &mAsset.UseCase{}
	s.q = &mQuery.Mongo{}

	s.im = New(&ClaimUseCaseCfg{
		ConditionRepo:   s.conditionRepo,
		WalletClaimRepo: s.walletClaimRepo,
		RoleUC:          s.roleUC,
		AssetUC:         s.assetUC,
		Q:               s.q,
	}).(*impl)
}

func (s *claimSuite) TearDownTest() {
	s.conditionRepo.AssertExpectations(s.T())
	s.walletClaimRepo.AssertExpectations(s.T())
	s.roleUC.AssertExpectations(s.T())
	s.assetUC.AssertExpectations(s.T())
	s.q.AssertExpectations(s.T())
}

func (s *claimSuite) useTransactionPassthrough() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
}

func openCondition() *claim.Condition {
	return &claim.Condition{
		ConditionId:            3,
		StartTimestamp:         time.Now().Add(-time.Hour),
		MaxClaimableSupply:     100,
		SupplyClaimed:          10,
		QuantityLimitPerWallet: "5",
		PricePerToken:          "0",
		Currency:               domain.NativeTokenAddress,
	}
}

func freeClaimParams() claim.ClaimParams {
	return claim.ClaimParams{
		Quantity:      1,
		Currency:      domain.NativeTokenAddress,
		PricePerToken: "0",
	}
}

func (s *claimSuite) TestSetConditionRequiresAdmin() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, other).Return(false, nil).Once()

	_, err := s.im.SetCondition(c, other, claim.SetConditionParams{MaxClaimableSupply: 10})
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *claimSuite) TestSetConditionDefaults() {
	c := ctx.Background()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.conditionRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	var set *claim.Condition
	s.conditionRepo.On("Set", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			set = args.Get(1).(*claim.Condition)
		}).
		Return(nil).Once()

	cond, err := s.im.SetCondition(c, admin, claim.SetConditionParams{MaxClaimableSupply: 100})
	s.NoError(err)
	s.Equal(claim.ConditionId(0), cond.ConditionId)
	s.Equal(domain.MaxUint256.String(), set.QuantityLimitPerWallet)
	s.Equal("0", set.PricePerToken)
	s.Equal(int64(0), set.SupplyClaimed)
}

func (s *claimSuite) TestSetConditionKeepsPhaseAndSupply() {
	c := ctx.Background()
	current := openCondition()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.conditionRepo.On("Get", mock.Anything).Return(current, nil).Once()
	s.conditionRepo.On("Set", mock.Anything, mock.MatchedBy(func(cond *claim.Condition) bool {
		return cond.ConditionId == current.ConditionId && cond.SupplyClaimed == current.SupplyClaimed
	})).Return(nil).Once()

	_, err := s.im.SetCondition(c, admin, claim.SetConditionParams{MaxClaimableSupply: 200})
	s.NoError(err)
}

func (s *claimSuite) TestSetConditionResetStartsNewPhase() {
	c := ctx.Background()
	current := openCondition()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.conditionRepo.On("Get", mock.Anything).Return(current, nil).Once()
	s.conditionRepo.On("Set", mock.Anything, mock.MatchedBy(func(cond *claim.Condition) bool {
		return cond.ConditionId == current.ConditionId+1 && cond.SupplyClaimed == 0
	})).Return(nil).Once()

	_, err := s.im.SetCondition(c, admin, claim.SetConditionParams{
		MaxClaimableSupply:    200,
		ResetClaimEligibility: true,
	})
	s.NoError(err)
}

func (s *claimSuite) TestSetConditionCapBelowClaimed() {
	c := ctx.Background()
	current := openCondition()

	s.roleUC.On("HasRole", mock.Anything, role.RoleAdmin, admin).Return(true, nil).Once()
	s.conditionRepo.On("Get", mock.Anything).Return(current, nil).Once()

	_, err := s.im.SetCondition(c, admin, claim.SetConditionParams{MaxClaimableSupply: 5})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *claimSuite) TestVerifyClaimNoCondition() {
	c := ctx.Background()

	s.conditionRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	err := s.im.VerifyClaim(c, claimer, freeClaimParams())
	s.Equal(domain.ErrClaimRejected, err)
}

func (s *claimSuite) TestVerifyClaimBeforeStart() {
	c := ctx.Background()
	cond := openCondition()
	cond.StartTimestamp = time.Now().Add(time.Hour)

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()

	err := s.im.VerifyClaim(c, claimer, freeClaimParams())
	s.Equal(domain.ErrClaimRejected, err)
}

func (s *claimSuite) TestVerifyClaimWrongCurrency() {
	c := ctx.Background()

	s.conditionRepo.On("Get", mock.Anything).Return(openCondition(), nil).Once()

	params := freeClaimParams()
	params.Currency = other
	err := s.im.VerifyClaim(c, claimer, params)
	s.Equal(domain.ErrPaymentMismatch, err)
}

func (s *claimSuite) TestVerifyClaimWrongPrice() {
	c := ctx.Background()
	cond := openCondition()
	cond.PricePerToken = "500"

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()

	params := freeClaimParams()
	params.PricePerToken = "499"
	err := s.im.VerifyClaim(c, claimer, params)
	s.Equal(domain.ErrPaymentMismatch, err)
}

func (s *claimSuite) TestVerifyClaimWalletLimit() {
	c := ctx.Background()
	cond := openCondition() // limit 5 per wallet

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Twice()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(&claim.WalletClaim{Claimed: 4}, nil).Twice()

	// 4 claimed + 1 = 5 fits the limit exactly
	err := s.im.VerifyClaim(c, claimer, freeClaimParams())
	s.NoError(err)

	// 4 claimed + 2 would cross it
	params := freeClaimParams()
	params.Quantity = 2
	err = s.im.VerifyClaim(c, claimer, params)
	s.Equal(domain.ErrClaimRejected, err)
}

func (s *claimSuite) TestVerifyClaimUnlimitedWallet() {
	c := ctx.Background()
	cond := openCondition()
	cond.QuantityLimitPerWallet = domain.MaxUint256.String()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(&claim.WalletClaim{Claimed: 80}, nil).Once()

	// MaxUint256 is the no-limit sentinel
	params := freeClaimParams()
	params.Quantity = 5
	s.NoError(s.im.VerifyClaim(c, claimer, params))
}

func (s *claimSuite) TestVerifyClaimSupplyBoundary() {
	c := ctx.Background()
	cond := openCondition()
	cond.SupplyClaimed = 95
	cond.QuantityLimitPerWallet = domain.MaxUint256.String()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Twice()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Twice()

	// hitting the cap exactly is allowed
	params := freeClaimParams()
	params.Quantity = 5
	s.NoError(s.im.VerifyClaim(c, claimer, params))

	// one past the cap is not
	params.Quantity = 6
	s.Equal(domain.ErrClaimRejected, s.im.VerifyClaim(c, claimer, params))
}

func (s *claimSuite) TestVerifyClaimHugeQuantity() {
	c := ctx.Background()
	cond := openCondition()
	cond.SupplyClaimed = 95
	cond.QuantityLimitPerWallet = domain.MaxUint256.String()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Twice()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()

	// a quantity large enough to wrap an int64 sum must still be rejected
	params := freeClaimParams()
	params.Quantity = math.MaxInt64
	s.Equal(domain.ErrClaimRejected, s.im.VerifyClaim(c, claimer, params))

	// same through the wallet limit guard
	cond.QuantityLimitPerWallet = "5"
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(&claim.WalletClaim{Claimed: 4}, nil).Once()
	s.Equal(domain.ErrClaimRejected, s.im.VerifyClaim(c, claimer, params))
}

func (s *claimSuite) TestVerifyClaimAllowlist() {
	c := ctx.Background()

	leafClaimer := merkle.Leaf(claimer, big.NewInt(2))
	leafOther := merkle.Leaf(other, big.NewInt(3))
	sibling := hexutil.Encode(leafOther)

	cond := openCondition()
	cond.MerkleRoot = merkleRoot(leafClaimer, leafOther)
	cond.PricePerToken = "100"

	// proof overrides price and wallet limit for this leaf
	proof := &claim.AllowlistProof{
		Proof:                  []string{sibling},
		QuantityLimitPerWallet: "2",
		PricePerToken:          "50",
	}

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Times(3)
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()

	params := freeClaimParams()
	params.PricePerToken = "50"
	params.Proof = proof
	s.NoError(s.im.VerifyClaim(c, claimer, params))

	// without a proof the allow list rejects outright
	params.Proof = nil
	s.Equal(domain.ErrClaimRejected, s.im.VerifyClaim(c, claimer, params))

	// tampered limit invalidates the leaf
	params.Proof = &claim.AllowlistProof{
		Proof:                  []string{sibling},
		QuantityLimitPerWallet: "200",
		PricePerToken:          "50",
	}
	s.Equal(domain.ErrClaimRejected, s.im.VerifyClaim(c, claimer, params))
}

func (s *claimSuite) TestClaimMintsToReceiver() {
	c := ctx.Background()
	cond := openCondition()
	s.useTransactionPassthrough()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()
	s.conditionRepo.On("ConsumeSupply", mock.Anything, cond.ConditionId, int64(2), cond.MaxClaimableSupply).
		Return(nil).Once()
	s.walletClaimRepo.On("Increment", mock.Anything, cond.ConditionId, claimer, int64(2)).
		Return(nil).Once()
	s.assetUC.On("MintTo", mock.Anything, other, int64(2)).Return(int64(41), nil).Once()

	params := freeClaimParams()
	params.Quantity = 2
	params.Receiver = other
	firstTokenId, err := s.im.Claim(c, claimer, params)
	s.NoError(err)
	s.Equal(int64(41), firstTokenId)
}

func (s *claimSuite) TestClaimReceiverDefaultsToClaimer() {
	c := ctx.Background()
	cond := openCondition()
	s.useTransactionPassthrough()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()
	s.conditionRepo.On("ConsumeSupply", mock.Anything, cond.ConditionId, int64(1), cond.MaxClaimableSupply).
		Return(nil).Once()
	s.walletClaimRepo.On("Increment", mock.Anything, cond.ConditionId, claimer, int64(1)).
		Return(nil).Once()
	s.assetUC.On("MintTo", mock.Anything, claimer, int64(1)).Return(int64(11), nil).Once()

	_, err := s.im.Claim(c, claimer, freeClaimParams())
	s.NoError(err)
}

func (s *claimSuite) TestClaimSupplyRace() {
	c := ctx.Background()
	cond := openCondition()
	s.useTransactionPassthrough()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()
	// a concurrent claim may still win the last supply between verify and
	// the guarded consume
	s.conditionRepo.On("ConsumeSupply", mock.Anything, cond.ConditionId, int64(1), cond.MaxClaimableSupply).
		Return(domain.ErrClaimRejected).Once()

	_, err := s.im.Claim(c, claimer, freeClaimParams())
	s.Equal(domain.ErrClaimRejected, err)
	s.assetUC.AssertNotCalled(s.T(), "MintTo", mock.Anything, mock.Anything, mock.Anything)
}

func (s *claimSuite) TestClaimMintFailureAbortsCounters() {
	c := ctx.Background()
	cond := openCondition()
	s.useTransactionPassthrough()

	s.conditionRepo.On("Get", mock.Anything).Return(cond, nil).Once()
	s.walletClaimRepo.On("FindOne", mock.Anything, cond.ConditionId, claimer).
		Return(nil, domain.ErrNotFound).Once()
	s.conditionRepo.On("ConsumeSupply", mock.Anything, cond.ConditionId, int64(1), cond.MaxClaimableSupply).
		Return(nil).Once()
	s.walletClaimRepo.On("Increment", mock.Anything, cond.ConditionId, claimer, int64(1)).
		Return(nil).Once()
	// the lazy mint pool can run dry after the counters are consumed; the
	// mint error must come back out of the transaction so the counter
	// writes abort with it
	s.assetUC.On("MintTo", mock.Anything, claimer, int64(1)).
		Return(int64(0), domain.ErrQuantityExceeded).Once()

	_, err := s.im.Claim(c, claimer, freeClaimParams())
	s.Equal(domain.ErrQuantityExceeded, err)
}

func (s *claimSuite) TestGetWalletClaimedNoCondition() {
	c := ctx.Background()

	s.conditionRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	n, err := s.im.GetWalletClaimed(c, claimer)
	s.NoError(err)
	s.Equal(int64(0), n)
}

// merkleRoot hashes a two leaf tree with the same sorted pair hashing the
// verifier uses.
func merkleRoot(a, b []byte) string {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return hexutil.Encode(crypto.Keccak256(a, b))
}
