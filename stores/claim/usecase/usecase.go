package usecase

import (
	"math/big"
	"time"

	bCtx "github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/base/merkle"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/domain/role"
	"github.com/nftreasury/goapi/service/query"
)

type ClaimUseCaseCfg struct {
	ConditionRepo   claim.ConditionRepo
	WalletClaimRepo claim.WalletClaimRepo
	RoleUC          role.UseCase
	AssetUC         asset.UseCase
	Q               query.Mongo
}

type impl struct {
	conditionRepo   claim.ConditionRepo
	walletClaimRepo claim.WalletClaimRepo
	roleUC          role.UseCase
	assetUC         asset.UseCase
	q               query.Mongo
}

func New(cfg *ClaimUseCaseCfg) claim.UseCase {
	return &impl{
		conditionRepo:   cfg.ConditionRepo,
		walletClaimRepo: cfg.WalletClaimRepo,
		roleUC:          cfg.RoleUC,
		assetUC:         cfg.AssetUC,
		q:               cfg.Q,
	}
}

func (im *impl) GetCondition(ctx bCtx.Ctx) (*claim.Condition, error) {
	return im.conditionRepo.Get(ctx)
}

func (im *impl) SetCondition(ctx bCtx.Ctx, caller domain.Address, params claim.SetConditionParams) (*claim.Condition, error) {
	if ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit := params.QuantityLimitPerWallet
	if limit == "" {
		limit = domain.MaxUint256.String()
	}
	if _, ok := new(big.Int).SetString(limit, 10); !ok {
		return nil, domain.ErrInvalidNumberFormat
	}

	price := params.PricePerToken
	if price == "" {
		price = "0"
	}
	if _, ok := new(big.Int).SetString(price, 10); !ok {
		return nil, domain.ErrInvalidNumberFormat
	}

	conditionId := claim.ConditionId(0)
	supplyClaimed := int64(0)
	current, err := im.conditionRepo.Get(ctx)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if current != nil {
		if params.ResetClaimEligibility {
			// a new phase resets every wallet's claimed count
			conditionId = current.ConditionId + 1
		} else {
			conditionId = current.ConditionId
			supplyClaimed = current.SupplyClaimed
		}
	}

	if params.MaxClaimableSupply < supplyClaimed {
		return nil, domain.ErrBadParamInput
	}

	condition := &claim.Condition{
		ConditionId:            conditionId,
		StartTimestamp:         time.Unix(params.StartTimestamp, 0),
		MaxClaimableSupply:     params.MaxClaimableSupply,
		SupplyClaimed:          supplyClaimed,
		QuantityLimitPerWallet: limit,
		MerkleRoot:             params.MerkleRoot,
		PricePerToken:          price,
		Currency:               params.Currency.ToLower(),
		Metadata:               params.Metadata,
		UpdatedAt:              time.Now(),
	}
	if err := im.conditionRepo.Set(ctx, condition); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"condition": *condition,
		}).Error("failed to conditionRepo.Set")
		return nil, err
	}
	return condition, nil
}

// effectiveTerms resolves wallet limit, price and currency for a claimer,
// applying allowlist overrides when the proof carries them.
func (im *impl) effectiveTerms(ctx bCtx.Ctx, condition *claim.Condition, claimer domain.Address, params claim.ClaimParams) (*big.Int, *big.Int, domain.Address, error) {
	limit, err := condition.WalletLimit()
	if err != nil {
		return nil, nil, domain.EmptyAddress, err
	}
	price, err := condition.Price()
	if err != nil {
		return nil, nil, domain.EmptyAddress, err
	}
	currency := condition.Currency

	if condition.MerkleRoot == "" {
		return limit, price, currency, nil
	}

	if params.Proof == nil {
		return nil, nil, domain.EmptyAddress, domain.ErrClaimRejected
	}

	proofLimit := limit
	if params.Proof.QuantityLimitPerWallet != "" {
		proofLimit, err = domain.ParseBigInt(params.Proof.QuantityLimitPerWallet)
		if err != nil {
			return nil, nil, domain.EmptyAddress, err
		}
	}

	leaf := merkle.Leaf(claimer, proofLimit)
	valid, err := merkle.Verify(condition.MerkleRoot, leaf, params.Proof.Proof)
	if err != nil {
		return nil, nil, domain.EmptyAddress, err
	}
	if !valid {
		return nil, nil, domain.EmptyAddress, domain.ErrClaimRejected
	}

	limit = proofLimit
	if params.Proof.PricePerToken != "" {
		price, err = domain.ParseBigInt(params.Proof.PricePerToken)
		if err != nil {
			return nil, nil, domain.EmptyAddress, err
		}
	}
	if params.Proof.Currency != "" {
		currency = domain.Address(params.Proof.Currency).ToLower()
	}
	return limit, price, currency, nil
}

func (im *impl) verify(ctx bCtx.Ctx, claimer domain.Address, params claim.ClaimParams) (*claim.Condition, error) {
	condition, err := im.conditionRepo.Get(ctx)
	if err == domain.ErrNotFound {
		return nil, domain.ErrClaimRejected
	} else if err != nil {
		return nil, err
	}

	if params.Quantity <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if time.Now().Before(condition.StartTimestamp) {
		return nil, domain.ErrClaimRejected
	}

	limit, price, currency, err := im.effectiveTerms(ctx, condition, claimer, params)
	if err != nil {
		return nil, err
	}

	// claimer must agree with the terms it is charged on
	if !params.Currency.Equals(currency) {
		return nil, domain.ErrPaymentMismatch
	}

	claimPrice := "0"
	if params.PricePerToken != "" {
		claimPrice = params.PricePerToken
	}
	offered, err := domain.ParseBigInt(claimPrice)
	if err != nil {
		return nil, err
	}
	if offered.Cmp(price) != 0 {
		return nil, domain.ErrPaymentMismatch
	}

	claimed := int64(0)
	wallet, err := im.walletClaimRepo.FindOne(ctx, condition.ConditionId, claimer)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if wallet != nil {
		claimed = wallet.Claimed
	}

	// big.Int sums so an absurd quantity cannot wrap past a guard
	if limit.Cmp(domain.MaxUint256) != 0 {
		total := new(big.Int).Add(big.NewInt(claimed), big.NewInt(params.Quantity))
		if total.Cmp(limit) > 0 {
			return nil, domain.ErrClaimRejected
		}
	}

	supplyAfter := new(big.Int).Add(big.NewInt(condition.SupplyClaimed), big.NewInt(params.Quantity))
	if supplyAfter.Cmp(big.NewInt(condition.MaxClaimableSupply)) > 0 {
		return nil, domain.ErrClaimRejected
	}

	return condition, nil
}

func (im *impl) VerifyClaim(ctx bCtx.Ctx, claimer domain.Address, params claim.ClaimParams) error {
	_, err := im.verify(ctx, claimer, params)
	return err
}

func (im *impl) Claim(ctx bCtx.Ctx, claimer domain.Address, params claim.ClaimParams) (int64, error) {
	condition, err := im.verify(ctx, claimer, params)
	if err != nil {
		return 0, err
	}

	receiver := params.Receiver
	if receiver.IsEmpty() {
		receiver = claimer
	}

	var firstTokenId int64
	run := func(ctx bCtx.Ctx) error {
		if err := im.conditionRepo.ConsumeSupply(ctx, condition.ConditionId, params.Quantity, condition.MaxClaimableSupply); err != nil {
			return err
		}
		if err := im.walletClaimRepo.Increment(ctx, condition.ConditionId, claimer, params.Quantity); err != nil {
			return err
		}
		// mint last so a failed mint aborts the counter writes with it
		tokenId, err := im.assetUC.MintTo(ctx, receiver, params.Quantity)
		if err != nil {
			return err
		}
		firstTokenId = tokenId
		return nil
	}

	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"claimer":  claimer,
			"receiver": receiver,
			"quantity": params.Quantity,
		}).Error("claim transaction failed")
		return 0, err
	}
	return firstTokenId, nil
}

func (im *impl) GetWalletClaimed(ctx bCtx.Ctx, wallet domain.Address) (int64, error) {
	condition, err := im.conditionRepo.Get(ctx)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	claimRec, err := im.walletClaimRepo.FindOne(ctx, condition.ConditionId, wallet)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return claimRec.Claimed, nil
}
