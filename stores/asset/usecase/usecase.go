package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/domain/role"
)

type AssetUseCaseCfg struct {
	TokenRepo          asset.TokenRepo
	ApprovalRepo       asset.ApprovalRepo
	ApprovedMarketRepo asset.ApprovedMarketRepo
	LazyMintRepo       asset.LazyMintRepo
	RoleUC             role.UseCase
	// CollectionAddress is the treasury collection every token belongs to.
	CollectionAddress domain.Address
}

type impl struct {
	tokenRepo          asset.TokenRepo
	approvalRepo       asset.ApprovalRepo
	approvedMarketRepo asset.ApprovedMarketRepo
	lazyMintRepo       asset.LazyMintRepo
	roleUC             role.UseCase
	collection         domain.Address
}

func New(cfg *AssetUseCaseCfg) asset.UseCase {
	return &impl{
		tokenRepo:          cfg.TokenRepo,
		approvalRepo:       cfg.ApprovalRepo,
		approvedMarketRepo: cfg.ApprovedMarketRepo,
		lazyMintRepo:       cfg.LazyMintRepo,
		roleUC:             cfg.RoleUC,
		collection:         cfg.CollectionAddress.ToLower(),
	}
}

func (im *impl) tokenId(tokenId domain.TokenId) asset.TokenId {
	return asset.TokenId{ContractAddress: im.collection, TokenId: tokenId}
}

func (im *impl) OwnerOf(ctx ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	token, err := im.tokenRepo.FindOne(ctx, im.tokenId(tokenId))
	if err != nil {
		return domain.EmptyAddress, err
	}
	return token.Owner, nil
}

func (im *impl) GetToken(ctx ctx.Ctx, tokenId domain.TokenId) (*asset.Token, error) {
	return im.tokenRepo.FindOne(ctx, im.tokenId(tokenId))
}

func (im *impl) TokensOf(ctx ctx.Ctx, owner domain.Address) ([]*asset.Token, error) {
	return im.tokenRepo.FindAllByOwner(ctx, owner)
}

func (im *impl) LazyMint(ctx ctx.Ctx, caller domain.Address, amount int64, baseUri string) (*asset.LazyMintBatch, error) {
	if ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorized
	}
	if amount <= 0 {
		return nil, domain.ErrBadParamInput
	}

	startTokenId, err := im.lazyMintRepo.NextTokenIdToMint(ctx)
	if err != nil {
		return nil, err
	}

	batch := &asset.LazyMintBatch{
		BatchId:      startTokenId,
		BaseUri:      baseUri,
		StartTokenId: startTokenId,
		Amount:       amount,
		CreatedBy:    caller,
		CreatedAt:    time.Now(),
	}
	if err := im.lazyMintRepo.Insert(ctx, batch); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"batch": *batch,
		}).Error("failed to lazyMintRepo.Insert")
		return nil, err
	}
	return batch, nil
}

func (im *impl) MintTo(ctx ctx.Ctx, receiver domain.Address, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrBadParamInput
	}

	nextToMint, err := im.lazyMintRepo.NextTokenIdToMint(ctx)
	if err != nil {
		return 0, err
	}
	nextToClaim, err := im.lazyMintRepo.NextTokenIdToClaim(ctx)
	if err != nil {
		return 0, err
	}
	if nextToClaim+quantity > nextToMint {
		// not enough lazy minted tokens
		return 0, domain.ErrQuantityExceeded
	}

	firstId, err := im.lazyMintRepo.ConsumeNextTokenIdToClaim(ctx, quantity)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for i := int64(0); i < quantity; i++ {
		id := firstId + i
		batch, err := im.lazyMintRepo.FindBatchForToken(ctx, id)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"tokenId": id,
			}).Error("failed to lazyMintRepo.FindBatchForToken")
			return 0, err
		}
		token := &asset.Token{
			ContractAddress: im.collection,
			TokenId:         domain.TokenId(strconv.FormatInt(id, 10)),
			Owner:           receiver,
			TokenUri:        fmt.Sprintf("%s%d", batch.BaseUri, id),
			MintedAt:        now,
			UpdatedAt:       now,
		}
		if err := im.tokenRepo.Create(ctx, token); err != nil {
			return 0, err
		}
	}

	return firstId, nil
}

func (im *impl) Transfer(ctx ctx.Ctx, operator, from, to domain.Address, tokenId domain.TokenId) error {
	token, err := im.tokenRepo.FindOne(ctx, im.tokenId(tokenId))
	if err != nil {
		return err
	}
	if !token.Owner.Equals(from) {
		return domain.ErrUnauthorized
	}
	if to.IsEmpty() {
		return domain.ErrBadParamInput
	}

	ok, err := im.canOperate(ctx, operator, token)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	now := time.Now()
	patchable := asset.TokenPatchable{
		Owner:     &to,
		UpdatedAt: &now,
	}
	if err := im.tokenRepo.Update(ctx, im.tokenId(tokenId), patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"to":      to,
		}).Error("failed to tokenRepo.Update")
		return err
	}

	// single-token approvals do not survive a transfer
	if err := im.approvalRepo.RemoveTokenApproval(ctx, im.tokenId(tokenId)); err != nil && err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("failed to approvalRepo.RemoveTokenApproval")
		return err
	}
	return nil
}

func (im *impl) canOperate(ctx ctx.Ctx, operator domain.Address, token *asset.Token) (bool, error) {
	if token.Owner.Equals(operator) {
		return true, nil
	}

	approval, err := im.approvalRepo.FindTokenApproval(ctx, asset.TokenId{ContractAddress: token.ContractAddress, TokenId: token.TokenId})
	if err != nil && err != domain.ErrNotFound {
		return false, err
	}
	if approval != nil && approval.Operator.Equals(operator) {
		return true, nil
	}

	opApproval, err := im.approvalRepo.FindOperatorApproval(ctx, token.ContractAddress, token.Owner, operator)
	if err != nil && err != domain.ErrNotFound {
		return false, err
	}
	return opApproval != nil && opApproval.Approved, nil
}

func (im *impl) Approve(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId, operator domain.Address) error {
	token, err := im.tokenRepo.FindOne(ctx, im.tokenId(tokenId))
	if err != nil {
		return err
	}
	if !token.Owner.Equals(caller) {
		return domain.ErrUnauthorized
	}

	approved, err := im.IsApprovedMarketplace(ctx, operator)
	if err != nil {
		return err
	}
	if !approved {
		return domain.ErrPolicyViolation
	}

	approval := &asset.Approval{
		ContractAddress: im.collection,
		TokenId:         tokenId,
		Operator:        operator,
	}
	if err := im.approvalRepo.UpsertTokenApproval(ctx, approval); err != nil {
		return err
	}
	return nil
}

func (im *impl) SetApprovalForAll(ctx ctx.Ctx, caller, operator domain.Address, approved bool) error {
	if approved {
		ok, err := im.IsApprovedMarketplace(ctx, operator)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPolicyViolation
		}
	}

	approval := &asset.OperatorApproval{
		ContractAddress: im.collection,
		Owner:           caller,
		Operator:        operator,
		Approved:        approved,
	}
	if err := im.approvalRepo.UpsertOperatorApproval(ctx, approval); err != nil {
		return err
	}
	return nil
}

func (im *impl) SetApprovedMarketplace(ctx ctx.Ctx, caller, market domain.Address, approved bool) error {
	if ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}

	m := &asset.ApprovedMarket{
		Address:   market,
		Approved:  approved,
		UpdatedAt: time.Now(),
	}
	if err := im.approvedMarketRepo.Upsert(ctx, m); err != nil {
		return err
	}
	return nil
}

func (im *impl) IsApprovedMarketplace(ctx ctx.Ctx, market domain.Address) (bool, error) {
	m, err := im.approvedMarketRepo.FindOne(ctx, market)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return m.Approved, nil
}
