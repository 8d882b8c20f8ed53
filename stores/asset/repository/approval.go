package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type approvalImpl struct {
	q query.Mongo
}

func NewApprovalRepo(q query.Mongo) asset.ApprovalRepo {
	return &approvalImpl{q}
}

func (im *approvalImpl) FindTokenApproval(ctx ctx.Ctx, id asset.TokenId) (*asset.Approval, error) {
	selector := bson.M{
		"contractAddress": id.ContractAddress.ToLower(),
		"tokenId":         id.TokenId,
	}
	res := asset.Approval{}
	err := im.q.FindOne(ctx, domain.TableTokenApprovals, selector, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *approvalImpl) UpsertTokenApproval(ctx ctx.Ctx, approval *asset.Approval) error {
	approval.ContractAddress = approval.ContractAddress.ToLower()
	approval.Operator = approval.Operator.ToLower()
	selector := bson.M{
		"contractAddress": approval.ContractAddress,
		"tokenId":         approval.TokenId,
	}
	if err := im.q.Upsert(ctx, domain.TableTokenApprovals, selector, approval); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"approval": *approval,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *approvalImpl) RemoveTokenApproval(ctx ctx.Ctx, id asset.TokenId) error {
	selector := bson.M{
		"contractAddress": id.ContractAddress.ToLower(),
		"tokenId":         id.TokenId,
	}
	err := im.q.Remove(ctx, domain.TableTokenApprovals, selector)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}

func (im *approvalImpl) FindOperatorApproval(ctx ctx.Ctx, contract, owner, operator domain.Address) (*asset.OperatorApproval, error) {
	selector := bson.M{
		"contractAddress": contract.ToLower(),
		"owner":           owner.ToLower(),
		"operator":        operator.ToLower(),
	}
	res := asset.OperatorApproval{}
	err := im.q.FindOne(ctx, domain.TableOperatorApprovals, selector, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *approvalImpl) UpsertOperatorApproval(ctx ctx.Ctx, approval *asset.OperatorApproval) error {
	approval.ContractAddress = approval.ContractAddress.ToLower()
	approval.Owner = approval.Owner.ToLower()
	approval.Operator = approval.Operator.ToLower()
	selector := bson.M{
		"contractAddress": approval.ContractAddress,
		"owner":           approval.Owner,
		"operator":        approval.Operator,
	}
	if err := im.q.Upsert(ctx, domain.TableOperatorApprovals, selector, approval); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"approval": *approval,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
