package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type walletImpl struct {
	q query.Mongo
}

func NewWalletClaimRepo(q query.Mongo) claim.WalletClaimRepo {
	return &walletImpl{q}
}

func (im *walletImpl) FindOne(ctx ctx.Ctx, id claim.ConditionId, wallet domain.Address) (*claim.WalletClaim, error) {
	selector := bson.M{"conditionId": id, "wallet": wallet.ToLower()}
	res := claim.WalletClaim{}
	err := im.q.FindOne(ctx, domain.TableWalletClaims, selector, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"wallet": wallet,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *walletImpl) Increment(ctx ctx.Ctx, id claim.ConditionId, wallet domain.Address, quantity int64) error {
	selector := bson.M{"conditionId": id, "wallet": wallet.ToLower()}
	res := claim.WalletClaim{}
	if err := im.q.Increment(ctx, domain.TableWalletClaims, selector, &res, "claimed", quantity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"wallet":   wallet,
			"quantity": quantity,
		}).Error("failed to q.Increment")
		return err
	}
	return nil
}
