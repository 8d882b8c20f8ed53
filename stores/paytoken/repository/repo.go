package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) domain.PayTokenRepo {
	return &impl{q}
}

func (im *impl) FindOne(ctx ctx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.PayToken, error) {
	selector := bson.M{"chainId": chainId, "address": address.ToLower()}
	res := domain.PayToken{}
	err := im.q.FindOne(ctx, domain.TablePayTokens, selector, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Create(ctx ctx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()
	if err := im.q.Insert(ctx, domain.TablePayTokens, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"payToken": *payToken,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) Upsert(ctx ctx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()
	selector := bson.M{"chainId": payToken.ChainId, "address": payToken.Address}
	if err := im.q.Upsert(ctx, domain.TablePayTokens, selector, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"payToken": *payToken,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
