package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type marketImpl struct {
	q query.Mongo
}

func NewApprovedMarketRepo(q query.Mongo) asset.ApprovedMarketRepo {
	return &marketImpl{q}
}

func (im *marketImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*asset.ApprovedMarket, error) {
	res := asset.ApprovedMarket{}
	err := im.q.FindOne(ctx, domain.TableApprovedMarkets, bson.M{"address": address.ToLower()}, &res)
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

func (im *marketImpl) Upsert(ctx ctx.Ctx, market *asset.ApprovedMarket) error {
	market.Address = market.Address.ToLower()
	if err := im.q.Upsert(ctx, domain.TableApprovedMarkets, bson.M{"address": market.Address}, market); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"market": *market,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *marketImpl) FindAll(ctx ctx.Ctx) ([]*asset.ApprovedMarket, error) {
	res := []*asset.ApprovedMarket{}
	err := im.q.Search(ctx, domain.TableApprovedMarkets, 0, 0, "address", bson.M{}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
