package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type tokenImpl struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) asset.TokenRepo {
	return &tokenImpl{q}
}

func (im *tokenImpl) FindOne(ctx ctx.Ctx, id asset.TokenId) (*asset.Token, error) {
	selector := bson.M{
		"contractAddress": id.ContractAddress.ToLower(),
		"tokenId":         id.TokenId,
	}
	res := asset.Token{}
	err := im.q.FindOne(ctx, domain.TableTreasuryTokens, selector, &res)
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

func (im *tokenImpl) FindAllByOwner(ctx ctx.Ctx, owner domain.Address) ([]*asset.Token, error) {
	res := []*asset.Token{}
	err := im.q.Search(ctx, domain.TableTreasuryTokens, 0, 0, "tokenId", bson.M{"owner": owner.ToLower()}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *tokenImpl) Create(ctx ctx.Ctx, token *asset.Token) error {
	token.LowerCase()
	if err := im.q.Insert(ctx, domain.TableTreasuryTokens, token); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"token": *token,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *tokenImpl) Update(ctx ctx.Ctx, id asset.TokenId, patchable asset.TokenPatchable) error {
	selector := bson.M{
		"contractAddress": id.ContractAddress.ToLower(),
		"tokenId":         id.TokenId,
	}
	if patchable.Owner != nil {
		lowered := patchable.Owner.ToLower()
		patchable.Owner = &lowered
	}
	err := im.q.Patch(ctx, domain.TableTreasuryTokens, selector, patchable)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"patchable": patchable,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *tokenImpl) Count(ctx ctx.Ctx) (int, error) {
	cnt, err := im.q.Count(ctx, domain.TableTreasuryTokens, bson.M{})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
