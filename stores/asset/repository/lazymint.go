package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const claimCounterKey = "next_token_to_claim"

type counter struct {
	Key string `bson:"key"`
	Seq int64  `bson:"seq"`
}

type lazyMintImpl struct {
	q query.Mongo
}

func NewLazyMintRepo(q query.Mongo) asset.LazyMintRepo {
	return &lazyMintImpl{q}
}

func (im *lazyMintImpl) Insert(ctx ctx.Ctx, batch *asset.LazyMintBatch) error {
	batch.CreatedBy = batch.CreatedBy.ToLower()
	if err := im.q.Insert(ctx, domain.TableLazyMintBatches, batch); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"batch": *batch,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *lazyMintImpl) FindBatchForToken(ctx ctx.Ctx, tokenId int64) (*asset.LazyMintBatch, error) {
	res := []*asset.LazyMintBatch{}
	selector := bson.M{"startTokenId": bson.M{"$lte": tokenId}}
	err := im.q.Search(ctx, domain.TableLazyMintBatches, 0, 1, "-startTokenId", selector, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("failed to q.Search")
		return nil, err
	}
	if len(res) == 0 || tokenId >= res[0].StartTokenId+res[0].Amount {
		return nil, domain.ErrNotFound
	}
	return res[0], nil
}

func (im *lazyMintImpl) NextTokenIdToMint(ctx ctx.Ctx) (int64, error) {
	res := []*asset.LazyMintBatch{}
	err := im.q.Search(ctx, domain.TableLazyMintBatches, 0, 1, "-startTokenId", bson.M{}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return 0, err
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0].StartTokenId + res[0].Amount, nil
}

func (im *lazyMintImpl) ConsumeNextTokenIdToClaim(ctx ctx.Ctx, quantity int64) (int64, error) {
	seq := counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"key": claimCounterKey}, &seq, "seq", quantity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"quantity": quantity,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return seq.Seq - quantity, nil
}

func (im *lazyMintImpl) NextTokenIdToClaim(ctx ctx.Ctx) (int64, error) {
	seq := counter{}
	err := im.q.FindOne(ctx, domain.TableCounters, bson.M{"key": claimCounterKey}, &seq)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return 0, err
	}
	return seq.Seq, nil
}
