package repository

import (
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type conditionImpl struct {
	q query.Mongo
}

func NewConditionRepo(q query.Mongo) claim.ConditionRepo {
	return &conditionImpl{q}
}

func (im *conditionImpl) Get(ctx ctx.Ctx) (*claim.Condition, error) {
	res := []*claim.Condition{}
	err := im.q.Search(ctx, domain.TableClaimConditions, 0, 1, "-conditionId", bson.M{}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res[0], nil
}

func (im *conditionImpl) Set(ctx ctx.Ctx, condition *claim.Condition) error {
	selector := bson.M{"conditionId": condition.ConditionId}
	if err := im.q.Upsert(ctx, domain.TableClaimConditions, selector, condition); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"condition": *condition,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *conditionImpl) ConsumeSupply(ctx ctx.Ctx, id claim.ConditionId, quantity, maxClaimableSupply int64) error {
	selector := bson.M{
		"conditionId":   id,
		"supplyClaimed": bson.M{"$lte": maxClaimableSupply - quantity},
	}
	update := bson.M{
		"$inc": bson.M{"supplyClaimed": quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	err := im.q.CustomPatch(ctx, domain.TableClaimConditions, selector, update, false)
	if err == query.ErrNotFound {
		return domain.ErrClaimRejected
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"conditionId": id,
			"quantity":    quantity,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
