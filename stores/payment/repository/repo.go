package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/payment"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) payment.RecordRepo {
	return &impl{q}
}

func (im *impl) Insert(ctx ctx.Ctx, record *payment.Record) error {
	if err := im.q.Insert(ctx, domain.TablePaymentRecords, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"record": *record,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) FindOne(ctx ctx.Ctx, paymentId string) (*payment.Record, error) {
	res := payment.Record{}
	err := im.q.FindOne(ctx, domain.TablePaymentRecords, bson.M{"paymentId": paymentId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"paymentId": paymentId,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAllByPayer(ctx ctx.Ctx, payer domain.Address) ([]*payment.Record, error) {
	res := []*payment.Record{}
	err := im.q.Search(ctx, domain.TablePaymentRecords, 0, 0, "-createdAt", bson.M{"payer": payer.ToLower()}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"payer": payer,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
