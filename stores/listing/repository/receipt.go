package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/listing"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type receiptImpl struct {
	q query.Mongo
}

func NewSaleReceiptRepo(q query.Mongo) listing.SaleReceiptRepo {
	return &receiptImpl{q}
}

func (im *receiptImpl) Insert(ctx ctx.Ctx, receipt *listing.SaleReceipt) error {
	if err := im.q.Insert(ctx, domain.TableSaleReceipts, receipt); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"receipt": *receipt,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *receiptImpl) FindAllByListing(ctx ctx.Ctx, id listing.ListingId) ([]*listing.SaleReceipt, error) {
	res := []*listing.SaleReceipt{}
	err := im.q.Search(ctx, domain.TableSaleReceipts, 0, 0, "time", bson.M{"listingId": id}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
