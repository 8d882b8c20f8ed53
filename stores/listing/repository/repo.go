package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/listing"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const listingCounterKey = "listings"

type counter struct {
	Key string `bson:"key"`
	Seq int64  `bson:"seq"`
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(options listing.FindAllOptions) (bson.M, error) {
	query := bson.M{}

	if options.AssetContract != nil {
		query["assetContract"] = *options.AssetContract
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if options.TokenOwner != nil {
		query["tokenOwner"] = *options.TokenOwner
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.ListingType != nil {
		query["listingType"] = *options.ListingType
	}

	return query, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	offset := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "listingId"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	err = im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}
	query, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	res := listing.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"listingId": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *impl) Create(ctx ctx.Ctx, value *listing.Listing) (listing.ListingId, error) {
	value.LowerCase()

	seq := counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"key": listingCounterKey}, &seq, "seq", int64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Increment")
		return 0, err
	}

	value.ListingId = listing.ListingId(seq.Seq)
	if err := im.q.Insert(ctx, domain.TableListings, value); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *value,
		}).Error("failed to q.Insert")
		return 0, err
	}

	return value.ListingId, nil
}

func (im *impl) Update(ctx ctx.Ctx, id listing.ListingId, patchable listing.ListingPatchable) error {
	err := im.q.Patch(ctx, domain.TableListings, bson.M{"listingId": id}, patchable)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"patchable": patchable,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}
