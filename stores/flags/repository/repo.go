package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/marketplace"
	"github.com/nftreasury/goapi/service/cache"
	"github.com/nftreasury/goapi/service/cache/provider"
	"github.com/nftreasury/goapi/service/cache/provider/compound"
	"github.com/nftreasury/goapi/service/cache/provider/primitive"
	redisCache "github.com/nftreasury/goapi/service/cache/provider/redis"
	"github.com/nftreasury/goapi/service/query"
	"github.com/nftreasury/goapi/service/redis"
)

const flagsCacheKey = "current"

type impl struct {
	query      query.Mongo
	flagsCache cache.Service
}

// New creates new marketplace flags repo
func New(query query.Mongo, redis redis.Service) marketplace.FlagsRepo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("flags", 16),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		flagsCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "flags",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Flags, error) {
	res := &marketplace.Flags{}

	if err := im.flagsCache.GetByFunc(c, flagsCacheKey, res, func() (interface{}, error) {
		return im.get(c)
	}); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("flagsCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) get(c ctx.Ctx) (*marketplace.Flags, error) {
	flags := &marketplace.Flags{}
	err := im.query.FindOne(c, domain.TableMarketplaceFlags, bson.M{}, flags)
	if err == query.ErrNotFound {
		return marketplace.DefaultFlags(), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("find marketplace flags failed")
		return nil, err
	}
	return flags, nil
}

func (im *impl) Update(c ctx.Ctx, patchable marketplace.FlagsPatchable) error {
	flags, err := im.get(c)
	if err != nil {
		return err
	}

	if patchable.OutsideListingAllowed != nil {
		flags.OutsideListingAllowed = *patchable.OutsideListingAllowed
	}
	if patchable.AuctionEnabled != nil {
		flags.AuctionEnabled = *patchable.AuctionEnabled
	}
	if patchable.PlatformFeeBps != nil {
		flags.PlatformFeeBps = *patchable.PlatformFeeBps
	}
	if patchable.ListPriceBpsIncrease != nil {
		flags.ListPriceBpsIncrease = *patchable.ListPriceBpsIncrease
	}
	if patchable.PlatformFeeRecipient != nil {
		flags.PlatformFeeRecipient = patchable.PlatformFeeRecipient.ToLower()
	}

	if err := im.query.Upsert(c, domain.TableMarketplaceFlags, bson.M{}, flags); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"flags": *flags,
		}).Error("failed to q.Upsert")
		return err
	}

	if err := im.flagsCache.Del(c, flagsCacheKey); err != nil && err != cache.ErrNotFound {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("flagsCache.Del failed")
	}
	return nil
}
