package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/database/mongoclient"
	"github.com/nftreasury/goapi/base/database/redisclient"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/base/metrics"
	bValidator "github.com/nftreasury/goapi/base/validator"
	"github.com/nftreasury/goapi/domain"
	mmiddleware "github.com/nftreasury/goapi/middleware"
	"github.com/nftreasury/goapi/service/query"
	"github.com/nftreasury/goapi/service/redis"
	asset_delivery "github.com/nftreasury/goapi/stores/asset/delivery/http"
	asset_repository "github.com/nftreasury/goapi/stores/asset/repository"
	asset_usecase "github.com/nftreasury/goapi/stores/asset/usecase"
	auth_delivery "github.com/nftreasury/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/nftreasury/goapi/stores/auth/usecase"
	claim_delivery "github.com/nftreasury/goapi/stores/claim/delivery/http"
	claim_repository "github.com/nftreasury/goapi/stores/claim/repository"
	claim_usecase "github.com/nftreasury/goapi/stores/claim/usecase"
	flags_delivery "github.com/nftreasury/goapi/stores/flags/delivery/http"
	flags_repository "github.com/nftreasury/goapi/stores/flags/repository"
	flags_usecase "github.com/nftreasury/goapi/stores/flags/usecase"
	hc_delivery "github.com/nftreasury/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/nftreasury/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/nftreasury/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/nftreasury/goapi/stores/listing/delivery/http"
	listing_repository "github.com/nftreasury/goapi/stores/listing/repository"
	listing_usecase "github.com/nftreasury/goapi/stores/listing/usecase"
	mintlist_delivery "github.com/nftreasury/goapi/stores/mintlist/delivery/http"
	mintlist_usecase "github.com/nftreasury/goapi/stores/mintlist/usecase"
	payment_delivery "github.com/nftreasury/goapi/stores/payment/delivery/http"
	payment_repository "github.com/nftreasury/goapi/stores/payment/repository"
	payment_usecase "github.com/nftreasury/goapi/stores/payment/usecase"
	paytoken_repository "github.com/nftreasury/goapi/stores/paytoken/repository"
	role_delivery "github.com/nftreasury/goapi/stores/role/delivery/http"
	role_repository "github.com/nftreasury/goapi/stores/role/repository"
	role_usecase "github.com/nftreasury/goapi/stores/role/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	collectionAddress := domain.Address(viper.GetString("collection.address")).ToLower()
	adminAddresses := []domain.Address{}
	for _, addr := range viper.GetStringSlice("admin.addresses") {
		adminAddresses = append(adminAddresses, domain.Address(addr).ToLower())
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.New(q)
	saleReceiptRepo := listing_repository.NewSaleReceiptRepo(q)
	roleRepo := role_repository.New(q)
	flagsRepo := flags_repository.New(q, redisCache)
	tokenRepo := asset_repository.NewTokenRepo(q)
	approvalRepo := asset_repository.NewApprovalRepo(q)
	approvedMarketRepo := asset_repository.NewApprovedMarketRepo(q)
	lazyMintRepo := asset_repository.NewLazyMintRepo(q)
	conditionRepo := claim_repository.NewConditionRepo(q)
	walletClaimRepo := claim_repository.NewWalletClaimRepo(q)
	paymentRecordRepo := payment_repository.New(q)
	paytokenRepo := paytoken_repository.New(q)

	// native token must be a known pay token so buys priced in it pass
	// currency validation
	if err := paytokenRepo.Upsert(context, &domain.PayToken{
		Name:          viper.GetString("chain.nativeTokenName"),
		Symbol:        viper.GetString("chain.nativeTokenSymbol"),
		TokenDecimals: 18,
		ChainId:       chainId,
		Address:       domain.NativeTokenAddress,
	}); err != nil {
		context.WithField("err", err).Error("failed to seed native pay token")
	}

	hc := hc_usecase.New(hcRepo)
	roleUC := role_usecase.New(&role_usecase.RoleUseCaseCfg{
		RoleRepo: roleRepo,
		Admins:   adminAddresses,
	})
	flagsUC := flags_usecase.New(&flags_usecase.FlagsUseCaseCfg{
		FlagsRepo: flagsRepo,
		RoleUC:    roleUC,
	})
	assetUC := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		TokenRepo:          tokenRepo,
		ApprovalRepo:       approvalRepo,
		ApprovedMarketRepo: approvedMarketRepo,
		LazyMintRepo:       lazyMintRepo,
		RoleUC:             roleUC,
		CollectionAddress:  collectionAddress,
	})
	claimUC := claim_usecase.New(&claim_usecase.ClaimUseCaseCfg{
		ConditionRepo:   conditionRepo,
		WalletClaimRepo: walletClaimRepo,
		RoleUC:          roleUC,
		AssetUC:         assetUC,
		Q:               q,
	})
	paymentService := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		RecordRepo:   paymentRecordRepo,
		PayTokenRepo: paytokenRepo,
		ChainId:      chainId,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:          listingRepo,
		SaleReceiptRepo:      saleReceiptRepo,
		FlagsUC:              flagsUC,
		RoleUC:               roleUC,
		AssetUC:              assetUC,
		PaymentService:       paymentService,
		Q:                    q,
		PrimaryAssetContract: collectionAddress,
	})
	mintlistUC := mintlist_usecase.New(&mintlist_usecase.MintListUseCaseCfg{
		ClaimUC:              claimUC,
		ListingUC:            listingUC,
		RoleUC:               roleUC,
		PrimaryAssetContract: collectionAddress,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	authMiddleware := auth_middleware.New(auth, roleUC)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listingUC, authMiddleware)
	flags_delivery.New(e, flagsUC, authMiddleware)
	claim_delivery.New(e, claimUC, authMiddleware)
	mintlist_delivery.New(e, mintlistUC, authMiddleware)
	asset_delivery.New(e, assetUC, authMiddleware)
	role_delivery.New(e, roleUC, authMiddleware)
	payment_delivery.New(e, paymentRecordRepo, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
