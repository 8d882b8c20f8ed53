package usecase

import (
	"math/big"
	"time"

	bCtx "github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/base/ptr"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/domain/listing"
	"github.com/nftreasury/goapi/domain/marketplace"
	"github.com/nftreasury/goapi/domain/payment"
	"github.com/nftreasury/goapi/domain/role"
	"github.com/nftreasury/goapi/service/query"
)

type ListingUseCaseCfg struct {
	ListingRepo     listing.Repo
	SaleReceiptRepo listing.SaleReceiptRepo
	FlagsUC         marketplace.FlagsUseCase
	RoleUC          role.UseCase
	AssetUC         asset.UseCase
	PaymentService  payment.Service
	Q               query.Mongo
	// PrimaryAssetContract is the treasury collection this engine fronts.
	PrimaryAssetContract domain.Address
}

type impl struct {
	listingRepo     listing.Repo
	saleReceiptRepo listing.SaleReceiptRepo
	flagsUC         marketplace.FlagsUseCase
	roleUC          role.UseCase
	assetUC         asset.UseCase
	paymentService  payment.Service
	q               query.Mongo
	primaryAsset    domain.Address
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:     cfg.ListingRepo,
		saleReceiptRepo: cfg.SaleReceiptRepo,
		flagsUC:         cfg.FlagsUC,
		roleUC:          cfg.RoleUC,
		assetUC:         cfg.AssetUC,
		paymentService:  cfg.PaymentService,
		q:               cfg.Q,
		primaryAsset:    cfg.PrimaryAssetContract.ToLower(),
	}
}

func (im *impl) CreateListing(ctx bCtx.Ctx, lister domain.Address, params listing.CreateListingParams) (*listing.Listing, error) {
	flags, err := im.flagsUC.Get(ctx)
	if err != nil {
		return nil, err
	}

	// gating order matters: policy flags first, roles second
	if !params.AssetContract.ToLower().Equals(im.primaryAsset) && !flags.OutsideListingAllowed {
		return nil, domain.ErrPolicyViolation
	}
	if params.ListingType == listing.ListingTypeAuction && !flags.AuctionEnabled {
		return nil, domain.ErrPolicyViolation
	}

	if ok, err := im.roleUC.IsAdminOrLister(ctx, lister); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorized
	}

	if params.Quantity < 1 || params.SecondsUntilEndTime <= 0 {
		return nil, domain.ErrBadParamInput
	}

	buyout, err := domain.ParseBigInt(params.BuyoutPricePerToken)
	if err != nil {
		return nil, err
	}
	if buyout.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}

	reserve := params.ReservePricePerToken
	if reserve == "" {
		reserve = "0"
	}
	if _, err := domain.ParseBigInt(reserve); err != nil {
		return nil, err
	}

	startTime := time.Unix(params.StartTime, 0)
	if params.StartTime == 0 {
		startTime = time.Now()
	}

	listingType := params.ListingType
	if listingType == "" {
		listingType = listing.ListingTypeDirect
	}

	currency := params.CurrencyToAccept
	if currency.IsEmpty() {
		currency = domain.NativeTokenAddress
	}

	tokenOwner := params.OnBehalfOf
	if tokenOwner.IsEmpty() {
		tokenOwner = lister
	}

	now := time.Now()
	value := &listing.Listing{
		AssetContract:        params.AssetContract,
		TokenId:              params.TokenId,
		TokenOwner:           tokenOwner,
		Quantity:             params.Quantity,
		CurrencyToAccept:     currency,
		ReservePricePerToken: reserve,
		BuyoutPricePerToken:  buyout.String(),
		ListingType:          listingType,
		StartTime:            startTime,
		EndTime:              startTime.Add(time.Duration(params.SecondsUntilEndTime) * time.Second),
		Status:               listing.StatusActive,
		CreatedBy:            lister,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	id, err := im.listingRepo.Create(ctx, value)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *value,
		}).Error("failed to listingRepo.Create")
		return nil, err
	}
	value.ListingId = id
	return value, nil
}

func (im *impl) Buy(ctx bCtx.Ctx, buyer domain.Address, params listing.BuyParams) (*listing.SaleReceipt, error) {
	lst, err := im.listingRepo.FindOne(ctx, params.ListingId)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidListing
	} else if err != nil {
		return nil, err
	}

	now := time.Now()
	if lst.Status != listing.StatusActive || now.Before(lst.StartTime) || now.After(lst.EndTime) {
		return nil, domain.ErrInvalidListing
	}
	if !params.Currency.Equals(lst.CurrencyToAccept) {
		return nil, domain.ErrPaymentMismatch
	}
	if params.Quantity <= 0 || params.Quantity > lst.Quantity {
		return nil, domain.ErrQuantityExceeded
	}

	buyout, err := lst.BuyoutPrice()
	if err != nil {
		return nil, err
	}
	expected := new(big.Int).Mul(buyout, big.NewInt(params.Quantity))
	offered, err := domain.ParseBigInt(params.TotalOfferedAmount)
	if err != nil {
		return nil, err
	}
	if offered.Cmp(expected) != 0 {
		return nil, domain.ErrPaymentMismatch
	}

	flags, err := im.flagsUC.Get(ctx)
	if err != nil {
		return nil, err
	}
	newPrice := listing.NextBuyoutPrice(buyout, flags.ListPriceBpsIncrease)

	buyFor := params.BuyFor.ToLower()
	var receipt *listing.SaleReceipt
	run := func(ctx bCtx.Ctx) error {
		// the asset may have moved outside of a buy; sell from whoever
		// holds it now so the listing stays serviceable
		holder, err := im.assetUC.OwnerOf(ctx, lst.TokenId)
		if err != nil {
			return domain.ErrInvalidListing
		}
		if err := im.assetUC.Transfer(ctx, holder, holder, buyFor, lst.TokenId); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"tokenId": lst.TokenId,
				"holder":  holder,
			}).Error("failed to assetUC.Transfer")
			return err
		}

		record, err := im.paymentService.Settle(ctx, payment.SettleParams{
			Payer:          buyer,
			Payee:          lst.TokenOwner,
			Currency:       lst.CurrencyToAccept,
			TotalPrice:     expected,
			PlatformFeeBps: flags.PlatformFeeBps,
			FeeRecipient:   flags.PlatformFeeRecipient,
		})
		if err != nil {
			return err
		}

		// re-arm: same listing, escalated price, new owner
		patchable := listing.ListingPatchable{
			TokenOwner:          &buyFor,
			BuyoutPricePerToken: ptr.String(newPrice.String()),
			UpdatedAt:           &now,
			SaleCount:           ptr.Int64(lst.SaleCount + 1),
		}
		if err := im.listingRepo.Update(ctx, lst.ListingId, patchable); err != nil {
			return err
		}

		receipt = &listing.SaleReceipt{
			ListingId:              lst.ListingId,
			AssetContract:          lst.AssetContract,
			TokenId:                lst.TokenId,
			Seller:                 lst.TokenOwner,
			Buyer:                  buyFor,
			Quantity:               params.Quantity,
			PricePerToken:          buyout.String(),
			TotalPricePaid:         expected.String(),
			PlatformFee:            record.PlatformFee,
			PaymentId:              record.PaymentId,
			NewBuyoutPricePerToken: newPrice.String(),
			Time:                   now,
		}
		return im.saleReceiptRepo.Insert(ctx, receipt)
	}

	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": params.ListingId,
			"buyer":     buyer,
		}).Error("buy transaction failed")
		return nil, err
	}

	return receipt, nil
}

func (im *impl) CancelListing(ctx bCtx.Ctx, caller domain.Address, id listing.ListingId) error {
	lst, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return domain.ErrInvalidListing
	} else if err != nil {
		return err
	}

	if !lst.TokenOwner.Equals(caller) {
		if ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller); err != nil {
			return err
		} else if !ok {
			return domain.ErrUnauthorized
		}
	}

	if lst.Status != listing.StatusActive {
		return domain.ErrInvalidListing
	}

	now := time.Now()
	status := listing.StatusCancelled
	return im.listingRepo.Update(ctx, id, listing.ListingPatchable{
		Status:    &status,
		UpdatedAt: &now,
	})
}

func (im *impl) GetListing(ctx bCtx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	lst, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidListing
	}
	return lst, err
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.listingRepo.FindAll(ctx, opts...)
}
