package usecase

import (
	"strconv"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/domain/listing"
	"github.com/nftreasury/goapi/domain/mintlist"
	"github.com/nftreasury/goapi/domain/role"
)

type MintListUseCaseCfg struct {
	ClaimUC   claim.UseCase
	ListingUC listing.UseCase
	RoleUC    role.UseCase
	// PrimaryAssetContract is the collection minted tokens belong to.
	PrimaryAssetContract domain.Address
}

type impl struct {
	claimUC      claim.UseCase
	listingUC    listing.UseCase
	roleUC       role.UseCase
	primaryAsset domain.Address
}

func New(cfg *MintListUseCaseCfg) mintlist.UseCase {
	return &impl{
		claimUC:      cfg.ClaimUC,
		listingUC:    cfg.ListingUC,
		roleUC:       cfg.RoleUC,
		primaryAsset: cfg.PrimaryAssetContract.ToLower(),
	}
}

// ClaimAndList is operator mediated: the claimer cannot call it for
// themself, only an admin acting on the claimer's behalf can. The claim
// commits even when the follow-up listing fails, so the result carries
// the listing error instead of rolling back the mint.
func (im *impl) ClaimAndList(ctx ctx.Ctx, caller domain.Address, params mintlist.ClaimAndListParams) (*mintlist.ClaimAndListResult, error) {
	if ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorized
	}

	claimer := params.Receiver
	tokenId, err := im.claimUC.Claim(ctx, claimer, claim.ClaimParams{
		Receiver:      claimer,
		Quantity:      params.Quantity,
		Currency:      params.Currency,
		PricePerToken: params.PricePerToken,
		Proof:         params.Proof,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"claimer": claimer,
		}).Error("failed to claimUC.Claim")
		return nil, err
	}

	result := &mintlist.ClaimAndListResult{TokenId: tokenId}

	listingParams := params.Listing
	listingParams.AssetContract = im.primaryAsset
	listingParams.TokenId = domain.TokenId(strconv.FormatInt(tokenId, 10))
	listingParams.OnBehalfOf = claimer
	listingParams.ListingType = listing.ListingTypeDirect
	if listingParams.Quantity == 0 {
		listingParams.Quantity = 1
	}
	if listingParams.ReservePricePerToken == "" {
		listingParams.ReservePricePerToken = "0"
	}

	lst, err := im.listingUC.CreateListing(ctx, caller, listingParams)
	if err != nil {
		// claim already committed, report the listing failure instead
		// of unwinding the mint
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"claimer": claimer,
		}).Warn("claim committed but listing failed")
		result.ListError = err.Error()
		return result, nil
	}

	result.Listing = lst
	result.Listed = true
	return result, nil
}
