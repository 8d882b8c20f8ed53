package usecase

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/base/ptr"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/marketplace"
	"github.com/nftreasury/goapi/domain/role"
)

type FlagsUseCaseCfg struct {
	FlagsRepo marketplace.FlagsRepo
	RoleUC    role.UseCase
}

type impl struct {
	flagsRepo marketplace.FlagsRepo
	roleUC    role.UseCase
}

func New(cfg *FlagsUseCaseCfg) marketplace.FlagsUseCase {
	return &impl{
		flagsRepo: cfg.FlagsRepo,
		roleUC:    cfg.RoleUC,
	}
}

func (im *impl) Get(ctx ctx.Ctx) (*marketplace.Flags, error) {
	return im.flagsRepo.Get(ctx)
}

func (im *impl) requireAdmin(ctx ctx.Ctx, caller domain.Address) error {
	ok, err := im.roleUC.HasRole(ctx, role.RoleAdmin, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) SetOutsideListingAllowed(ctx ctx.Ctx, caller domain.Address, allowed bool) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return im.update(ctx, marketplace.FlagsPatchable{OutsideListingAllowed: ptr.Bool(allowed)})
}

func (im *impl) SetAuctionEnabled(ctx ctx.Ctx, caller domain.Address, enabled bool) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return im.update(ctx, marketplace.FlagsPatchable{AuctionEnabled: ptr.Bool(enabled)})
}

func (im *impl) SetPlatformFee(ctx ctx.Ctx, caller domain.Address, bps int64, recipient domain.Address) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if bps < 0 || bps > domain.MaxBps.Int64() {
		return domain.ErrBadParamInput
	}
	return im.update(ctx, marketplace.FlagsPatchable{
		PlatformFeeBps:       ptr.Int64(bps),
		PlatformFeeRecipient: &recipient,
	})
}

func (im *impl) SetListPriceBpsIncrease(ctx ctx.Ctx, caller domain.Address, bps int64) error {
	if err := im.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if bps < 0 || bps > domain.MaxBps.Int64() {
		return domain.ErrBadParamInput
	}
	return im.update(ctx, marketplace.FlagsPatchable{ListPriceBpsIncrease: ptr.Int64(bps)})
}

func (im *impl) update(ctx ctx.Ctx, patchable marketplace.FlagsPatchable) error {
	if err := im.flagsRepo.Update(ctx, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to flagsRepo.Update")
		return err
	}
	return nil
}
