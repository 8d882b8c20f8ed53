package usecase

import (
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/role"
)

type RoleUseCaseCfg struct {
	RoleRepo role.Repo
	// Admins are bootstrap admin addresses from config. They hold the
	// admin role without a role_members entry.
	Admins []domain.Address
}

type impl struct {
	roleRepo role.Repo
	admins   map[domain.Address]bool
}

func New(cfg *RoleUseCaseCfg) role.UseCase {
	admins := map[domain.Address]bool{}
	for _, adr := range cfg.Admins {
		admins[adr.ToLower()] = true
	}
	return &impl{
		roleRepo: cfg.RoleRepo,
		admins:   admins,
	}
}

func (im *impl) HasRole(ctx ctx.Ctx, r role.Role, address domain.Address) (bool, error) {
	address = address.ToLower()
	if r == role.RoleAdmin && im.admins[address] {
		return true, nil
	}

	_, err := im.roleRepo.FindOne(ctx, role.MemberId{Role: r, Address: address})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"role":    r,
			"address": address,
		}).Error("failed to roleRepo.FindOne")
		return false, err
	}
	return true, nil
}

func (im *impl) IsAdminOrLister(ctx ctx.Ctx, address domain.Address) (bool, error) {
	if ok, err := im.HasRole(ctx, role.RoleAdmin, address); err != nil {
		return false, err
	} else if ok {
		return true, nil
	}
	return im.HasRole(ctx, role.RoleLister, address)
}

func (im *impl) Grant(ctx ctx.Ctx, caller domain.Address, r role.Role, address domain.Address) error {
	if ok, err := im.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}

	member := &role.Member{
		Role:      r,
		Address:   address,
		GrantedBy: caller,
		GrantedAt: time.Now(),
	}
	if err := im.roleRepo.Upsert(ctx, member); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"member": *member,
		}).Error("failed to roleRepo.Upsert")
		return err
	}
	return nil
}

func (im *impl) Revoke(ctx ctx.Ctx, caller domain.Address, r role.Role, address domain.Address) error {
	if ok, err := im.HasRole(ctx, role.RoleAdmin, caller); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}

	err := im.roleRepo.Remove(ctx, role.MemberId{Role: r, Address: address.ToLower()})
	if err != nil && err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":     err,
			"role":    r,
			"address": address,
		}).Error("failed to roleRepo.Remove")
		return err
	}
	return nil
}

func (im *impl) Members(ctx ctx.Ctx, r role.Role) ([]*role.Member, error) {
	return im.roleRepo.FindAll(ctx, r)
}
