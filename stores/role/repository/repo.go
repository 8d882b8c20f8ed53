package repository

import (
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/log"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/role"
	"github.com/nftreasury/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) role.Repo {
	return &impl{q}
}

func (im *impl) FindOne(ctx ctx.Ctx, id role.MemberId) (*role.Member, error) {
	res := role.Member{}
	err := im.q.FindOne(ctx, domain.TableRoleMembers, bson.M{"role": id.Role, "address": id.Address.ToLower()}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, r role.Role) ([]*role.Member, error) {
	res := []*role.Member{}
	err := im.q.Search(ctx, domain.TableRoleMembers, 0, 0, "grantedAt", bson.M{"role": r}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"role": r,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(ctx ctx.Ctx, member *role.Member) error {
	member.LowerCase()
	selector := bson.M{"role": member.Role, "address": member.Address}
	if err := im.q.Upsert(ctx, domain.TableRoleMembers, selector, member); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"member": *member,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *impl) Remove(ctx ctx.Ctx, id role.MemberId) error {
	err := im.q.Remove(ctx, domain.TableRoleMembers, bson.M{"role": id.Role, "address": id.Address.ToLower()})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}
