package role

import (
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLister Role = "lister"
)

func ToRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleLister:
		return RoleLister, nil
	}
	return "", domain.ErrBadParamInput
}

type Member struct {
	Role      Role           `json:"role" bson:"role"`
	Address   domain.Address `json:"address" bson:"address"`
	GrantedBy domain.Address `json:"grantedBy" bson:"grantedBy"`
	GrantedAt time.Time      `json:"grantedAt" bson:"grantedAt"`
}

func (m *Member) LowerCase() {
	m.Address = m.Address.ToLower()
	m.GrantedBy = m.GrantedBy.ToLower()
}

type MemberId struct {
	Role    Role           `json:"role" bson:"role"`
	Address domain.Address `json:"address" bson:"address"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id MemberId) (*Member, error)
	FindAll(ctx ctx.Ctx, role Role) ([]*Member, error)
	Upsert(ctx ctx.Ctx, member *Member) error
	Remove(ctx ctx.Ctx, id MemberId) error
}

type UseCase interface {
	HasRole(ctx ctx.Ctx, role Role, address domain.Address) (bool, error)
	// IsAdminOrLister reports whether the address may create listings.
	IsAdminOrLister(ctx ctx.Ctx, address domain.Address) (bool, error)
	Grant(ctx ctx.Ctx, caller domain.Address, role Role, address domain.Address) error
	Revoke(ctx ctx.Ctx, caller domain.Address, role Role, address domain.Address) error
	Members(ctx ctx.Ctx, role Role) ([]*Member, error)
}
