package usecase

import (
	"testing"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/role"
	mRole "github.com/nftreasury/goapi/domain/role/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	bootstrapAdmin = domain.Address("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	lister         = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	stranger       = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
)

type roleSuite struct {
	suite.Suite

	roleRepo *mRole.Repo

	im *impl
}

func TestRoleSuite(t *testing.T) {
	suite.Run(t, new(roleSuite))
}

func (s *roleSuite) SetupTest() {
	s.roleRepo = &mRole.Repo{}

	s.im = New(&RoleUseCaseCfg{
		RoleRepo: s.roleRepo,
		Admins:   []domain.Address{bootstrapAdmin},
	}).(*impl)
}

func (s *roleSuite) TearDownTest() {
	s.roleRepo.AssertExpectations(s.T())
}

func (s *roleSuite) TestBootstrapAdminNeedsNoRecord() {
	c := ctx.Background()

	// checked case-insensitively and without touching the repo
	ok, err := s.im.HasRole(c, role.RoleAdmin, bootstrapAdmin.ToLower())
	s.NoError(err)
	s.True(ok)
}

func (s *roleSuite) TestHasRoleFromRepo() {
	c := ctx.Background()

	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleLister, Address: lister}).
		Return(&role.Member{Role: role.RoleLister, Address: lister}, nil).Once()

	ok, err := s.im.HasRole(c, role.RoleLister, lister)
	s.NoError(err)
	s.True(ok)
}

func (s *roleSuite) TestHasRoleMissing() {
	c := ctx.Background()

	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleLister, Address: stranger}).
		Return(nil, domain.ErrNotFound).Once()

	ok, err := s.im.HasRole(c, role.RoleLister, stranger)
	s.NoError(err)
	s.False(ok)
}

func (s *roleSuite) TestIsAdminOrLister() {
	c := ctx.Background()

	// bootstrap admin short-circuits
	ok, err := s.im.IsAdminOrLister(c, bootstrapAdmin)
	s.NoError(err)
	s.True(ok)

	// lister role satisfies it
	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleAdmin, Address: lister}).
		Return(nil, domain.ErrNotFound).Once()
	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleLister, Address: lister}).
		Return(&role.Member{Role: role.RoleLister, Address: lister}, nil).Once()
	ok, err = s.im.IsAdminOrLister(c, lister)
	s.NoError(err)
	s.True(ok)

	// neither role
	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleAdmin, Address: stranger}).
		Return(nil, domain.ErrNotFound).Once()
	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleLister, Address: stranger}).
		Return(nil, domain.ErrNotFound).Once()
	ok, err = s.im.IsAdminOrLister(c, stranger)
	s.NoError(err)
	s.False(ok)
}

func (s *roleSuite) TestGrant() {
	c := ctx.Background()

	s.roleRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(m *role.Member) bool {
		return m.Role == role.RoleLister && m.Address == lister && m.GrantedBy == bootstrapAdmin
	})).Return(nil).Once()

	s.NoError(s.im.Grant(c, bootstrapAdmin, role.RoleLister, lister))
}

func (s *roleSuite) TestGrantRequiresAdmin() {
	c := ctx.Background()

	s.roleRepo.On("FindOne", mock.Anything, role.MemberId{Role: role.RoleAdmin, Address: stranger}).
		Return(nil, domain.ErrNotFound).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Grant(c, stranger, role.RoleLister, lister))
}

func (s *roleSuite) TestRevokeToleratesMissing() {
	c := ctx.Background()

	s.roleRepo.On("Remove", mock.Anything, role.MemberId{Role: role.RoleLister, Address: lister}).
		Return(domain.ErrNotFound).Once()

	s.NoError(s.im.Revoke(c, bootstrapAdmin, role.RoleLister, lister))
}
