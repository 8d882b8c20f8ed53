package asset

import (
	"time"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/domain"
)

type Token struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner           domain.Address `json:"owner" bson:"owner"`
	TokenUri        string         `json:"tokenUri" bson:"tokenUri"`
	MintedAt        time.Time      `json:"mintedAt" bson:"mintedAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (t *Token) LowerCase() {
	t.ContractAddress = t.ContractAddress.ToLower()
	t.Owner = t.Owner.ToLower()
}

type TokenId struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type TokenPatchable struct {
	Owner     *domain.Address `json:"owner" bson:"owner,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Approval is a single-token operator grant. Clearing happens on transfer.
type Approval struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Operator        domain.Address `json:"operator" bson:"operator"`
}

// OperatorApproval is an approval-for-all grant from owner to operator.
type OperatorApproval struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	Owner           domain.Address `json:"owner" bson:"owner"`
	Operator        domain.Address `json:"operator" bson:"operator"`
	Approved        bool           `json:"approved" bson:"approved"`
}

// ApprovedMarket records a marketplace address that tokens may be approved to.
type ApprovedMarket struct {
	Address   domain.Address `json:"address" bson:"address"`
	Approved  bool           `json:"approved" bson:"approved"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// LazyMintBatch reserves a tokenId range with a shared base uri. Tokens
// in the range exist once minted out of the batch.
type LazyMintBatch struct {
	BatchId      int64          `json:"batchId" bson:"batchId"`
	BaseUri      string         `json:"baseUri" bson:"baseUri"`
	StartTokenId int64          `json:"startTokenId" bson:"startTokenId"`
	Amount       int64          `json:"amount" bson:"amount"`
	CreatedBy    domain.Address `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}

type TokenRepo interface {
	FindOne(ctx ctx.Ctx, id TokenId) (*Token, error)
	FindAllByOwner(ctx ctx.Ctx, owner domain.Address) ([]*Token, error)
	Create(ctx ctx.Ctx, token *Token) error
	Update(ctx ctx.Ctx, id TokenId, patchable TokenPatchable) error
	Count(ctx ctx.Ctx) (int, error)
}

type ApprovalRepo interface {
	FindTokenApproval(ctx ctx.Ctx, id TokenId) (*Approval, error)
	UpsertTokenApproval(ctx ctx.Ctx, approval *Approval) error
	RemoveTokenApproval(ctx ctx.Ctx, id TokenId) error
	FindOperatorApproval(ctx ctx.Ctx, contract, owner, operator domain.Address) (*OperatorApproval, error)
	UpsertOperatorApproval(ctx ctx.Ctx, approval *OperatorApproval) error
}

type ApprovedMarketRepo interface {
	FindOne(ctx ctx.Ctx, address domain.Address) (*ApprovedMarket, error)
	Upsert(ctx ctx.Ctx, market *ApprovedMarket) error
	FindAll(ctx ctx.Ctx) ([]*ApprovedMarket, error)
}

type LazyMintRepo interface {
	Insert(ctx ctx.Ctx, batch *LazyMintBatch) error
	FindBatchForToken(ctx ctx.Ctx, tokenId int64) (*LazyMintBatch, error)
	// NextTokenIdToMint returns the first tokenId not yet covered by any batch.
	NextTokenIdToMint(ctx ctx.Ctx) (int64, error)
	ConsumeNextTokenIdToClaim(ctx ctx.Ctx, quantity int64) (int64, error)
	NextTokenIdToClaim(ctx ctx.Ctx) (int64, error)
}

type UseCase interface {
	OwnerOf(ctx ctx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	GetToken(ctx ctx.Ctx, tokenId domain.TokenId) (*Token, error)
	TokensOf(ctx ctx.Ctx, owner domain.Address) ([]*Token, error)

	LazyMint(ctx ctx.Ctx, caller domain.Address, amount int64, baseUri string) (*LazyMintBatch, error)
	// MintTo mints quantity lazy-minted tokens to receiver, returning the
	// first minted tokenId.
	MintTo(ctx ctx.Ctx, receiver domain.Address, quantity int64) (int64, error)

	// Transfer moves a token. Operator must be the owner, the token's
	// approved operator, or an operator approved for all of owner's tokens.
	Transfer(ctx ctx.Ctx, operator, from, to domain.Address, tokenId domain.TokenId) error

	// Approve grants a single-token approval. Operator must be an
	// approved marketplace.
	Approve(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId, operator domain.Address) error
	// SetApprovalForAll grants or revokes operator over all caller tokens.
	// Granting requires operator to be an approved marketplace.
	SetApprovalForAll(ctx ctx.Ctx, caller, operator domain.Address, approved bool) error

	SetApprovedMarketplace(ctx ctx.Ctx, caller, market domain.Address, approved bool) error
	IsApprovedMarketplace(ctx ctx.Ctx, market domain.Address) (bool, error)
}
