package domain

// Table is a mongo collection name
type Table string

const (
	TableListings          Table = "listings"
	TableSaleReceipts      Table = "sale_receipts"
	TableCounters          Table = "counters"
	TableClaimConditions   Table = "claim_conditions"
	TableWalletClaims      Table = "wallet_claims"
	TableRoleMembers       Table = "role_members"
	TableMarketplaceFlags  Table = "marketplace_flags"
	TableTreasuryTokens    Table = "treasury_tokens"
	TableTokenApprovals    Table = "token_approvals"
	TableOperatorApprovals Table = "operator_approvals"
	TableLazyMintBatches   Table = "lazy_mint_batches"
	TableApprovedMarkets   Table = "approved_marketplaces"
	TablePaymentRecords    Table = "payment_records"
	TablePayTokens         Table = "pay_tokens"
	TableHealthCheck       Table = "healthcheck"
)
