// Package sqlconfig holds the table names and driver error handling shared by the
// entity storage packages.
package sqlconfig

const (
	UsersTable        = "users"
	BusinessesTable   = "businesses"
	MembersTable      = "members"
	CashbooksTable    = "cashbooks"
	CategoriesTable   = "categories"
	PartiesTable      = "parties"
	PaymentModesTable = "payment_modes"
	TransactionsTable = "transactions"
)
