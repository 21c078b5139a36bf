package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run multi-row mutations atomically without
// depending on a specific DB driver like GORM. Atomicity is visible in the
// signature: any function performing multi-row mutation receives a
// RepositoryFactory bound to one transaction.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory use the
	// same database transaction.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Addresses returns an AddressRepository bound to the current transaction.
	Addresses() AddressRepository

	// Categories returns a CategoryRepository bound to the current transaction.
	Categories() CategoryRepository

	// Attributes returns an AttributeRepository bound to the current transaction.
	Attributes() AttributeRepository

	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository
}
