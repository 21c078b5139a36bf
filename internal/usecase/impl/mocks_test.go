package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks over the domain interfaces used by the services.

// --- Transaction manager ---

// fakeTxManager runs the unit of work immediately against a factory of mocks.
// An error configured in failWith is returned without invoking the function,
// simulating a transaction that cannot begin.
type fakeTxManager struct {
	factory  *fakeRepoFactory
	failWith error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.failWith != nil {
		return m.failWith
	}

	return fn(m.factory)
}

type fakeRepoFactory struct {
	users      *mockUserRepo
	addresses  *mockAddressRepo
	categories *mockCategoryRepo
	attributes *mockAttributeRepo
	products   *mockProductRepo
	orders     *mockOrderRepo
}

func (f *fakeRepoFactory) Users() repository.UserRepository           { return f.users }
func (f *fakeRepoFactory) Addresses() repository.AddressRepository   { return f.addresses }
func (f *fakeRepoFactory) Categories() repository.CategoryRepository { return f.categories }
func (f *fakeRepoFactory) Attributes() repository.AttributeRepository {
	return f.attributes
}
func (f *fakeRepoFactory) Products() repository.ProductRepository { return f.products }
func (f *fakeRepoFactory) Orders() repository.OrderRepository     { return f.orders }

// --- User repository ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Address repository ---

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	if address, ok := args.Get(0).(*entity.Address); ok {
		return address, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	if addresses, ok := args.Get(0).([]*entity.Address); ok {
		return addresses, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepo) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, userID)
	if address, ok := args.Get(0).(*entity.Address); ok {
		return address, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepo) ClearDefault(ctx context.Context, userID uuid.UUID, except uuid.UUID) error {
	return m.Called(ctx, userID, except).Error(0)
}

func (m *mockAddressRepo) Update(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Category repository ---

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCategoryRepo) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Attribute repository ---

type mockAttributeRepo struct{ mock.Mock }

func (m *mockAttributeRepo) CreateAttribute(ctx context.Context, attribute *entity.Attribute) error {
	return m.Called(ctx, attribute).Error(0)
}

func (m *mockAttributeRepo) FindAttributeByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	args := m.Called(ctx, id)
	if attribute, ok := args.Get(0).(*entity.Attribute); ok {
		return attribute, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAttributeRepo) FindAttributeByName(ctx context.Context, name string) (*entity.Attribute, error) {
	args := m.Called(ctx, name)
	if attribute, ok := args.Get(0).(*entity.Attribute); ok {
		return attribute, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAttributeRepo) FindAllAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	args := m.Called(ctx)
	if attributes, ok := args.Get(0).([]*entity.Attribute); ok {
		return attributes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAttributeRepo) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAttributeRepo) CreateValue(ctx context.Context, value *entity.AttributeValue) error {
	return m.Called(ctx, value).Error(0)
}

func (m *mockAttributeRepo) FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error) {
	args := m.Called(ctx, id)
	if value, ok := args.Get(0).(*entity.AttributeValue); ok {
		return value, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAttributeRepo) FindValue(ctx context.Context, attributeID uuid.UUID, value string) (*entity.AttributeValue, error) {
	args := m.Called(ctx, attributeID, value)
	if attributeValue, ok := args.Get(0).(*entity.AttributeValue); ok {
		return attributeValue, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAttributeRepo) DeleteValue(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Product repository ---

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []*entity.Variant) error {
	return m.Called(ctx, productID, variants).Error(0)
}

func (m *mockProductRepo) ReplaceImages(ctx context.Context, productID uuid.UUID, images []*entity.Image) error {
	return m.Called(ctx, productID, images).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Variant, error) {
	args := m.Called(ctx, ids)
	if variants, ok := args.Get(0).([]*entity.Variant); ok {
		return variants, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error {
	return m.Called(ctx, variantID, quantity).Error(0)
}

func (m *mockProductRepo) IncrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error {
	return m.Called(ctx, variantID, quantity).Error(0)
}

// --- Order repository ---

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

// --- Domain services ---

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Session, error) {
	args := m.Called(tokenString)
	if session, ok := args.Get(0).(*service.Session); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(data *service.ReceiptData) ([]byte, error) {
	args := m.Called(data)
	if document, ok := args.Get(0).([]byte); ok {
		return document, args.Error(1)
	}

	return nil, args.Error(1)
}
