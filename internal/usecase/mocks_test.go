package usecase_test

import (
	"context"
	"time"

	"brackk/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, userID string, fields map[string]any) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, productID string, fields map[string]any) error {
	args := m.Called(ctx, productID, fields)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// =====================
// Mock: CartItemRepository
// =====================

type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *MockCartItemRepository) Create(ctx context.Context, item model.CartItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockCartItemRepository) UpdateQuantity(ctx context.Context, cartItemID string, quantity int64) error {
	args := m.Called(ctx, cartItemID, quantity)
	return args.Error(0)
}

func (m *MockCartItemRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o model.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

// =====================
// Mock: CreditAccountRepository
// =====================

type MockCreditAccountRepository struct {
	mock.Mock
}

func (m *MockCreditAccountRepository) FindByUserID(ctx context.Context, userID string) (model.CreditAccount, error) {
	args := m.Called(ctx, userID)
	acct, _ := args.Get(0).(model.CreditAccount)
	return acct, args.Error(1)
}

func (m *MockCreditAccountRepository) CreateIfAbsent(ctx context.Context, acct model.CreditAccount) (model.CreditAccount, error) {
	args := m.Called(ctx, acct)
	out, _ := args.Get(0).(model.CreditAccount)
	return out, args.Error(1)
}

func (m *MockCreditAccountRepository) AddUsage(ctx context.Context, userID string, amount float64) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditAccountRepository) SetFields(ctx context.Context, userID string, fields map[string]any) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

// =====================
// Mock: CreditIncreaseRequestRepository
// =====================

type MockCreditIncreaseRequestRepository struct {
	mock.Mock
}

func (m *MockCreditIncreaseRequestRepository) Create(ctx context.Context, req model.CreditIncreaseRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// =====================
// Mock: PlanRepository
// =====================

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, p model.SubscriptionPlan) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, limit int) ([]model.SubscriptionPlan, error) {
	args := m.Called(ctx, limit)
	ps, _ := args.Get(0).([]model.SubscriptionPlan)
	return ps, args.Error(1)
}

// =====================
// Helper: issuer / clock / hasher
// =====================

// テスト用の固定発行器
type staticIssuer struct {
	token string
	err   error
}

func (i *staticIssuer) Issue(subjectID string, now time.Time) (string, time.Time, error) {
	if i.err != nil {
		return "", time.Time{}, i.err
	}
	return i.token, now.Add(time.Hour), nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// 何が入ってきても印を付けて返すだけのハッシュ（呼ばれたことの検証用）
type markerHasher struct{}

func (h *markerHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

type markerVerifier struct{}

func (v *markerVerifier) Verify(plain string, hashed string) bool {
	return hashed == "hashed:"+plain
}
