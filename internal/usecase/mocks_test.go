package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
	"github.com/karimovsardorbek/online-market/internal/usecase"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByVerificationCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) SetVerificationCode(ctx context.Context, userID int64, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// Mock: RefreshTokenRepository
// =====================

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *MockRefreshTokenRepository) MarkUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	args := m.Called(ctx, tokenID, usedAt)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByID(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// =====================
// Mock: ItemRepository
// =====================

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) List(ctx context.Context, q repo.ItemListQuery) ([]model.Item, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.Item)
	return item, args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.Item)
	return created, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Mock: CartRepository / CartLineRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockCartLineRepository struct {
	mock.Mock
}

func (m *MockCartLineRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, cartID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *MockCartLineRepository) ListByCartIDForUpdate(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, cartID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *MockCartLineRepository) AddQuantity(ctx context.Context, cartID int64, itemID int64, addQty int64) error {
	args := m.Called(ctx, cartID, itemID, addQty)
	return args.Error(0)
}

func (m *MockCartLineRepository) DeleteByCartAndItem(ctx context.Context, cartID int64, itemID int64) error {
	args := m.Called(ctx, cartID, itemID)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository / OrderLineRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomerID(ctx context.Context, customerID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, customerID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockOrderLineRepository struct {
	mock.Mock
}

func (m *MockOrderLineRepository) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *MockOrderLineRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	args := m.Called(ctx, orderID)
	lines, _ := args.Get(0).([]model.OrderLine)
	return lines, args.Error(1)
}

// =====================
// Mock: FavoriteRepository
// =====================

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, fav model.Favorite) (model.Favorite, error) {
	args := m.Called(ctx, fav)
	created, _ := args.Get(0).(model.Favorite)
	return created, args.Error(1)
}

func (m *MockFavoriteRepository) DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]model.Favorite)
	return favs, args.Error(1)
}

// =====================
// Mock: ReviewRepository
// =====================

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	args := m.Called(ctx, review)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, reviewID int64) (model.Review, error) {
	args := m.Called(ctx, reviewID)
	r, _ := args.Get(0).(model.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) ListByItemID(ctx context.Context, itemID int64) ([]model.Review, error) {
	args := m.Called(ctx, itemID)
	revs, _ := args.Get(0).([]model.Review)
	return revs, args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// =====================
// Mock: SupportRequestRepository
// =====================

type MockSupportRequestRepository struct {
	mock.Mock
}

func (m *MockSupportRequestRepository) Create(ctx context.Context, sr model.SupportRequest) (model.SupportRequest, error) {
	args := m.Called(ctx, sr)
	created, _ := args.Get(0).(model.SupportRequest)
	return created, args.Error(1)
}

func (m *MockSupportRequestRepository) FindByID(ctx context.Context, id int64) (model.SupportRequest, error) {
	args := m.Called(ctx, id)
	sr, _ := args.Get(0).(model.SupportRequest)
	return sr, args.Error(1)
}

func (m *MockSupportRequestRepository) ListByUserID(ctx context.Context, userID int64) ([]model.SupportRequest, error) {
	args := m.Called(ctx, userID)
	srs, _ := args.Get(0).([]model.SupportRequest)
	return srs, args.Error(1)
}

func (m *MockSupportRequestRepository) Update(ctx context.Context, sr model.SupportRequest) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}

func (m *MockSupportRequestRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Mock: ProfileRepository
// =====================

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, p model.Profile) (model.Profile, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Profile)
	return created, args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, profileID int64) (model.Profile, error) {
	args := m.Called(ctx, profileID)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Profile)
	return ps, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, p model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// =====================
// Fake: TxRepos / TransactionManager
// =====================

// fnをそのまま実行するだけ。commit/rollbackは見ない。
type fakeTxRepos struct {
	orders     *MockOrderRepository
	orderLines *MockOrderLineRepository
	carts      *MockCartRepository
	cartLines  *MockCartLineRepository
	items      *MockItemRepository
}

func (f fakeTxRepos) Orders() repo.OrderRepository         { return f.orders }
func (f fakeTxRepos) OrderLines() repo.OrderLineRepository { return f.orderLines }
func (f fakeTxRepos) Carts() repo.CartRepository           { return f.carts }
func (f fakeTxRepos) CartLines() repo.CartLineRepository   { return f.cartLines }
func (f fakeTxRepos) Items() repo.ItemRepository           { return f.items }

type fakeTxManager struct {
	repos fakeTxRepos
}

func (f fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f.repos)
}

// =====================
// Mock: AuthValidator / VerificationSender
// =====================

type MockAuthValidator struct {
	mock.Mock
}

func (m *MockAuthValidator) ValidateRegister(ctx context.Context, email string, password string, fullName string) error {
	args := m.Called(ctx, email, password, fullName)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateVerify(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateResend(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// 配送を記録するだけのSender
type RecordingSender struct {
	mock.Mock
}

func (m *RecordingSender) SendVerificationCode(ctx context.Context, email string, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

// =====================
// Helper
// =====================

func assertHTTPStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, wantStatus, he.Status)
	}
}
