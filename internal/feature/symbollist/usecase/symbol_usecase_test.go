package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_compare/internal/feature/symbollist/domain/entity"
	"stock_compare/internal/feature/symbollist/usecase"
)

// mockListingRepository はListingRepositoryインターフェースのモック実装です。
type mockListingRepository struct {
	ListSymbolsFunc func(ctx context.Context, exchange string) ([]entity.Symbol, error)
	calledExchange  string
	calls           int
}

// ListSymbols はモックのListSymbols関数を呼び出します。
func (m *mockListingRepository) ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	m.calls++
	m.calledExchange = exchange
	if m.ListSymbolsFunc != nil {
		return m.ListSymbolsFunc(ctx, exchange)
	}
	return nil, nil
}

// TestNewSymbolUsecase はNewSymbolUsecaseコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockListingRepository{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

// TestSymbolUsecase_ListSymbols はListSymbolsメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolUsecase_ListSymbols(t *testing.T) {
	t.Parallel()

	nasdaq := []entity.Symbol{
		{Code: "AAPL", Name: "Apple Inc", Exchange: "NASDAQ", AssetType: "Stock"},
		{Code: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", AssetType: "Stock"},
	}

	tests := []struct {
		name             string
		exchange         string
		mockListSymbols  func(ctx context.Context, exchange string) ([]entity.Symbol, error)
		expectedExchange string
		expectedSymbols  []entity.Symbol
		expectedCalls    int
		wantErr          error
		errMsg           string
	}{
		{
			name:     "success: returns symbols for the exchange",
			exchange: "NASDAQ",
			mockListSymbols: func(ctx context.Context, exchange string) ([]entity.Symbol, error) {
				return nasdaq, nil
			},
			expectedExchange: "NASDAQ",
			expectedSymbols:  nasdaq,
			expectedCalls:    1,
		},
		{
			name:     "success: empty exchange uses NASDAQ",
			exchange: "",
			mockListSymbols: func(ctx context.Context, exchange string) ([]entity.Symbol, error) {
				return nasdaq, nil
			},
			expectedExchange: "NASDAQ",
			expectedSymbols:  nasdaq,
			expectedCalls:    1,
		},
		{
			name:     "success: exchange is trimmed and uppercased",
			exchange: "  nyse arca ",
			mockListSymbols: func(ctx context.Context, exchange string) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedExchange: "NYSE ARCA",
			expectedSymbols:  []entity.Symbol{},
			expectedCalls:    1,
		},
		{
			name:          "failure: malformed exchange is rejected before the repository",
			exchange:      "NYSE;DROP",
			wantErr:       usecase.ErrInvalidExchange,
			expectedCalls: 0,
		},
		{
			name:     "failure: repository returns error",
			exchange: "NYSE",
			mockListSymbols: func(ctx context.Context, exchange string) ([]entity.Symbol, error) {
				return nil, errors.New("listing unavailable")
			},
			expectedExchange: "NYSE",
			expectedCalls:    1,
			errMsg:           "listing unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := &mockListingRepository{ListSymbolsFunc: tt.mockListSymbols}
			uc := usecase.NewSymbolUsecase(mockRepo)

			symbols, err := uc.ListSymbols(context.Background(), tt.exchange)

			assert.Equal(t, tt.expectedCalls, mockRepo.calls)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, symbols)
			case tt.errMsg != "":
				assert.EqualError(t, err, tt.errMsg)
				assert.Nil(t, symbols)
				assert.Equal(t, tt.expectedExchange, mockRepo.calledExchange)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSymbols, symbols)
				assert.Equal(t, tt.expectedExchange, mockRepo.calledExchange)
			}
		})
	}
}

// TestSymbolUsecase_ListSymbols_ContextCancellation はコンテキストがキャンセルされた場合にエラーが返されることを検証します。
func TestSymbolUsecase_ListSymbols_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel context immediately

	mockRepo := &mockListingRepository{
		ListSymbolsFunc: func(ctx context.Context, exchange string) ([]entity.Symbol, error) {
			return nil, ctx.Err()
		},
	}
	uc := usecase.NewSymbolUsecase(mockRepo)

	symbols, err := uc.ListSymbols(ctx, "NASDAQ")

	assert.Error(t, err)
	assert.Nil(t, symbols)
	assert.ErrorIs(t, err, context.Canceled)
}
