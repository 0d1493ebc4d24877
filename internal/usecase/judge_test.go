package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports/mocks"
	"github.com/cartverify/prepay-gateway/internal/usecase"
	"github.com/golang/mock/gomock"
)

func localItem() *domain.CartItem {
	return &domain.CartItem{
		Code:     "sku-1",
		Name:     "Blue Shirt",
		Price:    domain.Float(10),
		Quantity: domain.Float(1),
	}
}

func TestLocalJudge_BothChecksPass(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockCanonicalProvider(ctrl)
	validator := mocks.NewMockCartValidator(ctrl)
	item := localItem()
	canonical := []domain.CanonicalItem{{Code: "sku-1", Price: domain.Float(10), Inventory: domain.Float(5)}}

	gomock.InOrder(
		provider.EXPECT().FetchCanonicalItems(gomock.Any(), []string{"sku-1"}).Return(canonical, nil),
		validator.EXPECT().ValidPrice(item, gomock.Any()).Return(true),
		validator.EXPECT().ValidInventory(item, gomock.Any()).Return(true),
	)

	j := usecase.NewLocalJudge(provider, validator, noopLogger{})
	ok, err := j.Judge(context.Background(), item)
	if err != nil || !ok {
		t.Fatalf("want (true, nil), got (%v, %v)", ok, err)
	}
}

func TestLocalJudge_PriceFailureShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockCanonicalProvider(ctrl)
	validator := mocks.NewMockCartValidator(ctrl)
	item := localItem()

	provider.EXPECT().FetchCanonicalItems(gomock.Any(), []string{"sku-1"}).
		Return([]domain.CanonicalItem{{Code: "sku-1"}}, nil)
	validator.EXPECT().ValidPrice(item, gomock.Any()).Return(false)
	validator.EXPECT().ValidInventory(gomock.Any(), gomock.Any()).Times(0)

	j := usecase.NewLocalJudge(provider, validator, noopLogger{})
	ok, err := j.Judge(context.Background(), item)
	if err != nil || ok {
		t.Fatalf("want (false, nil), got (%v, %v)", ok, err)
	}
}

// Код без эталонной записи проходит проверку: она применяется только
// к товарам, известным хранилищу.
func TestLocalJudge_UnknownCodePasses(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockCanonicalProvider(ctrl)
	validator := mocks.NewMockCartValidator(ctrl)

	provider.EXPECT().FetchCanonicalItems(gomock.Any(), []string{"sku-1"}).
		Return(nil, nil)
	validator.EXPECT().ValidPrice(gomock.Any(), gomock.Any()).Times(0)

	j := usecase.NewLocalJudge(provider, validator, noopLogger{})
	ok, err := j.Judge(context.Background(), localItem())
	if err != nil || !ok {
		t.Fatalf("want (true, nil), got (%v, %v)", ok, err)
	}
}

func TestLocalJudge_FetchFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockCanonicalProvider(ctrl)
	validator := mocks.NewMockCartValidator(ctrl)

	provider.EXPECT().FetchCanonicalItems(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrProviderUnavailable)

	j := usecase.NewLocalJudge(provider, validator, noopLogger{})
	_, err := j.Judge(context.Background(), localItem())
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestRemoteDelegatedJudge_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := mocks.NewMockRemoteJudge(ctrl)
	item := localItem()

	remote.EXPECT().Ready().Return(nil)
	remote.EXPECT().VerifyItem(gomock.Any(), *item).Return(false, nil)

	j := usecase.NewRemoteDelegatedJudge(remote)
	if err := j.Ready(); err != nil {
		t.Fatalf("ready: %v", err)
	}
	ok, err := j.Judge(context.Background(), item)
	if err != nil || ok {
		t.Fatalf("want (false, nil), got (%v, %v)", ok, err)
	}
}
