package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/somonplay/payment-service/internal/mocks"
	"github.com/somonplay/payment-service/internal/model"
	"github.com/somonplay/payment-service/internal/repository"
	"github.com/somonplay/payment-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type rewardMocks struct {
	orders        *mocks.OrderRepository
	users         *mocks.UserRepository
	grants        *mocks.RewardGrantRepository
	wallet        *mocks.WalletTransactionRepository
	notifications *mocks.NotificationRepository
	txManager     *mocks.TxManager
}

func newRewardMocks() *rewardMocks {
	return &rewardMocks{
		orders:        &mocks.OrderRepository{},
		users:         &mocks.UserRepository{},
		grants:        &mocks.RewardGrantRepository{},
		wallet:        &mocks.WalletTransactionRepository{},
		notifications: &mocks.NotificationRepository{},
		txManager:     &mocks.TxManager{},
	}
}

func (m *rewardMocks) build() service.FirstRechargeService {
	tiers := map[int64]int64{10: 2, 20: 5, 50: 15, 100: 35}
	return service.NewFirstRechargeService(m.orders, m.users, m.grants, m.wallet,
		m.notifications, m.txManager, tiers, zap.NewNop())
}

func TestFirstRecharge_Grant(t *testing.T) {
	ctx := context.Background()

	cmd := service.GrantFirstRechargeCommand{
		UserID:  "user-1",
		OrderID: "order-123",
		Amount:  decimal.NewFromInt(100),
	}

	t.Run("Grants tier reward on first recharge", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)
		m.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		m.grants.On("Create", ctx, mock.MatchedBy(func(g *model.RewardGrant) bool {
			return g.UserID == cmd.UserID && g.RechargeAmount == 100 && g.RewardAmount == 35
		})).Return(nil)
		m.users.On("IncrementBalance", ctx, cmd.UserID, int64(35)).Return(nil)
		m.wallet.On("Create", ctx, mock.MatchedBy(func(tx *model.WalletTransaction) bool {
			return tx.Type == model.WalletTxTypeFirstRechargeReward && tx.Amount == 35 &&
				*tx.RelatedOrderID == cmd.OrderID
		})).Return(nil)
		m.notifications.On("Create", ctx, mock.Anything).Return(nil)

		result, err := m.build().Grant(ctx, cmd)

		assert.NoError(t, err)
		assert.True(t, result.Granted)
		assert.Equal(t, int64(35), result.RewardAmount)
		m.grants.AssertExpectations(t)
	})

	t.Run("Prior completed recharge is rejected", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(true, nil)

		result, err := m.build().Grant(ctx, cmd)

		assert.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, service.RejectReasonNotFirstRecharge, result.Reason)
		m.grants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Amount without a tier is rejected", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)

		result, err := m.build().Grant(ctx, service.GrantFirstRechargeCommand{
			UserID:  cmd.UserID,
			OrderID: cmd.OrderID,
			Amount:  decimal.NewFromInt(75),
		})

		assert.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, service.RejectReasonNoTier, result.Reason)
	})

	t.Run("Fractional amount is rejected", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)

		result, err := m.build().Grant(ctx, service.GrantFirstRechargeCommand{
			UserID:  cmd.UserID,
			OrderID: cmd.OrderID,
			Amount:  decimal.NewFromFloat(99.99),
		})

		assert.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, service.RejectReasonNoTier, result.Reason)
	})

	t.Run("Duplicate grant resolves as already granted", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)
		m.txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		m.grants.On("Create", ctx, mock.Anything).Return(repository.ErrRewardGrantExists)

		result, err := m.build().Grant(ctx, cmd)

		assert.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, service.RejectReasonAlreadyGranted, result.Reason)
	})

	t.Run("Storage failure surfaces as database error", func(t *testing.T) {
		m := newRewardMocks()
		dbErr := errors.New("connection reset")

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)
		m.txManager.On("WithTx", ctx, mock.Anything).Return(dbErr)

		result, err := m.build().Grant(ctx, cmd)

		assert.Error(t, err)
		assert.False(t, result.Granted)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, service.ErrCodeDatabase, serviceErr.Code)
	})

	t.Run("Concurrent grants collapse to a single reward", func(t *testing.T) {
		m := newRewardMocks()

		m.orders.On("HasCompletedRecharge", cmd.UserID, cmd.OrderID).Return(false, nil)
		m.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)

		// the unique (user, tier) index lets exactly one insert through
		m.grants.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		m.grants.On("Create", mock.Anything, mock.Anything).Return(repository.ErrRewardGrantExists)

		m.users.On("IncrementBalance", mock.Anything, cmd.UserID, int64(35)).Return(nil)
		m.wallet.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := m.build()

		const callers = 5

		var mu sync.Mutex
		granted := 0

		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := svc.Grant(ctx, cmd)
				assert.NoError(t, err)
				if result.Granted {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, granted)
		m.users.AssertNumberOfCalls(t, "IncrementBalance", 1)
	})
}
