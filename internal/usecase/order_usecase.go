package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文番号の採番
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock

	strategy     config.OrderStrategy
	maxRetries   int
	retryBackoff time.Duration
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, cfg config.Config) *OrderUsecase {
	return &OrderUsecase{
		tx:           tx,
		idGen:        idGen,
		clock:        clock,
		strategy:     cfg.OrderStrategy,
		maxRetries:   cfg.OrderMaxRetries,
		retryBackoff: cfg.OrderRetryBackoff,
	}
}

// Place は設定された方式で注文を確定する
func (u *OrderUsecase) Place(ctx context.Context, memberID, itemID, count int64) (int64, error) {
	if u.strategy == config.StrategyOptimistic {
		return u.PlaceOrderOptimistic(ctx, memberID, itemID, count)
	}
	return u.PlaceOrder(ctx, memberID, itemID, count)
}

// PlaceOrder は排他ロック方式の注文確定。
// 商品行を FOR UPDATE で読み、同じ商品への同時注文を直列化する。
// 途中で失敗したらTxごとロールバックされ、在庫も注文も残らない
func (u *OrderUsecase) PlaceOrder(ctx context.Context, memberID, itemID, count int64) (int64, error) {
	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//会員は読むだけなのでロック不要
		member, err := r.Members().FindByID(ctx, memberID)
		if err != nil {
			return err
		}

		//商品は排他ロック付きで読む（取得待ちはタイムアウトあり）
		item, err := r.Items().FindByID(ctx, itemID, repo.LockExclusive)
		if err != nil {
			return err
		}

		//配送先スナップショットと明細（現在価格を取り込む）
		delivery := model.NewDelivery(member)
		orderItem := model.NewOrderItem(item, item.Price, count)

		if err := item.RemoveStock(count); err != nil {
			return err
		}
		if err := r.Items().Save(ctx, &item, repo.LockExclusive); err != nil {
			return err
		}

		order := model.NewOrder(u.idGen.NewID(), member, delivery, u.clock.Now(), orderItem)
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// PlaceOrderOptimistic は楽観ロック方式の注文確定。
// 商品のバージョン照合でコミット時に競合を検出し、上限回数まで再試行する。
// 再試行のたびに商品を読み直し、失敗した試行の状態は持ち越さない
func (u *OrderUsecase) PlaceOrderOptimistic(ctx context.Context, memberID, itemID, count int64) (int64, error) {
	//会員は一度だけ読めばよい（住所は読むだけ）
	var member model.Member
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		m, err := r.Members().FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		member = m
		return nil
	})
	if err != nil {
		return 0, err
	}

	delivery := model.NewDelivery(member)

	var orderID int64
	for attempt := 0; ; {
		err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			item, err := r.Items().FindByID(ctx, itemID, repo.LockOptimistic)
			if err != nil {
				return err
			}

			orderItem := model.NewOrderItem(item, item.Price, count)

			if err := item.RemoveStock(count); err != nil {
				return err
			}
			if err := r.Items().Save(ctx, &item, repo.LockOptimistic); err != nil {
				return err
			}

			order := model.NewOrder(u.idGen.NewID(), member, delivery, u.clock.Now(), orderItem)
			id, err := r.Orders().Create(ctx, order)
			if err != nil {
				return err
			}
			orderID = id
			return nil
		})
		if err == nil {
			return orderID, nil
		}
		if !errors.Is(err, repo.ErrOptimisticLock) {
			return 0, err
		}

		attempt++
		if attempt >= u.maxRetries {
			//再試行上限。競合エラーをそのまま呼び出し側へ返す
			return 0, err
		}

		//ロックもTxも持たずに待ってから読み直す
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(u.retryBackoff):
		}
	}
}

// CancelOrder は注文をキャンセルし、明細の数量どおりに在庫を戻す
func (u *OrderUsecase) CancelOrder(ctx context.Context, orderID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		//CANCELLEDは終端。二重キャンセルはここで弾く
		if err := order.Cancel(); err != nil {
			return err
		}

		//注文時に減らした数量をそのまま戻す（現在のカタログ値から再計算しない）
		for _, it := range order.Items {
			if err := r.Items().RestoreStock(ctx, it.ItemID, it.Quantity); err != nil {
				return err
			}
		}

		return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
	})
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// SearchOrders は会員名・ステータスで注文を検索する
func (u *OrderUsecase) SearchOrders(ctx context.Context, s repo.OrderSearch) ([]model.Order, int64, error) {
	var (
		orders []model.Order
		total  int64
	)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		os, n, err := r.Orders().Search(ctx, s)
		if err != nil {
			return err
		}
		orders, total = os, n
		return nil
	})
	if err != nil {
		return []model.Order{}, 0, err
	}
	return orders, total, nil
}
