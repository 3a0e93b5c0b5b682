package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Members() MemberRepository
	Items() ItemRepository
	Orders() OrderRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがエラーを返せばロールバック、nilならコミット
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
