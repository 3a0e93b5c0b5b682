package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 楽観ロックのバージョン不一致（コミット時に検出）
	ErrOptimisticLock = errors.New("optimistic lock conflict")

	// 排他ロックが時間内に取れなかった
	ErrLockTimeout = errors.New("lock acquisition timed out")
)
