package handler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ActionLocks chặn gửi trùng cùng một thao tác trên cùng một thực thể
// khi thao tác trước chưa xong. Key ghép id + "-" + tên thao tác nên hai
// thao tác khác nhau trên cùng bàn không cản nhau. Đây là khóa mềm mức
// UI — backend vẫn phải tự chống mutation xung đột.
type ActionLocks struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewActionLocks(addr string) *ActionLocks {
	return &ActionLocks{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 30 * time.Second,
	}
}

// Acquire trả về hàm release và cờ thành công. Redis lỗi thì không chặn
// thao tác, chỉ log.
func (l *ActionLocks) Acquire(ctx context.Context, entityId, action string) (func(), bool) {
	key := "action-lock:" + entityId + "-" + action
	token := uuid.New().String()

	set, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		log.Printf("Lỗi redis khi khóa thao tác %s: %v", key, err)
		return func() {}, true
	}
	if !set {
		return nil, false
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// chỉ xóa khi còn đúng token của mình, tránh xóa khóa của request sau
		val, err := l.rdb.Get(ctx, key).Result()
		if err == nil && val == token {
			l.rdb.Del(ctx, key)
		}
	}
	return release, true
}
