// Package idgen 生成全局唯一ID
package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	mu   sync.Mutex
)

// Setup 设置雪花算法节点编号（0-1023），多实例部署时需保证各实例不同
func Setup(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func current() *snowflake.Node {
	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		// 未显式初始化时使用 1 号节点
		node, _ = snowflake.NewNode(1)
	}
	return node
}

// NextID 生成下一个数字ID
func NextID() int64 {
	return current().Generate().Int64()
}

// NextIDString 生成下一个数字ID的字符串形式
func NextIDString() string {
	return current().Generate().String()
}

// WithPrefix 生成带前缀的ID，如 PAY_ITEM_1789123456789012480
func WithPrefix(prefix string) string {
	return prefix + NextIDString()
}
