package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"peci_admin_v1_202608/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 实时订阅中心。
// 每个(集合, 渠道)是一个主题；写操作成功后服务层 Publish，
// 订阅方收到的永远是该主题的"完整替换列表"，不是增量 diff。
// 投递是 last-wins：订阅方消费慢就丢中间快照，只保最新一份。

// ==================== 集合常量 ====================

const (
	CollectionSales     = "sales"
	CollectionFinancial = "financial"
	CollectionCreator   = "creator"
	CollectionShipment  = "shipment"
)

// IsValidCollection 校验集合名
func IsValidCollection(name string) bool {
	switch name {
	case CollectionSales, CollectionFinancial, CollectionCreator, CollectionShipment:
		return true
	}
	return false
}

// ==================== Hub ====================

// LoaderFunc 按渠道装载某集合的完整快照
type LoaderFunc func(ctx context.Context, platform model.Platform) (interface{}, error)

// Snapshot 一次推送的内容
type Snapshot struct {
	Collection string         `json:"collection"`
	Platform   model.Platform `json:"platform"`
	Records    interface{}    `json:"records"`
}

// Hub 订阅中心
type Hub struct {
	mu      sync.RWMutex
	loaders map[string]LoaderFunc
	subs    map[string]map[string]*Subscription // topic -> subID -> sub

	loadTimeout time.Duration
}

// NewHub 创建订阅中心
func NewHub() *Hub {
	return &Hub{
		loaders:     make(map[string]LoaderFunc),
		subs:        make(map[string]map[string]*Subscription),
		loadTimeout: 10 * time.Second,
	}
}

// RegisterLoader 注册某集合的快照装载器（启动时由 main 接线）
func (h *Hub) RegisterLoader(collection string, loader LoaderFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaders[collection] = loader
}

func topicKey(collection string, platform model.Platform) string {
	return collection + ":" + string(platform)
}

// ==================== 订阅 ====================

// Subscription 订阅句柄
// 用完必须 Unsubscribe，切渠道/关页面/出错都要走到
type Subscription struct {
	ID         string
	Collection string
	Platform   model.Platform

	// C 快照通道，容量 1，last-wins
	C chan Snapshot

	hub   *Hub
	topic string
	once  sync.Once
}

// Subscribe 建立订阅并立即投递一份当前快照
func (h *Hub) Subscribe(ctx context.Context, collection string, platform model.Platform) (*Subscription, error) {
	if !IsValidCollection(collection) {
		return nil, fmt.Errorf("unknown collection: %s", collection)
	}
	if !platform.IsValid() {
		return nil, fmt.Errorf("invalid platform: %s", platform)
	}

	h.mu.RLock()
	loader, ok := h.loaders[collection]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no loader registered for collection: %s", collection)
	}

	sub := &Subscription{
		ID:         uuid.NewString(),
		Collection: collection,
		Platform:   platform,
		C:          make(chan Snapshot, 1),
		hub:        h,
		topic:      topicKey(collection, platform),
	}

	h.mu.Lock()
	if h.subs[sub.topic] == nil {
		h.subs[sub.topic] = make(map[string]*Subscription)
	}
	h.subs[sub.topic][sub.ID] = sub
	h.mu.Unlock()

	// 首份快照：订阅即有数据，前端不用等第一次变更
	records, err := loader(ctx, platform)
	if err != nil {
		sub.Unsubscribe()
		return nil, err
	}
	sub.deliver(Snapshot{Collection: collection, Platform: platform, Records: records})

	return sub, nil
}

// Unsubscribe 注销订阅并关闭通道，可重复调用
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if m := s.hub.subs[s.topic]; m != nil {
			delete(m, s.ID)
			if len(m) == 0 {
				delete(s.hub.subs, s.topic)
			}
		}
		s.hub.mu.Unlock()
		close(s.C)
	})
}

// deliver last-wins 投递：通道满了就挤掉旧快照
func (s *Subscription) deliver(snap Snapshot) {
	defer func() {
		// Unsubscribe 和 Publish 并发时通道可能已关闭，丢掉这份即可
		_ = recover()
	}()

	select {
	case s.C <- snap:
	default:
		select {
		case <-s.C:
		default:
		}
		select {
		case s.C <- snap:
		default:
		}
	}
}

// ==================== 发布 ====================

// Publish 某集合某渠道的数据变了，给所有订阅方推全量快照
// 装载失败只打日志，订阅方保持上一份数据（表现为"一直在加载/空"，不报独立错误态）
func (h *Hub) Publish(collection string, platform model.Platform) {
	h.mu.RLock()
	loader := h.loaders[collection]
	subs := make([]*Subscription, 0, 4)
	for _, sub := range h.subs[topicKey(collection, platform)] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	if loader == nil || len(subs) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.loadTimeout)
	defer cancel()

	records, err := loader(ctx, platform)
	if err != nil {
		logrus.Warnf("[Watch] 装载 %s/%s 快照失败: %v", collection, platform, err)
		return
	}

	snap := Snapshot{Collection: collection, Platform: platform, Records: records}
	for _, sub := range subs {
		sub.deliver(snap)
	}
}

// SubscriberCount 某主题当前订阅数（测试/诊断用）
func (h *Hub) SubscriberCount(collection string, platform model.Platform) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topicKey(collection, platform)])
}
