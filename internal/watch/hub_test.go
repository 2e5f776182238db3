package watch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"peci_admin_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

// fakeStore 可变的内存数据源，当快照装载器用
type fakeStore struct {
	mu   sync.Mutex
	data map[model.Platform][]string
	err  error
}

func (f *fakeStore) load(_ context.Context, platform model.Platform) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.data[platform]...), nil
}

func (f *fakeStore) set(platform model.Platform, records ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[platform] = records
}

func newTestHub() (*Hub, *fakeStore) {
	hub := NewHub()
	store := &fakeStore{data: make(map[model.Platform][]string)}
	hub.RegisterLoader(CollectionSales, store.load)
	return hub, store
}

func mustReceive(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.C:
		if !ok {
			t.Fatal("通道已关闭")
		}
		return snap
	default:
		t.Fatal("没有收到快照")
	}
	return Snapshot{}
}

// ==================== 单元测试 ====================

// 订阅时立即有一份当前快照，不用等第一次变更
func TestHub_SubscribeDeliversInitialSnapshot(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "a", "b")

	sub, err := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	if err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	defer sub.Unsubscribe()

	snap := mustReceive(t, sub)
	if snap.Collection != CollectionSales || snap.Platform != model.PlatformTikTok {
		t.Errorf("快照主题错误: %+v", snap)
	}
	if records := snap.Records.([]string); len(records) != 2 {
		t.Errorf("首份快照内容错误: %v", records)
	}
}

func TestHub_PublishFansOutLatestData(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "a")

	sub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	defer sub.Unsubscribe()
	mustReceive(t, sub) // 消费掉首份

	store.set(model.PlatformTikTok, "a", "b", "c")
	hub.Publish(CollectionSales, model.PlatformTikTok)

	snap := mustReceive(t, sub)
	if records := snap.Records.([]string); len(records) != 3 {
		t.Errorf("推送内容应该是最新全量: %v", records)
	}
}

// 消费慢时只保最新一份（last-wins），不会阻塞发布方
func TestHub_SlowConsumerKeepsLatestOnly(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "v1")

	sub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	defer sub.Unsubscribe()
	// 不消费首份，连发两次
	store.set(model.PlatformTikTok, "v1", "v2")
	hub.Publish(CollectionSales, model.PlatformTikTok)
	store.set(model.PlatformTikTok, "v1", "v2", "v3")
	hub.Publish(CollectionSales, model.PlatformTikTok)

	snap := mustReceive(t, sub)
	if records := snap.Records.([]string); len(records) != 3 {
		t.Errorf("应该只剩最新快照: %v", records)
	}

	select {
	case <-sub.C:
		t.Error("中间快照应该被挤掉")
	default:
	}
}

// 主题按 (集合, 渠道) 隔离
func TestHub_TopicsIsolatedByPlatform(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "tiktok")
	store.set(model.PlatformShopee, "shopee")

	tiktokSub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	defer tiktokSub.Unsubscribe()
	shopeeSub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformShopee)
	defer shopeeSub.Unsubscribe()
	mustReceive(t, tiktokSub)
	mustReceive(t, shopeeSub)

	store.set(model.PlatformShopee, "shopee", "baru")
	hub.Publish(CollectionSales, model.PlatformShopee)

	select {
	case <-tiktokSub.C:
		t.Error("TikTok 订阅不该收到 Shopee 的推送")
	default:
	}
	mustReceive(t, shopeeSub)
}

// Unsubscribe 可重复调用；注销后发布不 panic
func TestHub_UnsubscribeIdempotent(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "a")

	sub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	if n := hub.SubscriberCount(CollectionSales, model.PlatformTikTok); n != 1 {
		t.Fatalf("订阅数错误: %d", n)
	}

	sub.Unsubscribe()
	sub.Unsubscribe()

	if n := hub.SubscriberCount(CollectionSales, model.PlatformTikTok); n != 0 {
		t.Errorf("注销后订阅数应该为 0, 实际 %d", n)
	}
	hub.Publish(CollectionSales, model.PlatformTikTok)
}

func TestHub_SubscribeValidation(t *testing.T) {
	hub, _ := newTestHub()
	ctx := context.Background()

	if _, err := hub.Subscribe(ctx, "orders", model.PlatformTikTok); err == nil {
		t.Error("未知集合应该被拒绝")
	}
	if _, err := hub.Subscribe(ctx, CollectionSales, "Lazada"); err == nil {
		t.Error("非法渠道应该被拒绝")
	}
	// financial 没注册装载器
	if _, err := hub.Subscribe(ctx, CollectionFinancial, model.PlatformTikTok); err == nil {
		t.Error("没有装载器的集合应该被拒绝")
	}
}

// 首次装载失败时订阅直接失败并清理掉
func TestHub_SubscribeLoaderFailure(t *testing.T) {
	hub, store := newTestHub()
	store.err = errors.New("db down")

	if _, err := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok); err == nil {
		t.Fatal("装载失败时订阅应该报错")
	}
	if n := hub.SubscriberCount(CollectionSales, model.PlatformTikTok); n != 0 {
		t.Errorf("失败的订阅应该被清理, 实际 %d", n)
	}
}

// 发布时装载失败只打日志，订阅方保持上一份数据
func TestHub_PublishLoaderFailureKeepsSubscribers(t *testing.T) {
	hub, store := newTestHub()
	store.set(model.PlatformTikTok, "a")

	sub, _ := hub.Subscribe(context.Background(), CollectionSales, model.PlatformTikTok)
	defer sub.Unsubscribe()
	mustReceive(t, sub)

	store.err = errors.New("db down")
	hub.Publish(CollectionSales, model.PlatformTikTok)

	select {
	case <-sub.C:
		t.Error("装载失败时不该有推送")
	default:
	}
	if n := hub.SubscriberCount(CollectionSales, model.PlatformTikTok); n != 1 {
		t.Errorf("订阅应该还在, 实际 %d", n)
	}
}
