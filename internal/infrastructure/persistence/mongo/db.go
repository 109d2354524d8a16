package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewClient 创建MongoDB客户端
// 设计说明：
// 1. 配置连接池参数（MaxPoolSize、MinPoolSize）
// 2. 连接超时由connect_timeout控制
// 3. 启动时Ping主节点，连不上直接失败
// 返回的cleanup用于优雅关闭时断开连接
func NewClient(cfg *config.Config) (*mongo.Client, func(), error) {
	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(cfg.Database.ConnectTimeout).
		SetMaxPoolSize(cfg.Database.MaxPoolSize).
		SetMinPoolSize(cfg.Database.MinPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("MongoDB连接测试失败: %w", err)
	}

	slog.Info("MongoDB连接成功", "database", cfg.Database.Name)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("断开MongoDB连接失败", "error", err)
		}
	}

	return client, cleanup, nil
}

// NewCollection 获取图书集合
func NewCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Database.Name).Collection(cfg.Database.Collection)
}
