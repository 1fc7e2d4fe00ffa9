package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mogud/snowlog/configuration"
	"github.com/mogud/snowlog/logging/slog"
)

const reloadDelay = 200 * time.Millisecond

// FileConfigurationSource 文件配置源公共字段
type FileConfigurationSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

var _ configuration.IConfigurationProvider = (*FileConfigurationProvider)(nil)

// FileConfigurationProvider 读取文件并交由 parse 解析，ReloadOnChange 时监听文件变化
type FileConfigurationProvider struct {
	*configuration.Provider

	path           string
	optional       bool
	reloadOnChange bool
	parse          func(data []byte) (map[string]any, error)

	watchOnce sync.Once
	watcher   *fsnotify.Watcher
}

func NewFileConfigurationProvider(source *FileConfigurationSource, parse func(data []byte) (map[string]any, error)) *FileConfigurationProvider {
	return &FileConfigurationProvider{
		Provider:       configuration.NewProvider(),
		path:           source.Path,
		optional:       source.Optional,
		reloadOnChange: source.ReloadOnChange,
		parse:          parse,
	}
}

func (ss *FileConfigurationProvider) Load() error {
	if err := ss.loadFile(); err != nil {
		return err
	}

	if ss.reloadOnChange {
		var err error
		ss.watchOnce.Do(func() {
			err = ss.watch()
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Close 停止监听文件
func (ss *FileConfigurationProvider) Close() error {
	if ss.watcher == nil {
		return nil
	}
	return ss.watcher.Close()
}

func (ss *FileConfigurationProvider) loadFile() error {
	data, err := os.ReadFile(ss.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && ss.optional {
			ss.Replace(map[string]string{})
			return nil
		}
		return fmt.Errorf("read configuration file(%s): %w", ss.path, err)
	}

	values, err := ss.parse(data)
	if err != nil {
		return fmt.Errorf("parse configuration file(%s): %w", ss.path, err)
	}

	flat, err := Flatten("", values)
	if err != nil {
		return fmt.Errorf("flatten configuration file(%s): %w", ss.path, err)
	}

	ss.Replace(flat)
	return nil
}

func (ss *FileConfigurationProvider) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	ss.watcher = watcher

	// 监听父目录，编辑器以 rename 方式保存文件时也能收到事件
	dir := filepath.Dir(ss.path)
	if err = watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch configuration dir(%s): %w", dir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !pathEquals(event.Name, ss.path) {
					continue
				}

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					slog.Debugf("configuration file changed: %v", event.Name)
					time.AfterFunc(reloadDelay, ss.reload)
				} else if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					slog.Debugf("configuration file removed: %v", event.Name)
					ss.Replace(map[string]string{})
					ss.OnReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warnf("configuration file watcher error: %v", err)
			}
		}
	}()
	return nil
}

func (ss *FileConfigurationProvider) reload() {
	if err := ss.loadFile(); err != nil {
		slog.Errorf("reload configuration: %v", err)
		return
	}
	ss.OnReload()
}

func pathEquals(path1, path2 string) bool {
	return filepath.Clean(path1) == filepath.Clean(path2)
}
