package async

import (
	"errors"
	"runtime/debug"
	"sync"

	"zhihuer/config"
	"zhihuer/pkg/log"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var (
	global   *ants.Pool
	globalMu sync.Mutex
	cfgCopy  *config.Async
)

// ErrNotInitialized 表示协程池尚未初始化
var ErrNotInitialized = errors.New("async pool not initialized")

// Init 初始化全局协程池，进程启动时调用一次
func Init(cfg *config.Async) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return nil
	}

	p, err := ants.NewPool(cfg.Size(), ants.WithPanicHandler(func(p any) {
		log.L.Error("async task panic",
			zap.Any("panic", p),
			zap.String("stack", string(debug.Stack())),
		)
	}))
	if err != nil {
		return err
	}

	global = p
	cfgCopy = cfg
	return nil
}

// Submit 将任务投递到全局协程池
func Submit(task func()) error {
	if global == nil {
		return ErrNotInitialized
	}
	return global.Submit(task)
}

// Release 优雅释放协程池资源，等待任务执行完
func Release() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		return nil
	}

	err := global.ReleaseTimeout(cfgCopy.ReleaseTimeout())
	global = nil
	return err
}
