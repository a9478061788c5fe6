package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/Sarthak1642/file-organization/internal"
	"github.com/Sarthak1642/file-organization/logger"
)

type Task struct {
	Path string
	Size int64
}

type Result struct {
	Path   string
	Digest Digest
	Size   int64
}

// Pool 并发哈希计算池，只用于只读扫描
// 整理流程本身是单线程的，不使用该池
type Pool struct {
	fs      afero.Fs
	workers int
	tasks   chan Task
	results chan Result
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewPool(fs afero.Fs, workers int) *Pool {
	logger.Get().Info().Msgf("创建哈希计算池，工作线程数: %d", workers)
	return &Pool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan Task, internal.DefaultBufferSize),
		results: make(chan Result, internal.DefaultBufferSize),
	}
}

func (p *Pool) Start() error {
	logger.Get().Info().Msgf("启动哈希计算池，启动 %d 个工作线程", p.workers)

	var err error
	p.pool, err = ants.NewPool(p.workers)
	if err != nil {
		logger.Get().Error().Err(err).Msg("创建 goroutine 池失败")
		return err
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}

	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.results <- Result{
			Path:   task.Path,
			Digest: Sum(p.fs, task.Path),
			Size:   task.Size,
		}
	}
}

func (p *Pool) AddTask(task Task) {
	p.tasks <- task
}

func (p *Pool) Results() <-chan Result {
	return p.results
}

// Wait 关闭任务通道，等待所有工作线程退出后关闭结果通道
// 必须在所有 AddTask 调用之后调用
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
	close(p.results)

	if p.pool != nil {
		p.pool.Release()
	}
	logger.Get().Debug().Msg("哈希计算池已关闭")
}
