package scanner

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"goloc/internal/languages"
	"goloc/internal/model"
)

// progressLogInterval 控制分析阶段进度日志的频率。
const progressLogInterval = 100

// Outcome 是一次并发聚合的产物。
type Outcome struct {
	Stats    model.AggregateStats
	Files    []model.FileResult
	Failures []model.ScanError
}

// Pipeline 在有限并发下对任务列表执行单文件分析并汇总结果。
//
// 每个任务只依赖自己的文件内容和 Profile，worker 之间不共享可变状态；
// 唯一的共享写入是按语言累加的并发 map，FileStats 加法满足交换律与结合律，
// 因此结果与并发度、调度顺序、完成顺序都无关。
type Pipeline struct {
	workers      int
	collectFiles bool
	logger       *logrus.Entry
}

// NewPipeline 创建聚合流水线。
func NewPipeline(workers int, collectFiles bool, logger *logrus.Entry) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{
		workers:      workers,
		collectFiles: collectFiles,
		logger:       logger,
	}
}

// progress 是进程内的近似进度计数器，只用于日志，不参与统计正确性。
type progress struct {
	done   atomic.Int64
	total  int
	logger *logrus.Entry
}

func (p *progress) tick() {
	count := p.done.Add(1)
	if count%progressLogInterval == 0 && p.total > 0 {
		p.logger.Infof("Analyzed %d/%d files (%.1f%%)", count, p.total, float64(count)/float64(p.total)*100)
	}
}

// Aggregate 并发分析全部任务并按语言汇总。
//
// 读取失败的文件只记录到 Failures，不计入任何统计，也不会中断其它文件。
// ctx 被取消时整体放弃并返回错误，不返回部分结果。
func (p *Pipeline) Aggregate(ctx context.Context, tasks []Task) (Outcome, error) {
	totals := xsync.NewMapOf[string, model.FileStats]()
	counter := &progress{total: len(tasks), logger: p.logger}

	var resultMu sync.Mutex
	files := make([]model.FileResult, 0)
	failures := make([]model.ScanError, 0)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)

	for _, task := range tasks {
		if groupCtx.Err() != nil {
			break
		}

		task := task
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			stats, err := languages.AnalyzeFile(task.Path, task.Profile)
			counter.tick()
			if err != nil {
				p.logger.WithError(err).WithField("path", task.DisplayPath).Debug("skipping unreadable file")

				resultMu.Lock()
				failures = append(failures, model.ScanError{Path: task.DisplayPath, Error: err.Error()})
				resultMu.Unlock()
				return nil
			}

			totals.Compute(task.Profile.Name(), func(current model.FileStats, _ bool) (model.FileStats, bool) {
				return current.Add(stats), false
			})

			if p.collectFiles {
				resultMu.Lock()
				files = append(files, model.FileResult{
					Path:     task.DisplayPath,
					Language: task.Profile.Name(),
					Stats:    stats,
				})
				resultMu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Outcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Stats:    make(model.AggregateStats, totals.Size()),
		Failures: failures,
	}
	totals.Range(func(language string, stats model.FileStats) bool {
		outcome.Stats[language] = stats
		return true
	})

	sort.Slice(failures, func(i int, j int) bool {
		return failures[i].Path < failures[j].Path
	})

	if p.collectFiles {
		sort.Slice(files, func(i int, j int) bool {
			return files[i].Path < files[j].Path
		})
		outcome.Files = files
	}

	return outcome, nil
}
