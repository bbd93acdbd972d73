package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

type Task interface {
	Run()
}

// CronTask is a task with its own schedule in cron syntax.
type CronTask interface {
	Schedule() string
	Task
}

// Executor runs cron tasks in the background. A task that is still
// running when its schedule fires again is skipped for that tick.
type Executor struct {
	cron    *cron.Cron
	tasks   []CronTask
	running mapset.Set[CronTask]
	mu      sync.Mutex
}

func NewExecutor(tasks []CronTask) *Executor {
	return &Executor{
		cron:    cron.New(),
		tasks:   tasks,
		running: mapset.NewSet[CronTask](),
	}
}

func (e *Executor) Run() {
	for _, task := range e.tasks {
		err := e.cron.AddFunc(task.Schedule(), func() {
			e.mu.Lock()
			if e.running.Contains(task) {
				e.mu.Unlock()
				logrus.Warn("task is already running")
				return
			}
			e.running.Add(task)
			e.mu.Unlock()

			defer func() {
				e.mu.Lock()
				defer e.mu.Unlock()
				e.running.Remove(task)
			}()

			task.Run()
		})

		if err != nil {
			logrus.Errorf("failed to add task to cron: %v", err)
			panic(err)
		}
	}

	e.cron.Start()
}

func (e *Executor) Stop() {
	logrus.Infof("stopping all tasks")
	e.cron.Stop()
}
