// Package scheduler triggers the periodic feed refresh.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultInterval matches the reader's auto-refresh period.
const DefaultInterval = 10 * time.Minute

type Scheduler struct {
	cron    *cron.Cron
	entryID cron.EntryID
	log     *logrus.Entry
}

func New(log *logrus.Entry) *Scheduler {
	if log == nil {
		log = logrus.WithField("component", "scheduler")
	}
	logger := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		log: log,
	}
}

// Every runs job on a fixed interval, replacing any job registered before.
// Intervals under a second are raised to one second.
func (s *Scheduler) Every(interval time.Duration, job func()) {
	if interval < time.Second {
		interval = time.Second
	}
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}
	s.entryID = s.cron.Schedule(cron.Every(interval), cron.FuncJob(job))
	s.log.WithField("interval", interval.String()).Debug("scheduled refresh")
}

// Next returns when the job runs next, or the zero time if none is
// scheduled or the scheduler is not running.
func (s *Scheduler) Next() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
