package scheduler

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestEveryRunsJob(t *testing.T) {
	s := New(quietLogger())
	s.Start()
	defer s.Stop()

	ran := make(chan struct{}, 4)
	s.Every(time.Second, func() { ran <- struct{}{} })

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job was not called")
	}
}

func TestEveryReplacesPreviousJob(t *testing.T) {
	s := New(quietLogger())
	s.Start()
	defer s.Stop()

	var old, current atomic.Int32
	s.Every(time.Second, func() { old.Add(1) })
	s.Every(time.Second, func() { current.Add(1) })

	time.Sleep(2500 * time.Millisecond)
	if old.Load() != 0 {
		t.Errorf("replaced job ran %d times", old.Load())
	}
	if current.Load() == 0 {
		t.Error("current job never ran")
	}
}

func TestEveryClampsInterval(t *testing.T) {
	s := New(quietLogger())
	s.Start()
	defer s.Stop()

	s.Every(time.Millisecond, func() {})
	next := s.Next()
	if next.IsZero() {
		t.Fatal("expected a next run time")
	}
	if d := time.Until(next); d > 2*time.Second {
		t.Errorf("next run too far away: %v", d)
	}
}

func TestNextWithoutJob(t *testing.T) {
	s := New(quietLogger())
	if !s.Next().IsZero() {
		t.Error("expected zero time without a job")
	}
}

func TestStopWithoutStart(t *testing.T) {
	s := New(quietLogger())
	s.Every(DefaultInterval, func() {})
	s.Stop()
}
