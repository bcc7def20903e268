package api

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

type stats struct {
	counts map[string]int
	lock   sync.Mutex
}

func newStats() *stats {
	return &stats{counts: make(map[string]int)}
}

func (s *stats) inc(action string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.counts[action]++
}

// reset returns the counts since the last call and starts over.
func (s *stats) reset() map[string]int {
	s.lock.Lock()
	defer s.lock.Unlock()
	counts := s.counts
	s.counts = make(map[string]int)
	return counts
}

func (s *stats) format(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Itoa(counts[k]))
	}
	return strings.Join(parts, " ")
}

func (s *Server) logStats() {
	counts := s.stats.reset()
	if len(counts) == 0 {
		log.Debug("No calculation since last report")
		return
	}
	log.Infof("Calculations %s", s.stats.format(counts))
}

// ScheduleStats logs request counts every given minutes on sched.
func (s *Server) ScheduleStats(sched *gocron.Scheduler, minutes uint64) error {
	return sched.Every(minutes).Minutes().Do(s.logStats)
}
