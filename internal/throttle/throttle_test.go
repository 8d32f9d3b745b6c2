package throttle

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

const interval = 50 * time.Millisecond

func TestThrottle(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	suite.Suite
	clock    clockwork.FakeClock
	throttle *Throttle[int]

	mutex sync.Mutex
	calls []int
}

func (s *Suite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.calls = nil
	s.throttle = New(s.clock, interval, func(value int) {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		s.calls = append(s.calls, value)
	})
}

func (s *Suite) Calls() []int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	result := make([]int, len(s.calls))
	copy(result, s.calls)
	return result
}

func (s *Suite) TestFirstCallIsImmediate() {
	s.throttle.Do(1)
	s.Require().Equal([]int{1}, s.Calls())
}

func (s *Suite) TestBurstKeepsLatestOnly() {
	s.throttle.Do(1)
	s.throttle.Do(2)
	s.throttle.Do(3)
	s.throttle.Do(4)

	s.Require().Equal([]int{1}, s.Calls())

	s.clock.Advance(interval)
	s.Require().Eventually(func() bool {
		calls := s.Calls()
		return len(calls) == 2 && calls[1] == 4
	}, time.Second, time.Millisecond)
}

func (s *Suite) TestCallAfterQuietPeriodIsImmediate() {
	s.throttle.Do(1)
	s.clock.Advance(interval)
	s.throttle.Do(2)

	s.Require().Equal([]int{1, 2}, s.Calls())
}

func (s *Suite) TestFlushFiresPendingEarly() {
	s.throttle.Do(1)
	s.throttle.Do(2)
	s.throttle.Flush()

	s.Require().Equal([]int{1, 2}, s.Calls())

	// The timer is gone: nothing else fires.
	s.clock.Advance(interval)
	s.Require().Equal([]int{1, 2}, s.Calls())
}

func (s *Suite) TestFlushWithoutPendingIsNoop() {
	s.throttle.Flush()
	s.Require().Empty(s.Calls())
}

func (s *Suite) TestStopDropsPending() {
	s.throttle.Do(1)
	s.throttle.Do(2)
	s.throttle.Stop()

	s.clock.Advance(interval)
	s.Require().Equal([]int{1}, s.Calls())

	s.throttle.Do(3)
	s.Require().Equal([]int{1}, s.Calls())
}
