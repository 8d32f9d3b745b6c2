package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/scrawl-party/scrawl-cli/internal/testcommon"
)

func TestChannel(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite

	upgrader  websocket.Upgrader
	rejecting atomic.Bool
	conns     chan *websocket.Conn
	server    *httptest.Server
	channel   *Channel
}

func (s *Suite) SetupTest() {
	s.rejecting.Store(false)
	s.conns = make(chan *websocket.Conn, 10)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rejecting.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		conn, err := s.upgrader.Upgrade(w, r, nil)
		s.Require().NoError(err)
		s.conns <- conn
	}))
	s.channel = nil
}

func (s *Suite) TearDownTest() {
	if s.channel != nil {
		s.channel.Stop()
	}
	s.server.Close()
}

func (s *Suite) url() string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http")
}

func (s *Suite) serverConn() *websocket.Conn {
	select {
	case conn := <-s.conns:
		return conn
	case <-time.After(time.Second):
		s.Require().Fail("timeout waiting for server side connection")
	}
	return nil
}

func (s *Suite) TestConnectDeliversInboundFrames() {
	s.channel = NewChannel(s.url(), WithLogger(s.Logger))
	sub := s.channel.SubscribeToMessages()

	s.Require().NoError(s.channel.Connect())
	s.Require().Equal(StateOpen, s.channel.Status().State)

	conn := s.serverConn()
	err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`))
	s.Require().NoError(err)

	select {
	case payload := <-sub.Ch:
		s.Require().JSONEq(`{"type":"ping"}`, string(payload))
	case <-time.After(time.Second):
		s.Require().Fail("timeout waiting for frame")
	}
}

func (s *Suite) TestSendReachesServer() {
	s.channel = NewChannel(s.url(), WithLogger(s.Logger))
	s.Require().NoError(s.channel.Connect())

	conn := s.serverConn()
	err := s.channel.Send([]byte(`{"type":"guess","guess":"cat"}`))
	s.Require().NoError(err)

	_, payload, err := conn.ReadMessage()
	s.Require().NoError(err)
	s.Require().JSONEq(`{"type":"guess","guess":"cat"}`, string(payload))
}

func (s *Suite) TestSendWithoutConnectionFailsSoftly() {
	s.channel = NewChannel(s.url(), WithLogger(s.Logger))

	err := s.channel.Send([]byte(`{"type":"ping"}`))
	s.Require().ErrorIs(err, ErrNotConnected)
}

func (s *Suite) TestRetryBudgetExhaustionIsTerminal() {
	s.rejecting.Store(true)
	s.channel = NewChannel(s.url(),
		WithLogger(s.Logger),
		WithMaxRetries(3),
		WithRetryDelay(5*time.Millisecond),
	)

	s.Require().Error(s.channel.Connect())

	s.Require().Eventually(func() bool {
		return s.channel.Status().State == StateFailed
	}, 2*time.Second, 5*time.Millisecond)

	status := s.channel.Status()
	s.Require().Equal(3, status.RetryCount)
	s.Require().Error(status.LastError)

	// Terminal: no timer brings it back on its own.
	time.Sleep(50 * time.Millisecond)
	s.Require().Equal(StateFailed, s.channel.Status().State)
}

func (s *Suite) TestManualReconnectResetsBudget() {
	s.rejecting.Store(true)
	s.channel = NewChannel(s.url(),
		WithLogger(s.Logger),
		WithMaxRetries(2),
		WithRetryDelay(5*time.Millisecond),
	)

	s.Require().Error(s.channel.Connect())
	s.Require().Eventually(func() bool {
		return s.channel.Status().State == StateFailed
	}, 2*time.Second, 5*time.Millisecond)

	s.rejecting.Store(false)
	s.Require().NoError(s.channel.Reconnect())

	status := s.channel.Status()
	s.Require().Equal(StateOpen, status.State)
	s.Require().Zero(status.RetryCount)
}

func (s *Suite) TestStopCancelsPendingRetry() {
	s.rejecting.Store(true)
	s.channel = NewChannel(s.url(),
		WithLogger(s.Logger),
		WithMaxRetries(3),
		WithRetryDelay(time.Hour),
	)

	s.Require().Error(s.channel.Connect())
	s.Require().Equal(StateConnecting, s.channel.Status().State)

	s.channel.Stop()
	s.Require().Equal(StateClosed, s.channel.Status().State)
	s.channel = nil
}

func (s *Suite) TestDisconnectTriggersReconnection() {
	s.channel = NewChannel(s.url(),
		WithLogger(s.Logger),
		WithMaxRetries(3),
		WithRetryDelay(5*time.Millisecond),
	)
	s.Require().NoError(s.channel.Connect())

	conn := s.serverConn()
	s.Require().NoError(conn.Close())

	// The channel notices the drop and dials again on its own.
	s.Require().Eventually(func() bool {
		return s.channel.Status().State == StateOpen
	}, 2*time.Second, 5*time.Millisecond)

	s.serverConn()

	// A fresh connection restores the retry budget.
	s.Require().Zero(s.channel.Status().RetryCount)
}

func (s *Suite) TestStatusSubscriptionSeesTransitions() {
	s.channel = NewChannel(s.url(), WithLogger(s.Logger))
	statuses := s.channel.SubscribeToConnectionStatus()

	s.Require().NoError(s.channel.Connect())

	var seen []ConnectionState
	timeout := time.After(time.Second)
	for len(seen) < 2 {
		select {
		case status := <-statuses:
			seen = append(seen, status.State)
		case <-timeout:
			s.Require().Fail("timeout waiting for status updates")
		}
	}
	s.Require().Equal([]ConnectionState{StateConnecting, StateOpen}, seen)
}

func (s *Suite) TestSecondConnectReplacesSocket() {
	s.channel = NewChannel(s.url(), WithLogger(s.Logger))
	s.Require().NoError(s.channel.Connect())
	first := s.serverConn()

	s.Require().NoError(s.channel.Connect())
	s.serverConn()

	// The first server side socket observes the close.
	_ = first.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := first.ReadMessage()
	s.Require().Error(err)
}
