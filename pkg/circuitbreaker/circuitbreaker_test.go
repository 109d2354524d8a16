package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

func newTestBreaker(threshold uint32, timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("book-store", Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: ConsecutiveFailures(threshold),
	})
}

func fail() error    { return errStoreDown }
func succeed() error { return nil }

// TestCircuitBreaker_ClosedState 关闭状态下请求正常通过
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := newTestBreaker(5, 30*time.Second)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

// TestCircuitBreaker_OpenState 连续失败后快速失败
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := newTestBreaker(5, 30*time.Second)

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errStoreDown)
	}
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

// TestCircuitBreaker_HalfOpen 超时后探测
func TestCircuitBreaker_HalfOpen(t *testing.T) {
	t.Run("探测成功后关闭", func(t *testing.T) {
		cb := newTestBreaker(3, 50*time.Millisecond)
		for i := 0; i < 3; i++ {
			_ = cb.Execute(fail)
		}
		require.Equal(t, StateOpen, cb.State())

		time.Sleep(80 * time.Millisecond)
		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败后重新打开", func(t *testing.T) {
		cb := newTestBreaker(3, 50*time.Millisecond)
		for i := 0; i < 3; i++ {
			_ = cb.Execute(fail)
		}

		time.Sleep(80 * time.Millisecond)
		_ = cb.Execute(fail)
		assert.Equal(t, StateOpen, cb.State())
	})
}

// TestCircuitBreaker_IsSuccessful 业务错误不计入失败
func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	errNotFound := errors.New("not found")
	cb := NewCircuitBreaker("book-store", Config{
		Timeout:     30 * time.Second,
		Interval:    10 * time.Second,
		ReadyToTrip: ConsecutiveFailures(2),
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFound)
		},
	})

	for i := 0; i < 5; i++ {
		err := cb.Execute(func() error { return errNotFound })
		assert.ErrorIs(t, err, errNotFound, "业务错误原样返回")
	}
	assert.Equal(t, StateClosed, cb.State())

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	assert.Equal(t, StateOpen, cb.State())
}

// TestCircuitBreaker_StateChangeCallback 状态变化回调
func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	var changes []string
	cb := newTestBreaker(3, 50*time.Millisecond)
	cb.SetStateChangeCallback(func(name string, from State, to State) {
		assert.Equal(t, "book-store", name)
		changes = append(changes, from.String()+"->"+to.String())
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}
	time.Sleep(80 * time.Millisecond)
	_ = cb.Execute(succeed)

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, changes)
}

// TestCircuitBreaker_FailureRate 基于失败率的熔断
func TestCircuitBreaker_FailureRate(t *testing.T) {
	cb := NewCircuitBreaker("book-store", Config{
		MaxRequests: 3,
		Interval:    time.Hour,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.Requests >= 10 && counts.FailureRate() > 0.5
		},
	})

	// 4次成功，6次失败
	for i := 0; i < 10; i++ {
		if i < 4 {
			_ = cb.Execute(succeed)
		} else {
			_ = cb.Execute(fail)
		}
	}

	assert.Equal(t, StateOpen, cb.State())
}

func BenchmarkCircuitBreaker(b *testing.B) {
	cb := newTestBreaker(5, 30*time.Second)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(succeed)
	}
}
