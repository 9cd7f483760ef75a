package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}
	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected time to hold without step, got %v", now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	mock.Advance(90 * time.Minute)
	expected := newTime.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

func TestSteppingTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewSteppingTimeProvider(startTime, time.Second)

	for i := 0; i < 3; i++ {
		expected := startTime.Add(time.Duration(i) * time.Second)
		if now := mock.Now(); !now.Equal(expected) {
			t.Errorf("Read %d: expected %v, got %v", i, expected, now)
		}
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = NewMonotonicTimeProvider()
	var _ TimeProvider = NewMockTimeProvider(time.Now())
}
