package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if now := mock.Now(); !now.Equal(epoch) {
		t.Errorf("Expected initial time %v, got %v", epoch, now)
	}

	got := mock.Advance(16 * time.Millisecond)
	if want := epoch.Add(16 * time.Millisecond); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, got)
	}

	later := epoch.Add(time.Hour)
	mock.SetTime(later)
	if now := mock.Now(); !now.Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(1000 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, mock.Now())
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	base := NewMockTimeProvider(epoch)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	if got := pc.Now().Sub(epoch); got != time.Second {
		t.Fatalf("Expected 1s elapsed, got %v", got)
	}

	pc.Pause()
	pc.Pause()
	base.Advance(3 * time.Second)
	if got := pc.Now().Sub(epoch); got != time.Second {
		t.Errorf("Expected frozen 1s while paused, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 3*time.Second {
		t.Errorf("Expected 3s active pause, got %v", got)
	}

	pc.Resume()
	pc.Resume()
	base.Advance(500 * time.Millisecond)
	if got := pc.Now().Sub(epoch); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s after resume, got %v", got)
	}
	if !pc.RealTime().Equal(epoch.Add(4500 * time.Millisecond)) {
		t.Errorf("RealTime should track base clock, got %v", pc.RealTime())
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(epoch))

	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("Expected first toggle to pause")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Fatal("Expected second toggle to resume")
	}
}
