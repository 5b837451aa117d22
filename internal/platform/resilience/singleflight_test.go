package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoCoalesces(t *testing.T) {
	var g Group[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			value, err, _ := g.Do("token", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "abc", nil
			})
			if err != nil || value != "abc" {
				t.Errorf("unexpected result: value=%q err=%v", value, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoChanSharesResult(t *testing.T) {
	var g Group[int]
	release := make(chan struct{})
	var counter int32

	first := g.DoChan("sheet", func() (int, error) {
		atomic.AddInt32(&counter, 1)
		<-release
		return 42, nil
	})
	second := g.DoChan("sheet", func() (int, error) {
		atomic.AddInt32(&counter, 1)
		return -1, nil
	})
	close(release)

	for _, ch := range []<-chan Result[int]{first, second} {
		select {
		case res := <-ch:
			if res.Err != nil || res.Val != 42 {
				t.Fatalf("unexpected result: %+v", res)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for shared result")
		}
	}
	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}
