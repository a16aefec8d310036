package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type failingService struct{ err error }

func (f failingService) Analyze(context.Context, Request) (string, error) {
	return "", f.err
}

func TestNarrative_KeyedByTitle(t *testing.T) {
	if got := Narrative("Revenue Trends"); !strings.Contains(got, "March") {
		t.Fatalf("Narrative(Revenue Trends) = %q, want the March profit narrative", got)
	}
	for _, title := range []string{"Sales by Category", "", "revenue trends"} {
		if got := Narrative(title); !strings.HasPrefix(got, "Electronics is the dominant category") {
			t.Fatalf("Narrative(%q) = %q, want the category narrative", title, got)
		}
	}
}

func TestMock_WaitsForDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	start := time.Now()
	text, err := Mock{Delay: delay}.Analyze(context.Background(), Request{Title: "Revenue Trends"})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("Analyze returned after %v, want >= %v", elapsed, delay)
	}
	if text != revenueNarrative {
		t.Fatalf("text = %q, want revenue narrative", text)
	}
}

func TestMock_CancelStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Mock{Delay: time.Hour}.Analyze(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTask_DisposeCancels(t *testing.T) {
	task := Start(context.Background(), Mock{Delay: time.Hour}, Request{Title: "x"})
	task.Dispose()

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish after Dispose")
	}
	if res := task.Wait(); !res.Canceled() {
		t.Fatalf("result = %+v, want canceled", res)
	}
	task.Dispose()
}

func TestTask_NilServiceIsUnavailable(t *testing.T) {
	res := Start(context.Background(), nil, Request{}).Wait()
	if !errors.Is(res.Err, ErrUnavailable) {
		t.Fatalf("Err = %v, want ErrUnavailable", res.Err)
	}
}

func TestPanel_LoadingUntilResolved(t *testing.T) {
	p := NewPanel("Revenue Trends", "sales")
	if p.Loading || p.Mounted() {
		t.Fatalf("new panel loading=%v mounted=%v, want false/false", p.Loading, p.Mounted())
	}

	gen, task := p.Invoke(context.Background(), Mock{Delay: 20 * time.Millisecond})
	if !p.Loading {
		t.Fatal("Loading = false immediately after Invoke, want true")
	}
	if p.Text != PlaceholderText {
		t.Fatalf("Text = %q before resolve, want placeholder", p.Text)
	}

	if !p.Resolve(gen, task.Wait()) {
		t.Fatal("Resolve returned false for the current generation")
	}
	if p.Loading {
		t.Fatal("Loading = true after resolve, want false")
	}
	if p.Text != revenueNarrative {
		t.Fatalf("Text = %q, want revenue narrative", p.Text)
	}
}

func TestPanel_ReinvokeDropsStaleResult(t *testing.T) {
	p := NewPanel("Sales by Category", "categories")
	oldGen, oldTask := p.Invoke(context.Background(), Mock{Delay: time.Hour})
	newGen, newTask := p.Invoke(context.Background(), Mock{})

	if newGen == oldGen {
		t.Fatalf("generation did not advance: %d", newGen)
	}
	if res := oldTask.Wait(); !res.Canceled() {
		t.Fatalf("old task result = %+v, want canceled by re-invoke", res)
	}
	if p.Resolve(oldGen, Result{Text: "stale"}) {
		t.Fatal("Resolve accepted a stale generation")
	}
	if !p.Resolve(newGen, newTask.Wait()) {
		t.Fatal("Resolve rejected the current generation")
	}
	if p.Text != categoryNarrative {
		t.Fatalf("Text = %q, want category narrative", p.Text)
	}
}

func TestPanel_TeardownSuppressesLateUpdate(t *testing.T) {
	p := NewPanel("Revenue Trends", "sales")
	gen, task := p.Invoke(context.Background(), Mock{Delay: time.Hour})
	p.Teardown()

	if res := task.Wait(); !res.Canceled() {
		t.Fatalf("task result = %+v, want canceled", res)
	}
	if p.Resolve(gen, Result{Text: "late"}) {
		t.Fatal("Resolve applied a result after teardown")
	}
	if p.Text != PlaceholderText || p.Loading {
		t.Fatalf("panel after teardown = %q loading=%v, want placeholder/false", p.Text, p.Loading)
	}
}

func TestPanel_ErrorResult(t *testing.T) {
	boom := errors.New("backend down")
	p := NewPanel("Revenue Trends", "sales")
	gen, task := p.Invoke(context.Background(), failingService{err: boom})

	if !p.Resolve(gen, task.Wait()) {
		t.Fatal("Resolve rejected error result")
	}
	if !errors.Is(p.Err, boom) || p.Loading {
		t.Fatalf("panel err=%v loading=%v, want %v/false", p.Err, p.Loading, boom)
	}
}
