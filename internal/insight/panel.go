package insight

import "context"

// PlaceholderText is shown before the first analysis resolves.
const PlaceholderText = "Generating insights..."

// Panel is the insight state attached to one chart.
type Panel struct {
	Title   string
	Dataset string

	Loading bool
	Text    string
	Err     error

	gen     uint64
	mounted bool
	task    *Task
}

// NewPanel creates an unmounted panel for a chart.
func NewPanel(title, dataset string) *Panel {
	return &Panel{Title: title, Dataset: dataset, Text: PlaceholderText}
}

// Invoke starts a fresh analysis, disposing any pending one, and returns the
// generation the result must be resolved with.
func (p *Panel) Invoke(ctx context.Context, svc Service) (uint64, *Task) {
	if p.task != nil {
		p.task.Dispose()
	}
	p.gen++
	p.mounted = true
	p.Loading = true
	p.Err = nil
	p.task = Start(ctx, svc, Request{Title: p.Title, Dataset: p.Dataset})
	return p.gen, p.task
}

// Resolve applies a result for generation gen. Results for an older
// generation, for an unmounted panel, or from a cancelled task are ignored;
// the return value reports whether the panel changed.
func (p *Panel) Resolve(gen uint64, res Result) bool {
	if !p.mounted || gen != p.gen || res.Canceled() {
		return false
	}
	p.task = nil
	p.Loading = false
	if res.Err != nil {
		p.Err = res.Err
		return true
	}
	p.Text = res.Text
	return true
}

// Teardown disposes the pending analysis and unmounts the panel. Text and
// loading state reset so the next mount starts from the placeholder.
func (p *Panel) Teardown() {
	if p.task != nil {
		p.task.Dispose()
		p.task = nil
	}
	p.mounted = false
	p.Loading = false
	p.Err = nil
	p.Text = PlaceholderText
}

// Mounted reports whether the panel is currently attached to a view.
func (p *Panel) Mounted() bool {
	return p.mounted
}

// Generation returns the current invocation counter.
func (p *Panel) Generation() uint64 {
	return p.gen
}
