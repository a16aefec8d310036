// Package insight produces the short narrative shown under each dashboard chart.
//
// The only Service today is Mock, which waits a fixed delay and returns one of
// two canned narratives. Work runs on a Task so callers can dispose of it when
// the owning panel goes away; Panel tracks the loading/text state and drops
// results that arrive for a superseded or torn-down invocation.
package insight

import (
	"context"
	"errors"
	"time"
)

// DefaultDelay is the simulated analysis latency.
const DefaultDelay = 1500 * time.Millisecond

// ErrUnavailable is returned when no insight service is configured.
var ErrUnavailable = errors.New("insight service unavailable")

const (
	revenueTitle = "Revenue Trends"

	revenueNarrative  = "Profit spiked dramatically in March, far outpacing revenue growth, suggesting a highly profitable sale or event. However, revenue in May saw a significant dip. It would be wise to investigate the cause of both anomalies."
	categoryNarrative = "Electronics is the dominant category, contributing significantly to sales. Groceries and Clothing are performing equally, indicating stable, diverse revenue streams."
)

// Request identifies what to analyze.
type Request struct {
	Title   string
	Dataset string
}

// Service analyzes a dataset and returns a narrative.
type Service interface {
	Analyze(ctx context.Context, req Request) (string, error)
}

// Mock is a Service that answers from canned text after Delay.
type Mock struct {
	Delay time.Duration
}

// Analyze waits for the configured delay, then returns the narrative for the
// request title. It only fails when ctx is done first.
func (m Mock) Analyze(ctx context.Context, req Request) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}
	return Narrative(req.Title), nil
}

// Narrative returns the canned text for a chart title.
func Narrative(title string) string {
	if title == revenueTitle {
		return revenueNarrative
	}
	return categoryNarrative
}
