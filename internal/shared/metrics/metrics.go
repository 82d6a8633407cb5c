package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	playbooksStartedTotal   atomic.Uint64
	playbooksGeneratedTotal atomic.Uint64
	playbooksFailedTotal    atomic.Uint64
	reportsParsedTotal      atomic.Uint64

	playbookDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncPlaybookStarted increments the started counter.
func IncPlaybookStarted() {
	playbooksStartedTotal.Add(1)
}

// IncPlaybookGenerated increments the generated counter.
func IncPlaybookGenerated() {
	playbooksGeneratedTotal.Add(1)
}

// IncPlaybookFailed increments the failed counter.
func IncPlaybookFailed() {
	playbooksFailedTotal.Add(1)
}

// IncReportsParsed counts report texts handed to the parser.
func IncReportsParsed(n int) {
	if n > 0 {
		reportsParsedTotal.Add(uint64(n))
	}
}

// ObservePlaybookDurationMs records a generation duration in milliseconds.
func ObservePlaybookDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	playbookDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "playbooks_started_total", "Total playbook generations started", playbooksStartedTotal.Load())
	writeCounter(&buf, "playbooks_generated_total", "Total playbooks generated", playbooksGeneratedTotal.Load())
	writeCounter(&buf, "playbooks_failed_total", "Total playbook generations failed", playbooksFailedTotal.Load())
	writeCounter(&buf, "reports_parsed_total", "Total reports parsed", reportsParsedTotal.Load())
	writeHistogram(&buf, "playbook_duration_ms", "Playbook generation duration in milliseconds", playbookDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts hold per-bucket hits; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
