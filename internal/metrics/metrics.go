// Package metrics collects per-tick observations from the frame loop
// for run summaries and post-hoc plotting.
package metrics

import "github.com/san-kum/emberstrip/internal/fire"

// Metric accumulates one scalar across a run.
type Metric interface {
	Name() string
	Observe(frame fire.Frame, tick int)
	Value() float64
	Reset()
}

// MeanLuma tracks the average frame intensity over the run.
type MeanLuma struct {
	total   float64
	samples int
}

func NewMeanLuma() *MeanLuma { return &MeanLuma{} }

func (m *MeanLuma) Name() string { return "mean_luma" }

func (m *MeanLuma) Observe(frame fire.Frame, tick int) {
	m.total += frame.Luma()
	m.samples++
}

func (m *MeanLuma) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanLuma) Reset() {
	m.total = 0
	m.samples = 0
}

// LitFraction tracks the average share of non-black cells per frame.
type LitFraction struct {
	total   float64
	samples int
}

func NewLitFraction() *LitFraction { return &LitFraction{} }

func (l *LitFraction) Name() string { return "lit_fraction" }

func (l *LitFraction) Observe(frame fire.Frame, tick int) {
	if len(frame) == 0 {
		return
	}
	lit := 0
	for _, c := range frame {
		if c.R != 0 || c.G != 0 || c.B != 0 {
			lit++
		}
	}
	l.total += float64(lit) / float64(len(frame))
	l.samples++
}

func (l *LitFraction) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.total / float64(l.samples)
}

func (l *LitFraction) Reset() {
	l.total = 0
	l.samples = 0
}

// PeakLuma tracks the brightest frame seen.
type PeakLuma struct {
	peak float64
}

func NewPeakLuma() *PeakLuma { return &PeakLuma{} }

func (p *PeakLuma) Name() string { return "peak_luma" }

func (p *PeakLuma) Observe(frame fire.Frame, tick int) {
	if l := frame.Luma(); l > p.peak {
		p.peak = l
	}
}

func (p *PeakLuma) Value() float64 { return p.peak }

func (p *PeakLuma) Reset() { p.peak = 0 }

// Recorder adapts a metric set into a loop observer and keeps the full
// per-tick series for storage.
type Recorder struct {
	metrics []Metric
	series  [][]float64
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{metrics: metrics}
}

func (r *Recorder) Metrics() []Metric { return r.metrics }

// Series returns one row per tick, columns in metric order.
func (r *Recorder) Series() [][]float64 { return r.series }

func (r *Recorder) Observe(frame fire.Frame, tick int) {
	row := make([]float64, len(r.metrics))
	for i, m := range r.metrics {
		m.Observe(frame, tick)
		row[i] = m.Value()
	}
	r.series = append(r.series, row)
}

// Summary returns final metric values keyed by name.
func (r *Recorder) Summary() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
