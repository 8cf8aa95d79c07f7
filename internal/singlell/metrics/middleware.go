package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/linked-list/internal/singlell"
)

const (
	subsystem    = "list"
	listLabel    = "list"
	outcomeLabel = "outcome"
)

type metricMiddleware[T comparable] struct {
	name string
	next singlell.LinkedList[T]

	addsTotal    *prometheus.CounterVec
	removesTotal *prometheus.CounterVec
	length       *prometheus.GaugeVec
}

func (m *metricMiddleware[T]) Add(v T) {
	m.next.Add(v)

	m.addsTotal.WithLabelValues(m.name).Inc()
	m.length.WithLabelValues(m.name).Set(float64(m.next.Len()))
}

func (m *metricMiddleware[T]) Remove(v T) error {
	err := m.next.Remove(v)

	m.removesTotal.WithLabelValues(m.name, singlell.OutcomeOf(err).String()).Inc()
	m.length.WithLabelValues(m.name).Set(float64(m.next.Len()))

	return err
}

func (m *metricMiddleware[T]) Print(p singlell.Printer) error {
	return m.next.Print(p)
}

func (m *metricMiddleware[T]) Len() int {
	return m.next.Len()
}

func (m *metricMiddleware[T]) Head() (T, bool) {
	return m.next.Head()
}

func (m *metricMiddleware[T]) Tail() (T, bool) {
	return m.next.Tail()
}

func (m *metricMiddleware[T]) Values() []T {
	return m.next.Values()
}

func (m *metricMiddleware[T]) Range(fn func(v T) bool) {
	m.next.Range(fn)
}

// NewMetricMiddleware counts add and remove calls on next and tracks its length.
// The collectors are registered on reg, so namespace and name must be unique per registry.
func NewMetricMiddleware[T comparable](
	namespace, name string,
	next singlell.LinkedList[T],
	reg prometheus.Registerer,
) singlell.LinkedList[T] {
	adds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "adds_total",
		Help:      "Appended values counter",
	}, []string{listLabel})

	removes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "removes_total",
		Help:      "Remove calls counter by outcome",
	}, []string{listLabel, outcomeLabel})

	length := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "length",
		Help:      "Current number of values in the list",
	}, []string{listLabel})

	reg.MustRegister(adds, removes, length)

	length.WithLabelValues(name).Set(float64(next.Len()))

	return &metricMiddleware[T]{
		name:         name,
		next:         next,
		addsTotal:    adds,
		removesTotal: removes,
		length:       length,
	}
}
