// Package metrics implements chat server counters over Prometheus
// collectors and exposes the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chat - Prometheus-backed implementation of the chat.Metrics interface.
type Chat struct {
	connections prometheus.Gauge
	rooms       prometheus.Gauge
	broadcasts  prometheus.Counter
	delivered   prometheus.Counter
	dropped     prometheus.Counter
}

// NewChat - builds and registers chat collectors at reg, typically
// prometheus.DefaultRegisterer.
func NewChat(reg prometheus.Registerer) *Chat {
	factory := promauto.With(reg)
	return &Chat{
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "roomchat",
			Name:      "connections_active",
			Help:      "Number of currently connected clients.",
		}),
		rooms: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "roomchat",
			Name:      "rooms_active",
			Help:      "Number of currently registered rooms.",
		}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "roomchat",
			Name:      "broadcasts_total",
			Help:      "Total number of chat messages broadcast to rooms.",
		}),
		delivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "roomchat",
			Name:      "deliveries_total",
			Help:      "Total number of per-member message deliveries.",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "roomchat",
			Name:      "dropped_deliveries_total",
			Help:      "Total number of per-member deliveries dropped for stalled clients.",
		}),
	}
}

// ConnOpened - counts one accepted client connection.
func (c *Chat) ConnOpened() { c.connections.Inc() }

// ConnClosed - counts one released client connection.
func (c *Chat) ConnClosed() { c.connections.Dec() }

// RoomCreated - counts one room installed into the directory.
func (c *Chat) RoomCreated() { c.rooms.Inc() }

// RoomRemoved - counts one room dropped from the directory.
func (c *Chat) RoomRemoved() { c.rooms.Dec() }

// MessageBroadcast - counts one broadcast with its per-member outcome.
func (c *Chat) MessageBroadcast(delivered, dropped int) {
	c.broadcasts.Inc()
	c.delivered.Add(float64(delivered))
	c.dropped.Add(float64(dropped))
}

// Handler - exposes metrics of the default registry in Prometheus text
// format.
func Handler() http.Handler {
	return promhttp.Handler()
}
