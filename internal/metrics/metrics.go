package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts successfully created bookings.
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trimly_bookings_created_total",
		Help: "Number of bookings created.",
	})

	// BookingsCancelled counts cancellations, by caller role.
	BookingsCancelled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trimly_bookings_cancelled_total",
		Help: "Number of bookings cancelled.",
	}, []string{"role"})

	// BookingsRescheduled counts successful reschedules.
	BookingsRescheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trimly_bookings_rescheduled_total",
		Help: "Number of bookings rescheduled.",
	})

	// SlotConflicts counts create/reschedule attempts rejected because
	// the requested slot overlapped an existing booking.
	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trimly_slot_conflicts_total",
		Help: "Number of booking attempts rejected due to slot conflicts.",
	})

	// SlotCacheHits tracks slot cache effectiveness.
	SlotCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trimly_slot_cache_requests_total",
		Help: "Slot cache lookups by result.",
	}, []string{"result"})

	// PastSweepMarked counts bookings flipped to past by the sweep.
	PastSweepMarked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trimly_past_sweep_marked_total",
		Help: "Number of bookings marked past by the sweep.",
	})
)
