package stats

import "time"

// ArrivalStatistics follows the spacing between successive arrivals.
// Intervals are in seconds.
type ArrivalStatistics struct {
	FirstArrival  time.Time
	LastArrival   time.Time
	NumArrivals   uint64
	IntervalStats *Welford
}

func NewArrivalStatistics() *ArrivalStatistics {
	return &ArrivalStatistics{
		NumArrivals:   0,
		IntervalStats: NewWelford(),
	}
}

func (arrivals *ArrivalStatistics) Append(timestamp time.Time) {
	if arrivals.NumArrivals == 0 {
		arrivals.FirstArrival = timestamp
	} else {
		interval := timestamp.Sub(arrivals.LastArrival)
		arrivals.IntervalStats.Update(interval.Seconds())
	}

	arrivals.NumArrivals++
	arrivals.LastArrival = timestamp
}

// Elapsed is the time between the first and the last arrival.
func (arrivals *ArrivalStatistics) Elapsed() time.Duration {
	if arrivals.NumArrivals == 0 {
		return 0
	}
	return arrivals.LastArrival.Sub(arrivals.FirstArrival)
}
