package domain

// StatusSummary is what the dashboards render: per-status counts over the
// closed status set plus the two attention badges.
type StatusSummary struct {
	Counts               map[Status]int `json:"counts"`
	Total                int            `json:"total"`
	PendingCancellations int            `json:"pending_cancellations"`
	AwaitingReview       int            `json:"awaiting_review"`
}

// Summarize folds over the collection from scratch on every call. Empty
// buckets are reported as zero. Nothing here is cached; incremental totals
// drift when an update is missed, a full recount cannot.
func Summarize(events []*Event) StatusSummary {
	s := StatusSummary{Counts: make(map[Status]int, len(AllStatuses))}
	for _, st := range AllStatuses {
		s.Counts[st] = 0
	}
	for _, e := range events {
		s.Counts[e.Status]++
		s.Total++
		if e.Pending != nil && e.Pending.Kind == RequestCancellation {
			s.PendingCancellations++
		}
		if e.Status == StatusSubmitted && (e.Pending == nil || e.Pending.Kind != RequestCancellation) {
			s.AwaitingReview++
		}
	}
	return s
}
