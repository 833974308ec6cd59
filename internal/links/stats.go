package links

import "context"

// Stats summarizes recorded visits for a shortcut.
type Stats struct {
	Shortcut    string `json:"shortcut"`
	TotalClicks int64  `json:"totalClicks"`
	Note        string `json:"note,omitempty"`
}

// StatsReader supplies visit stats for a shortcut. The registry only
// attaches the summary; producing real numbers is the analytics side's job.
type StatsReader interface {
	Stats(ctx context.Context, shortcut string) (Stats, error)
}

// ZeroStats reports zero visits for every shortcut. Real counting would
// query the analytics event store, which is not wired into the registry.
type ZeroStats struct{}

func (ZeroStats) Stats(_ context.Context, shortcut string) (Stats, error) {
	return Stats{
		Shortcut:    shortcut,
		TotalClicks: 0,
		Note:        "visit counting requires querying the analytics store",
	}, nil
}
