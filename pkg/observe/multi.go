package observe

import "context"

// Multi returns an Observer that forwards each event to every non-nil
// observer in order, analogous to io.MultiWriter.
func Multi(observers ...Observer) Observer {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return multi(filtered)
}

type multi []Observer

func (m multi) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m {
		obs.OnEvent(ctx, event)
	}
}
