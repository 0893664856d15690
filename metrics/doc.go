// Package metrics implements the event broker add-ons use to report
// usage events.
//
// A broker is constructed once with the add-on's identity and fans
// every submitted event out to the client channel and, when a tracking
// id is configured, to the remote analytics collector:
//
//	broker, err := metrics.New(metrics.Config{
//	    ID:         "my-addon@example.com",
//	    Version:    "1.0.2",
//	    UID:        storedClientID,
//	    TrackingID: "UA-XXXXX-Y",
//	})
//	if err != nil {
//	    // configuration or transport fault; the broker is unusable
//	}
//	broker.SendEvent(ctx, metrics.Event{Method: "click", Object: "home-button"})
//
// SendEvent never fails: delivery is best-effort and every internal
// fault degrades to dropping the affected sink's message.
package metrics
