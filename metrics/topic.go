package metrics

// SentinelID is the Test Pilot add-on's own id. It publishes on its own
// topic regardless of add-on type.
const SentinelID = "@testpilot-addon"

// Fixed client channel names.
const (
	// TopicTestPilot is the channel the Test Pilot add-on itself uses.
	TopicTestPilot = "testpilot"
	// TopicTelemetry is the broadcast channel for webextension add-ons.
	TopicTelemetry = "testpilot-telemetry"
	// TopicNotification is the notification event name for sdk and
	// bootstrapped add-ons.
	TopicNotification = "testpilot::send-metric"
)

// TopicFor derives the client channel name from the add-on identity.
// The result never changes for a given broker.
func TopicFor(id string, typ AddonType) string {
	switch {
	case id == SentinelID:
		return TopicTestPilot
	case typ == TypeWebExtension:
		return TopicTelemetry
	default:
		return TopicNotification
	}
}
