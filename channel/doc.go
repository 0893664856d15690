// Package channel provides the client-side delivery strategies for the
// metrics broker.
//
// A webextension broker publishes structured payloads on a broadcast
// channel keyed by its topic. sdk and bootstrapped brokers JSON-serialize
// each payload and publish the string through the environment
// notification service, with the broker id as the notification subject.
// The Environment interface abstracts the host capabilities both paths
// depend on; the in-process implementation backs tests and embedded use.
package channel
