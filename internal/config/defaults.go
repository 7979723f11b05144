package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "aquadrop",
	Pass: "aquadrop",
	Name: "aquadrop",
}

var defaultKafka = Kafka{
	Brokers:     nil,
	OrdersTopic: "order.placed",
	NotifyTopic: "vendor.notifications",
	GroupID:     "allocation-worker",
}

var defaultAllocation = Allocation{
	DefaultRadiusKm:  10,
	SpeedKmh:         30,
	PrepBuffer:       5 * time.Minute,
	OperationTimeout: 3 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       1, // one location update per second per vendor
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Port:    6060,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultAllocation returns the default matching and ETA settings.
func DefaultAllocation() Allocation {
	return defaultAllocation
}

// DefaultRateLimit returns the default location-update throttle settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
