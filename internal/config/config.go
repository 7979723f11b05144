package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores allocation service settings.
type Config struct {
	Port       int
	DB         DB
	Kafka      Kafka
	Allocation Allocation
	RateLimit  RateLimit
	Pprof      Pprof
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a Postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Kafka stores broker and topic settings. Empty brokers disable both the
// order-events consumer and the notification producer.
type Kafka struct {
	Brokers     []string
	OrdersTopic string
	NotifyTopic string
	GroupID     string
}

// Allocation stores matching and ETA settings.
type Allocation struct {
	DefaultRadiusKm  float64
	SpeedKmh         float64
	PrepBuffer       time.Duration
	OperationTimeout time.Duration
}

// RateLimit stores vendor location-update throttling settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores pprof endpoint settings.
type Pprof struct {
	Enabled bool
	Port    int
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       envInt("PORT", DefaultPort()),
		DB:         loadDB(),
		Kafka:      loadKafka(),
		Allocation: loadAllocation(),
		RateLimit:  loadRateLimit(),
		Pprof:      loadPprof(),
	}

	fs := pflag.NewFlagSet("service-allocation", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-test.") {
			continue
		}
		args = append(args, a)
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Allocation.SpeedKmh <= 0 {
		return nil, fmt.Errorf("invalid delivery speed: %v", cfg.Allocation.SpeedKmh)
	}
	if cfg.Allocation.DefaultRadiusKm <= 0 {
		return nil, fmt.Errorf("invalid default radius: %v", cfg.Allocation.DefaultRadiusKm)
	}
	return cfg, nil
}

func loadDB() DB {
	def := DefaultDB()
	return DB{
		Host: envStr("POSTGRES_HOST", def.Host),
		Port: envStr("POSTGRES_PORT", def.Port),
		User: envStr("POSTGRES_USER", def.User),
		Pass: envStr("POSTGRES_PASSWORD", def.Pass),
		Name: envStr("POSTGRES_DB", def.Name),
	}
}

func loadKafka() Kafka {
	def := DefaultKafka()
	return Kafka{
		Brokers:     envList("KAFKA_BROKERS", def.Brokers),
		OrdersTopic: envStr("KAFKA_ORDERS_TOPIC", def.OrdersTopic),
		NotifyTopic: envStr("KAFKA_NOTIFY_TOPIC", def.NotifyTopic),
		GroupID:     envStr("KAFKA_GROUP_ID", def.GroupID),
	}
}

func loadAllocation() Allocation {
	def := DefaultAllocation()
	return Allocation{
		DefaultRadiusKm:  envFloat("ALLOCATION_DEFAULT_RADIUS_KM", def.DefaultRadiusKm),
		SpeedKmh:         envFloat("ALLOCATION_SPEED_KMH", def.SpeedKmh),
		PrepBuffer:       envDuration("ALLOCATION_PREP_BUFFER", def.PrepBuffer),
		OperationTimeout: envDuration("ALLOCATION_OPERATION_TIMEOUT", def.OperationTimeout),
	}
}

func loadRateLimit() RateLimit {
	def := DefaultRateLimit()
	return RateLimit{
		Enabled:    envBool("RATE_LIMIT_ENABLED", def.Enabled),
		Rate:       envFloat("RATE_LIMIT_RATE", def.Rate),
		Burst:      envInt("RATE_LIMIT_BURST", def.Burst),
		TTL:        envDuration("RATE_LIMIT_TTL", def.TTL),
		MaxBuckets: envInt("RATE_LIMIT_MAX_BUCKETS", def.MaxBuckets),
	}
}

func loadPprof() Pprof {
	def := DefaultPprof()
	return Pprof{
		Enabled: envBool("PPROF_ENABLED", def.Enabled),
		Port:    envInt("PPROF_PORT", def.Port),
		User:    envStr("PPROF_USER", def.User),
		Pass:    envStr("PPROF_PASS", def.Pass),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
