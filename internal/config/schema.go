package config

// Config is the top-level YAML structure of the receiver.
type Config struct {
	Version    string         `yaml:"version"`
	Receiver   ReceiverConf   `yaml:"receiver"`
	DeadLetter DeadLetterConf `yaml:"dead_letter"`
	Routes     []Route        `yaml:"routes"`
}

// ReceiverConf holds decoding mode and concurrency settings.
type ReceiverConf struct {
	Strict         bool  `yaml:"strict"` // reject unknown types and mismatched payloads
	EventWorkers   int   `yaml:"event_workers"`
	QueueDepth     int   `yaml:"queue_depth"`
	EventTimeoutMs int   `yaml:"event_timeout_ms"`
	MaxBodyBytes   int64 `yaml:"max_body_bytes"`
	MaxBatch       int   `yaml:"max_batch"`
}

// DeadLetterConf selects where undecodable deliveries are kept.
type DeadLetterConf struct {
	Driver   string `yaml:"driver"` // "memory" or "redis"
	RedisURL string `yaml:"redis_url"`
	Key      string `yaml:"key"`
	MaxLen   int64  `yaml:"max_len"`
}

// Route selects events by type, family and payload predicates and runs its
// actions on every match.
type Route struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Enabled     bool        `yaml:"enabled"`
	EventTypes  []string    `yaml:"event_types"` // exact, "prefix.*" or "*"
	Families    []string    `yaml:"families"`    // empty = all families
	Where       []Predicate `yaml:"where"`
	When        string      `yaml:"when"` // condition expression, ANDed with Where
	Actions     []ActionDef `yaml:"actions"`
}

// Predicate compares the member at Path of data.object with Value.
type Predicate struct {
	Path  string      `yaml:"path"`
	Op    string      `yaml:"op"`
	Value interface{} `yaml:"value"`
}

// ActionDef names an executor and its parameters.
type ActionDef struct {
	ID     string                 `yaml:"id"`
	Type   string                 `yaml:"type"`
	Params map[string]interface{} `yaml:"params"`
}
