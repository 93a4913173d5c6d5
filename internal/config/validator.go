package config

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarpardhi/payhook/internal/condition"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

// Validate checks the config for:
//   - Required fields and duplicate route/action IDs
//   - Unknown families, predicate operators and unparsable when expressions
//   - Dead-letter driver settings
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	switch cfg.DeadLetter.Driver {
	case "memory":
	case "redis":
		if cfg.DeadLetter.RedisURL == "" {
			errs = append(errs, "dead_letter: redis_url is required for the redis driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("dead_letter: unknown driver %q", cfg.DeadLetter.Driver))
	}
	if cfg.Receiver.MaxBatch < 0 || cfg.Receiver.MaxBatch > 100 {
		errs = append(errs, fmt.Sprintf("receiver: max_batch must not exceed 100, got %d", cfg.Receiver.MaxBatch))
	}

	ids := make(map[string]string) // id → location
	for i, rt := range cfg.Routes {
		if rt.ID == "" {
			errs = append(errs, fmt.Sprintf("routes[%d]: id is required", i))
			continue
		}
		loc := fmt.Sprintf("route %s", rt.ID)
		if prev, ok := ids[rt.ID]; ok {
			errs = append(errs, fmt.Sprintf("duplicate id %q (first seen at %s, again at %s)", rt.ID, prev, loc))
		} else {
			ids[rt.ID] = loc
		}
		if len(rt.EventTypes) == 0 && len(rt.Families) == 0 {
			errs = append(errs, fmt.Sprintf("%s: one of event_types or families must be set", loc))
		}
		for _, pattern := range rt.EventTypes {
			if err := checkPattern(pattern); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", loc, err))
			}
		}
		for _, f := range rt.Families {
			if !event.IsFamily(f) {
				errs = append(errs, fmt.Sprintf("%s: unknown family %q", loc, f))
			}
		}
		for j, p := range rt.Where {
			if p.Path == "" {
				errs = append(errs, fmt.Sprintf("%s.where[%d]: path is required", loc, j))
			}
			if !condition.Valid(condition.Operator(p.Op)) {
				errs = append(errs, fmt.Sprintf("%s.where[%d]: unknown op %q", loc, j, p.Op))
			}
		}
		if rt.When != "" {
			if _, err := condition.Parse(rt.When); err != nil {
				errs = append(errs, fmt.Sprintf("%s.when: %v", loc, err))
			}
		}
		if len(rt.Actions) == 0 {
			errs = append(errs, fmt.Sprintf("%s: at least one action is required", loc))
		}
		for j, a := range rt.Actions {
			if a.ID == "" {
				errs = append(errs, fmt.Sprintf("%s.actions[%d]: id is required", loc, j))
				continue
			}
			aloc := fmt.Sprintf("action %s", a.ID)
			if prev, ok := ids[a.ID]; ok {
				errs = append(errs, fmt.Sprintf("duplicate id %q (first seen at %s, again at %s)", a.ID, prev, aloc))
			} else {
				ids[a.ID] = aloc
			}
			if a.Type == "" {
				errs = append(errs, fmt.Sprintf("%s: type is required", aloc))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func checkPattern(p string) error {
	switch {
	case p == "*":
		return nil
	case p == "":
		return fmt.Errorf("empty event type pattern")
	case strings.Contains(strings.TrimSuffix(p, ".*"), "*"):
		return fmt.Errorf("event type pattern %q: only a trailing .* wildcard is supported", p)
	}
	return nil
}
