package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashcalc-project/hashcalc/pkg/model"
)

var keys = []string{
	"default_algorithm",
	"progress_enabled",
	"interface",
	"chunk.default",
	"chunk.ssd",
	"chunk.hdd",
	"medium.strategy",
	"medium.timeout",
	"logging.level",
	"logging.format",
}

// Keys returns the settable configuration keys.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Get returns the value of key as text. Unset values return "".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "default_algorithm":
		return c.DefaultAlgorithm, nil
	case "progress_enabled":
		if c.ProgressEnabled == nil {
			return "", nil
		}
		return strconv.FormatBool(*c.ProgressEnabled), nil
	case "interface":
		return c.Interface, nil
	case "chunk.default":
		return sizeString(c.Chunk.Default), nil
	case "chunk.ssd":
		return sizeString(c.Chunk.SSD), nil
	case "chunk.hdd":
		return sizeString(c.Chunk.HDD), nil
	case "medium.strategy":
		return c.Medium.Strategy, nil
	case "medium.timeout":
		return c.Medium.Timeout, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	}
	return "", unknownKey(key)
}

// Set parses value and assigns it to key. The resulting config is validated.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "default_algorithm":
		if value == "" {
			c.DefaultAlgorithm = ""
			break
		}
		alg, err := model.ParseAlgorithm(value)
		if err != nil {
			return err
		}
		c.DefaultAlgorithm = string(alg)
	case "progress_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("progress_enabled must be true or false: %w", err)
		}
		c.ProgressEnabled = &b
	case "interface":
		c.Interface = strings.ToLower(value)
	case "chunk.default", "chunk.ssd", "chunk.hdd":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative byte count", key)
		}
		switch key {
		case "chunk.default":
			c.Chunk.Default = n
		case "chunk.ssd":
			c.Chunk.SSD = n
		default:
			c.Chunk.HDD = n
		}
	case "medium.strategy":
		c.Medium.Strategy = strings.ToLower(value)
	case "medium.timeout":
		c.Medium.Timeout = value
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.format":
		c.Logging.Format = strings.ToLower(value)
	default:
		return unknownKey(key)
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch c.Interface {
	case "", "auto", "gui", "tui":
	default:
		return fmt.Errorf("invalid interface %q: must be auto, gui or tui", c.Interface)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q: must be text or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	if c.Medium.Timeout != "" {
		if d, err := time.ParseDuration(c.Medium.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid medium timeout %q", c.Medium.Timeout)
		}
	}
	return nil
}

func sizeString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(keys, ", "))
}
