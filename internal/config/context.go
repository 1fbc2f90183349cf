package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrContextNotFound is returned when a named context is not configured.
	ErrContextNotFound = errors.New("context not found")

	// ErrNoContexts is returned when an operation needs at least one configured context.
	ErrNoContexts = errors.New("no contexts configured")
)

// GetCurrentContext returns the current active context. Both return values are empty when no
// context is selected.
func GetCurrentContext() (*Context, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentContext == "" {
		return nil, "", nil
	}

	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrContextNotFound, cfg.CurrentContext)
	}

	return ctx, cfg.CurrentContext, nil
}

// GetContext returns the named context.
func GetContext(name string) (*Context, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	ctx, ok := cfg.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}
	return ctx, nil
}

// SetCurrentContext sets the current active context
func SetCurrentContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Contexts) == 0 {
		return ErrNoContexts
	}
	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}

	cfg.CurrentContext = name
	return SaveConfig(cfg)
}

// AddContext adds or updates a context. The first context added becomes the current one.
func AddContext(name string, ctx *Context) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("context name must not be empty")
	}

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.Contexts[name] = ctx
	if cfg.CurrentContext == "" {
		cfg.CurrentContext = name
	}
	return SaveConfig(cfg)
}

// DeleteContext removes a context
func DeleteContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}
	delete(cfg.Contexts, name)

	if cfg.CurrentContext == name {
		cfg.CurrentContext = ""
	}

	return SaveConfig(cfg)
}

// ListContexts returns all configured contexts and the current context name.
func ListContexts() (map[string]*Context, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	return cfg.Contexts, cfg.CurrentContext, nil
}

// ContextNames returns the names of contexts in sorted order.
func ContextNames(contexts map[string]*Context) []string {
	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
