package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

type nopHost struct {
	core.Host
	title string
}

func TestRegistry(t *testing.T) {
	errBroken := errors.New("broken")

	Register("test-ok", "working host", func(cfg config.Config) (core.Host, error) {
		return &nopHost{title: cfg.Host.Title}, nil
	})
	Register("test-broken", "failing host", func(config.Config) (core.Host, error) {
		return nil, errBroken
	})

	assert.True(t, Exists("test-ok"))
	assert.False(t, Exists("test-missing"))

	cfg := config.DefaultConfig()
	cfg.Host.Name = "test-ok"
	cfg.Host.Title = "Breakout"
	h, err := Create(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Breakout", h.(*nopHost).title)

	cfg.Host.Name = "test-broken"
	_, err = Create(cfg)
	assert.ErrorIs(t, err, errBroken)

	cfg.Host.Name = "test-missing"
	_, err = Create(cfg)
	assert.ErrorContains(t, err, `unknown host "test-missing"`)

	list := List()
	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, list, HostInfo{Name: "test-ok", Description: "working host"})
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.Config) (core.Host, error) { return nil, nil }
	Register("test-dup", "", f)
	assert.Panics(t, func() { Register("test-dup", "", f) })
}
