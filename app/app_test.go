package app

import (
	"context"
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/config"
	"github.com/stretchr/testify/assert"
)

func TestStopWithoutStart(t *testing.T) {
	a := New(&config.Config{})
	a.Stop(context.Background())
	a.Stop(context.Background())

	select {
	case <-a.Done():
	default:
		t.Fatal("done channel should be closed after stop")
	}
}

func TestStartFailsWithoutStore(t *testing.T) {
	c := &config.Config{}
	c.DB.DSN = "user:pass@tcp(127.0.0.1:1)/shop?parseTime=true&timeout=100ms"
	a := New(c)

	assert.Error(t, a.Start(context.Background()))
	a.Stop(context.Background())
}
