// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"
)

// countingWorker counts how many times Serve was started.
type countingWorker struct {
	name   string
	starts atomic.Int32
}

func (w *countingWorker) Serve(ctx context.Context) error {
	w.starts.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (w *countingWorker) String() string {
	return w.name
}

func TestWorkers_AddTo_StartsAllWorkers(t *testing.T) {
	w1 := &countingWorker{name: "one"}
	w2 := &countingWorker{name: "two"}
	w3 := &countingWorker{name: "three"}

	sup := suture.NewSimple("test")
	NewWorkers(w1, w2, w3).AddTo(sup)

	ctx, cancel := context.WithCancel(context.Background())
	errs := sup.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		return w1.starts.Load() == 1 && w2.starts.Load() == 1 && w3.starts.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}

func TestWorkers_AddTo_Empty(t *testing.T) {
	sup := suture.NewSimple("test")

	// nothing to add
	NewWorkers().AddTo(sup)
	(&Workers{}).AddTo(sup)
}

func TestWorkers_Names_Order(t *testing.T) {
	ws := NewWorkers(
		&countingWorker{name: "batcher"},
		&countingWorker{name: "cleanup"},
		&countingWorker{name: "live-hub"},
	)

	assert.Equal(t, []string{"batcher", "cleanup", "live-hub"}, ws.Names())
}

func TestWorkers_ImplementWorker(t *testing.T) {
	var _ Worker = (*Batcher)(nil)
	var _ Worker = (*WebhookDispatcher)(nil)
	var _ Worker = (*AlertEvaluator)(nil)
	var _ Worker = (*Cleanup)(nil)
}
