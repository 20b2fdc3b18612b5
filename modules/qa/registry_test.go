package qa_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qanda/modules/qa"
	"github.com/dmitrymomot/qanda/pkg/form"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		r := qa.NewRegistry(2, 0, nil)
		inst := &qa.Instance{ID: qa.NewID(), Def: qa.AskFormDef, Form: form.New(qa.AskFormDef.Rules, nil)}
		r.Put(inst)

		got, ok := r.Get(inst.ID)
		require.True(t, ok)
		assert.Same(t, inst, got)

		_, ok = r.Get("")
		assert.False(t, ok)
	})

	t.Run("bounded by capacity", func(t *testing.T) {
		t.Parallel()
		r := qa.NewRegistry(2, 0, nil)
		ids := make([]string, 3)
		for i := range ids {
			ids[i] = qa.NewID()
			r.Put(&qa.Instance{ID: ids[i], Form: form.New(nil, nil)})
		}
		assert.Equal(t, 2, r.Len())
		_, ok := r.Get(ids[0])
		assert.False(t, ok)
	})

	t.Run("ping without ttl", func(t *testing.T) {
		t.Parallel()
		r := qa.NewRegistry(1, 0, nil)
		assert.NoError(t, r.Ping(context.Background()))
	})

	t.Run("ping reflects janitor", func(t *testing.T) {
		t.Parallel()
		r := qa.NewRegistry(1, time.Minute, nil)
		assert.ErrorIs(t, r.Ping(context.Background()), qa.ErrJanitorStopped)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Run(ctx)
			close(done)
		}()
		assert.Eventually(t, func() bool { return r.Ping(context.Background()) == nil }, time.Second, 5*time.Millisecond)

		cancel()
		<-done
		assert.ErrorIs(t, r.Ping(context.Background()), qa.ErrJanitorStopped)
	})
}
