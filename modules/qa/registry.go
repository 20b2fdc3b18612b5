package qa

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qanda/pkg/cache"
	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/logger"
)

// Instance is a live form bound to one page view.
type Instance struct {
	ID         string
	Def        FormDef
	Form       *form.Form
	QuestionID int
}

// Registry keeps live form instances in a bounded LRU with idle expiry.
// Evicted instances are gone: the page has to be reloaded.
type Registry struct {
	forms   *cache.LRUCache[string, *Instance]
	ttl     time.Duration
	running atomic.Bool
}

func NewRegistry(capacity int, idleTTL time.Duration, log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("form_registry"))
	return &Registry{
		ttl: idleTTL,
		forms: cache.NewLRUCache(capacity,
			cache.WithIdleTTL[string, *Instance](idleTTL),
			cache.WithEvictCallback(func(id string, _ *Instance, reason cache.EvictReason) {
				log.Debug("form instance evicted", logger.FormID(id), slog.String("reason", reason.String()))
			}),
		),
	}
}

// NewID returns a fresh instance id.
func NewID() string { return uuid.NewString() }

// Put stores inst under inst.ID.
func (r *Registry) Put(inst *Instance) {
	r.forms.Put(inst.ID, inst)
}

func (r *Registry) Get(id string) (*Instance, bool) {
	if id == "" {
		return nil, false
	}
	return r.forms.Get(id)
}

func (r *Registry) Len() int { return r.forms.Len() }

// Run purges expired instances until ctx is done. Without an idle TTL it
// returns immediately.
func (r *Registry) Run(ctx context.Context) {
	if r.ttl <= 0 {
		return
	}
	r.running.Store(true)
	defer r.running.Store(false)
	r.forms.RunJanitor(ctx, max(r.ttl/4, time.Second))
}

// Ping fails when instances can expire but nothing purges them.
func (r *Registry) Ping(context.Context) error {
	if r.ttl > 0 && !r.running.Load() {
		return ErrJanitorStopped
	}
	return nil
}
