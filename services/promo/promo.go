package promo

import (
	"fmt"
	"sync"
	"time"

	"motorhub/models"
)

// Registry tracks the countdown state of time-limited promotions. A
// promotion counts down from its configured duration to zero; at zero
// it deactivates and stays inactive until an explicit Reset. There is
// no implicit restart.
type Registry struct {
	mu     sync.Mutex
	promos map[string]*models.Promotion
	now    func() time.Time
}

// NewRegistry builds a registry. A nil clock defaults to time.Now;
// tests inject a fake clock.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		promos: make(map[string]*models.Promotion),
		now:    now,
	}
}

// Load registers the promotions from a catalog snapshot. A promotion
// arriving active without a deadline starts its countdown now. Already
// known promotions keep their running countdown so a feed refresh never
// restarts a clock.
func (r *Registry) Load(promos []models.Promotion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range promos {
		if existing, ok := r.promos[p.ID]; ok {
			existing.Name = p.Name
			existing.Kind = p.Kind
			existing.Duration = p.Duration
			continue
		}
		cp := p
		if cp.Active && cp.EndsAt.IsZero() {
			cp.EndsAt = r.now().Add(cp.Duration)
		}
		r.promos[cp.ID] = &cp
	}
}

// Active reports whether the promotion's discount currently applies.
// Expiry observed here is recorded so the promotion does not flip back.
func (r *Registry) Active(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.promos[id]
	if !ok || !p.Active {
		return false
	}
	if !r.now().Before(p.EndsAt) {
		p.Active = false
		return false
	}
	return true
}

// Remaining returns the time left on the countdown, clamped at zero.
func (r *Registry) Remaining(id string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.promos[id]
	if !ok || !p.Active {
		return 0
	}
	left := p.EndsAt.Sub(r.now())
	if left < 0 {
		return 0
	}
	return left
}

// Expire marks the promotion inactive. The expiry worker calls this
// when the scheduled deadline task fires.
func (r *Registry) Expire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.promos[id]
	if !ok || !p.Active {
		return false
	}
	p.Active = false
	return true
}

// Reset restarts the countdown from the configured duration. This is
// the only way an expired promotion comes back.
func (r *Registry) Reset(id string) (models.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.promos[id]
	if !ok {
		return models.Promotion{}, fmt.Errorf("unknown promotion %q", id)
	}
	p.EndsAt = r.now().Add(p.Duration)
	p.Active = true
	return *p, nil
}

// Status is a promotion joined with its rendered countdown.
type Status struct {
	models.Promotion
	Remaining string `json:"remaining"`
}

// List returns all promotions with their countdown state.
func (r *Registry) List() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, 0, len(r.promos))
	for _, p := range r.promos {
		left := time.Duration(0)
		if p.Active {
			left = p.EndsAt.Sub(r.now())
			if left < 0 {
				left = 0
				p.Active = false
			}
		}
		out = append(out, Status{Promotion: *p, Remaining: FormatMMSS(left)})
	}
	return out
}

// FormatMMSS renders a countdown as MM:SS, clamped at zero.
func FormatMMSS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
