package contact

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
	"github.com/BruksfildServices01/tutor-contacts/internal/logger"
)

// ClashWarning is returned alongside a created contact whose appointments
// collide with another contact's.
const ClashWarning = "This person's appointments clash with existing appointments"

// Deps bundles what every contact use case needs.
type Deps struct {
	Repo  domain.Repository
	Audit Auditor
	Cache ListingCache
	Log   *logger.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = NoopCache{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// afterWrite records the mutation and drops the owner's cached listings.
// A cache failure is logged, never returned.
func (d Deps) afterWrite(ctx context.Context, ev audit.Event) {
	d.record(ev)
	if err := d.Cache.Invalidate(ctx, ev.UserID); err != nil {
		d.Log.Warn("listing cache invalidate failed", "user_id", ev.UserID, "error", err)
	}
}

func (d Deps) record(ev audit.Event) {
	if d.Audit != nil {
		d.Audit.Dispatch(ev)
	}
}

func parseAppointments(raw []string) ([]appointment.Appointment, error) {
	out := make([]appointment.Appointment, 0, len(raw))
	for _, r := range raw {
		a, err := appointment.Parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func parseLevel(raw *string) (domain.Optional[domain.Level], error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return domain.None[domain.Level](), nil
	}
	l, err := domain.ParseLevel(*raw)
	if err != nil {
		return domain.None[domain.Level](), err
	}
	return domain.Some(l), nil
}

// optionalText maps nil and blank to empty.
func optionalText(raw *string) domain.Optional[string] {
	if raw == nil {
		return domain.None[string]()
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return domain.None[string]()
	}
	return domain.Some(v)
}

func entityID(id uint) *uint {
	return &id
}
