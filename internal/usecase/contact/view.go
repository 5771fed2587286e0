package contact

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

// Listing is the rendered appointment view.
type Listing struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
	// Clash is true when any two shown contacts hold colliding slots.
	Clash bool `json:"clash"`
}

type ViewAppointmentsInput struct {
	UserID uint
	// Days is a comma or space separated list of day codes. Empty shows
	// every day.
	Days  string
	Query string
}

type ViewAppointments struct {
	deps Deps
}

func NewViewAppointments(deps Deps) *ViewAppointments {
	return &ViewAppointments{deps: deps.withDefaults()}
}

func (uc *ViewAppointments) Execute(ctx context.Context, in ViewAppointmentsInput) (*Listing, error) {
	filter, err := appointment.ParseDayFilter(in.Days)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(in.Query))
	key := filter.String() + "|" + query

	ver, err := uc.deps.Cache.Version(ctx, in.UserID)
	cacheOK := err == nil
	if err != nil {
		uc.deps.Log.Warn("listing cache version failed", "user_id", in.UserID, "error", err)
	}

	if cacheOK {
		if data, ok, err := uc.deps.Cache.Get(ctx, in.UserID, ver, key); err != nil {
			uc.deps.Log.Warn("listing cache get failed", "user_id", in.UserID, "error", err)
		} else if ok {
			var cached Listing
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	contacts, err := uc.deps.Repo.ListContacts(ctx, in.UserID, query)
	if err != nil {
		return nil, err
	}

	lines := domain.Lines(domain.ListAppointments(contacts, filter))
	if lines == nil {
		lines = []string{}
	}
	out := &Listing{
		Lines: lines,
		Text:  domain.FormatListing(lines),
		Clash: domain.HasClash(contacts),
	}

	if !cacheOK {
		return out, nil
	}
	if data, err := json.Marshal(out); err == nil {
		if err := uc.deps.Cache.Set(ctx, in.UserID, ver, key, data); err != nil {
			uc.deps.Log.Warn("listing cache set failed", "user_id", in.UserID, "error", err)
		}
	}

	return out, nil
}
