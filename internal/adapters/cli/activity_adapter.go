package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/gridboard/internal/ports/primary"
)

// ActivityAdapter prints the board activity log.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{
		service: service,
		out:     out,
	}
}

// List prints recent activity, optionally limited to one entity.
func (a *ActivityAdapter) List(ctx context.Context, entityID string, limit int) ([]*primary.Activity, error) {
	activity, err := a.service.ListActivity(ctx, primary.ActivityFilters{
		EntityID: entityID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	if len(activity) == 0 {
		fmt.Fprintln(a.out, "No activity recorded.")
		return activity, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tACTOR\tACTION\tENTITY\tCHANGE")
	fmt.Fprintln(w, "--\t----\t-----\t------\t------\t------")

	for _, entry := range activity {
		actor := entry.ActorID
		if actor == "" {
			actor = "-"
		}
		change := ""
		if entry.FieldName != "" {
			change = fmt.Sprintf("%s: %q → %q", entry.FieldName, entry.OldValue, entry.NewValue)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			entry.ID,
			entry.CreatedAt,
			actor,
			entry.Action,
			entry.EntityType,
			entry.EntityID,
			change,
		)
	}

	w.Flush()
	return activity, nil
}
