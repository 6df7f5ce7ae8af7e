package console

import (
	"context"
	"errors"
	"strings"

	"medha-admin/events"
	"medha-admin/models"
)

// ErrNoStagedEdit is returned by Save/Delete when no row is open.
var ErrNoStagedEdit = errors.New("no row is open for editing")

// StagedEdit is a working copy of one registrant. Field edits land here and
// reach the canonical list only after the backend confirms a save.
type StagedEdit struct {
	Registrant models.Registrant
}

// SetParticipant overwrites one existing participant slot. The event/slot
// structure itself is not editable, matching the panel form.
func (e *StagedEdit) SetParticipant(event, slot, name string) error {
	participants, ok := e.Registrant.EventDetails[event]
	if !ok {
		return errors.New("unknown event: " + event)
	}
	if _, ok := participants[slot]; !ok {
		return errors.New("unknown participant slot: " + slot)
	}
	participants[slot] = name
	return nil
}

// Console holds the panel's state: the fetched rows, the free-text filter
// and the currently staged edit.
type Console struct {
	client  *Client
	grouper *events.Grouper

	rows   []models.Registrant
	filter string
	staged *StagedEdit
}

func New(client *Client, grouper *events.Grouper) *Console {
	return &Console{
		client:  client,
		grouper: grouper,
	}
}

// Load fetches the full registrant list, replacing local state.
func (c *Console) Load(ctx context.Context) error {
	rows, err := c.client.FetchRegistrants(ctx)
	if err != nil {
		return err
	}
	c.rows = rows
	c.staged = nil
	return nil
}

func (c *Console) Rows() []models.Registrant {
	return c.rows
}

func (c *Console) SetFilter(filter string) {
	c.filter = filter
}

// FilteredRows returns the rows whose scalar fields contain the filter
// substring, case-insensitively, preserving list order. An empty filter
// matches everything.
func (c *Console) FilteredRows() []models.Registrant {
	if c.filter == "" {
		return c.rows
	}

	needle := strings.ToLower(c.filter)
	matched := []models.Registrant{}
	for _, row := range c.rows {
		fields := []string{
			row.Name,
			row.Phone,
			row.CollegeName,
			row.Course,
			row.TotalAmount,
			row.HodName,
			row.TransactionID,
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// Open clones the row with the given id into a staged edit.
func (c *Console) Open(id string) (*StagedEdit, error) {
	for _, row := range c.rows {
		if row.ID == id {
			snapshot := row
			snapshot.EventDetails = row.EventDetails.Clone()
			c.staged = &StagedEdit{Registrant: snapshot}
			return c.staged, nil
		}
	}
	return nil, ErrNotFound
}

func (c *Console) Staged() *StagedEdit {
	return c.staged
}

// Discard drops the staged edit without touching the canonical rows.
func (c *Console) Discard() {
	c.staged = nil
}

// Save commits the staged edit. The scalars plus the full reconstructed
// event map go to the backend; only the confirmed response is spliced back
// into the list. On failure the staged edit and the rows stay as they were.
func (c *Console) Save(ctx context.Context) error {
	if c.staged == nil {
		return ErrNoStagedEdit
	}

	r := c.staged.Registrant
	updated, err := c.client.UpdateRegistrant(ctx, models.UpdateRegistrantRequest{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		CollegeName:  r.CollegeName,
		Course:       r.Course,
		EventDetails: r.EventDetails,
	})
	if err != nil {
		return err
	}

	for i := range c.rows {
		if c.rows[i].ID == updated.ID {
			c.rows[i] = updated
			break
		}
	}
	c.staged = nil
	return nil
}

// Delete removes the staged row on the backend, then locally.
func (c *Console) Delete(ctx context.Context) error {
	if c.staged == nil {
		return ErrNoStagedEdit
	}

	id := c.staged.Registrant.ID
	if err := c.client.DeleteRegistrant(ctx, id); err != nil {
		return err
	}

	for i := range c.rows {
		if c.rows[i].ID == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			break
		}
	}
	c.staged = nil
	return nil
}

// GroupedEvents renders one registrant's participation map as the two
// display strings the table and the CSV share.
func (c *Console) GroupedEvents(r models.Registrant) (technical, cultural string) {
	tech, cult := c.grouper.Group(r.EventDetails)
	return events.FormatGroup(tech), events.FormatGroup(cult)
}
