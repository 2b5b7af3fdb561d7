// Package form orchestrates the profile form: it validates raw input,
// sequences the photo decode, and drives the store and the rendered views
// together so they never diverge.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

// Mode is the form state: creating a new profile or editing an existing
// one identified by its id.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ErrSubmitInFlight is returned when a submit arrives while a previous
// submit is still suspended in the photo decode. Submits are serialized;
// there is no queueing.
var ErrSubmitInFlight = errors.New("form: submit already in flight")

// Notifier receives the transient success notice after a commit.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// SuccessMessage is the wording every notice surface shows after a commit.
func SuccessMessage(p *profile.Profile) string {
	return fmt.Sprintf("Student %s %s (%s) saved successfully!", p.First, p.Last, p.StudentNo)
}

// Controller is the edit-mode state machine. All mutations flow through
// Commit and Remove, which keep the persisted collection and both rendered
// views consistent.
type Controller struct {
	store    store.Persistence
	renderer *render.Renderer
	decoder  photo.Decoder
	notifier Notifier

	mode     Mode
	editID   string
	inFlight atomic.Bool
}

func NewController(p store.Persistence, r *render.Renderer, d photo.Decoder, n Notifier) *Controller {
	if d == nil {
		d = photo.FileDecoder{}
	}
	return &Controller{store: p, renderer: r, decoder: d, notifier: n}
}

func (c *Controller) Mode() Mode { return c.mode }

// EditingID returns the edit target, or "" in create mode.
func (c *Controller) EditingID() string { return c.editID }

// SubmitLabel is the wording for the submit affordance in the current mode.
func (c *Controller) SubmitLabel() string {
	if c.mode == ModeEdit {
		return "Update Student"
	}
	return "Add Student"
}

// RenderStored projects the whole persisted collection into the views.
// Elements are inserted back-to-front so the final view order matches the
// stored newest-first order.
func (c *Controller) RenderStored(ctx context.Context) {
	all := c.store.LoadAll(ctx)
	for i := len(all) - 1; i >= 0; i-- {
		c.renderer.Insert(all[i])
		c.renderer.Settle(all[i].ID)
	}
}

// BeginEdit switches to edit mode targeting id and returns the stored
// values as form prefill. Invoking it while already editing retargets
// without saving the in-progress edit. An unknown id leaves the mode
// untouched and reports false.
func (c *Controller) BeginEdit(ctx context.Context, id string) (profile.RawInput, bool) {
	for _, p := range c.store.LoadAll(ctx) {
		if p.ID != id {
			continue
		}
		c.mode = ModeEdit
		c.editID = id
		return profile.RawInput{
			First:     p.First,
			Last:      p.Last,
			StudentNo: p.StudentNo,
			Email:     p.Email,
			Prog:      p.Prog,
			Year:      p.Year,
			Interests: append([]string(nil), p.Interests...),
		}, true
	}
	return profile.RawInput{}, false
}

// Cancel abandons any in-progress edit and returns to create mode.
func (c *Controller) Cancel() {
	c.mode = ModeCreate
	c.editID = ""
}

// Staged is a validated submit whose photo decode has completed. It
// holds the in-flight guard until Commit releases it, so a Staged must
// always be committed.
type Staged struct {
	profile *profile.Profile
	wasEdit bool
	editID  string
}

// Stage runs the slow half of a submit: validation and the photo decode.
// It touches neither the store nor the views, so it is safe to run off
// the goroutine that owns them. On any failure the guard is released and
// nothing has changed.
func (c *Controller) Stage(ctx context.Context, in profile.RawInput) (*Staged, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}

	p, ferrs := profile.Validate(in)
	if ferrs != nil {
		c.inFlight.Store(false)
		return nil, ferrs
	}

	st := &Staged{profile: p, wasEdit: c.mode == ModeEdit, editID: c.editID}

	if in.PhotoPath != "" {
		data, err := c.decoder.Decode(ctx, in.PhotoPath)
		if err != nil {
			c.inFlight.Store(false)
			return nil, fmt.Errorf("decoding photo: %w", err)
		}
		p.PhotoData = data
	}
	return st, nil
}

// Commit applies a staged submit: carry the prior photo forward on a
// photo-less edit, persist the collection, and mirror the change into
// both views. On success the controller resets to create mode and emits
// the success notice; on failure nothing is persisted or re-rendered and
// the mode is left as-is so the caller can retry with the same input.
// Must run on the goroutine that owns the store and the views.
func (c *Controller) Commit(ctx context.Context, st *Staged) (*profile.Profile, error) {
	defer c.inFlight.Store(false)

	p := st.profile
	wasEdit := st.wasEdit
	editID := st.editID

	// The collection is read after the decode completes, never before, so
	// a submit suspended in decoding cannot commit stale state.
	all := c.store.LoadAll(ctx)

	if p.PhotoData == "" && wasEdit {
		for _, old := range all {
			if old.ID == editID {
				p.PhotoData = old.PhotoData
				break
			}
		}
	}

	next := make([]profile.Profile, 0, len(all)+1)
	next = append(next, *p)
	for _, old := range all {
		// The new id is dropped in both modes: two records never share an id.
		if old.ID == p.ID || (wasEdit && old.ID == editID) {
			continue
		}
		next = append(next, old)
	}
	if err := c.store.SaveAll(ctx, next); err != nil {
		return nil, err
	}

	if wasEdit && editID != p.ID {
		// The student number changed under edit; the old projections go too.
		c.renderer.RemoveByID(editID)
	}
	if c.renderer.Has(p.ID) {
		c.renderer.Replace(*p)
	} else {
		c.renderer.Insert(*p)
	}

	c.mode = ModeCreate
	c.editID = ""
	if c.notifier != nil {
		c.notifier.Notify(SuccessMessage(p))
	}
	return p, nil
}

// Submit runs the full save sequence, Stage then Commit, on the calling
// goroutine.
func (c *Controller) Submit(ctx context.Context, in profile.RawInput) (*profile.Profile, error) {
	st, err := c.Stage(ctx, in)
	if err != nil {
		return nil, err
	}
	return c.Commit(ctx, st)
}

// Remove drops the profile from both views and persists the collection
// without it. Removing an unknown id changes nothing.
func (c *Controller) Remove(ctx context.Context, id string) error {
	c.renderer.RemoveByID(id)
	all := c.store.LoadAll(ctx)
	next := make([]profile.Profile, 0, len(all))
	for _, p := range all {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return c.store.SaveAll(ctx, next)
}
