// Package console holds the admin panel's workflow logic: the request
// lifecycle controller, the role capability table and the session gate.
// Rendering is someone else's job; this package owns state and
// transitions.
package console

import (
	"context"

	"permit-service-api/client"
)

// View names the list the panel is currently showing.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewIncoming   View = "permohonan-baru"
	ViewProcessing View = "permohonan-diproses"
	ViewHistory    View = "riwayat"
)

// State is the in-memory view state. Each field is refreshed independently;
// no other component mutates it.
type State struct {
	Statistics    *client.StatistikData
	Incoming      []client.PermohonanView
	Processing    []client.PermohonanView
	History       []client.PermohonanView
	Notifications []client.NotifikasiView
	UnreadCount   int64
}

// Controller drives the permit-request lifecycle from the admin's side.
// Every mutation is all-or-nothing: either the backend confirms and local
// state is refreshed, or the error is surfaced and local state stays
// untouched. There are no automatic retries.
type Controller struct {
	api *client.Client

	// StrictVerify controls the session gate's behavior on connectivity
	// failure: false tolerates it using the cached identity, true forces
	// re-login.
	StrictVerify bool

	state       State
	activeView  View
	lastMessage string
}

func NewController(api *client.Client) *Controller {
	return &Controller{
		api:        api,
		activeView: ViewDashboard,
	}
}

func (c *Controller) State() *State {
	return &c.state
}

func (c *Controller) ActiveView() View {
	return c.activeView
}

func (c *Controller) Navigate(view View) {
	c.activeView = view
}

// LastMessage returns the most recent user-visible feedback.
func (c *Controller) LastMessage() string {
	return c.lastMessage
}

// Refresh refetches every piece of view state. The fetches are independent
// and each failure only leaves its own slice stale.
func (c *Controller) Refresh(ctx context.Context) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	stats, err := c.api.Statistics(ctx)
	keep(err)
	if err == nil {
		c.state.Statistics = stats
	}

	for _, load := range []struct {
		status string
		target *[]client.PermohonanView
	}{
		{"baru", &c.state.Incoming},
		{"diproses", &c.state.Processing},
	} {
		data, err := c.api.RequestsByStatus(ctx, load.status)
		keep(err)
		if err == nil {
			*load.target = client.MapPermohonanList(data)
		}
	}

	history := make([]client.PermohonanView, 0)
	historyOK := true
	for _, status := range []string{"disetujui", "ditolak"} {
		data, err := c.api.RequestsByStatus(ctx, status)
		keep(err)
		if err != nil {
			historyOK = false
			continue
		}
		history = append(history, client.MapPermohonanList(data)...)
	}
	if historyOK {
		c.state.History = history
	}

	notifications, err := c.api.ListNotifications(ctx, false)
	keep(err)
	if err == nil {
		views := make([]client.NotifikasiView, 0, len(notifications))
		for _, n := range notifications {
			views = append(views, client.MapNotifikasi(n))
		}
		c.state.Notifications = views
	}

	count, err := c.api.CountUnreadNotifications(ctx)
	keep(err)
	if err == nil {
		c.state.UnreadCount = count
	}

	return firstErr
}

// findInState looks a request up across the three lists.
func (c *Controller) findInState(id string) *client.PermohonanView {
	for _, list := range [][]client.PermohonanView{c.state.Incoming, c.state.Processing, c.state.History} {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
	}
	return nil
}

// markRelatedNotificationRead acknowledges the unread notification pointing
// at the request, if one exists. A failure here is swallowed: the mutation
// already succeeded and the refresh will reconcile.
func (c *Controller) markRelatedNotificationRead(ctx context.Context, requestID string) {
	for _, notification := range c.state.Notifications {
		if notification.PermohonanID == requestID && !notification.Dibaca {
			_ = c.api.MarkNotificationRead(ctx, notification.ID)
			return
		}
	}
}

// Advance moves a request from baru into diproses. The local precondition
// check avoids a pointless round trip, but the backend's rejection is
// handled all the same.
func (c *Controller) Advance(ctx context.Context, requestID string) error {
	current := c.findInState(requestID)
	if current != nil && current.Status != "baru" {
		return &ValidationError{Message: "Permohonan sudah diproses"}
	}

	message, err := c.api.AdvanceRequest(ctx, requestID)
	if err != nil {
		return err
	}

	c.markRelatedNotificationRead(ctx, requestID)
	if err := c.Refresh(ctx); err != nil {
		// The mutation is committed; a stale list is the only consequence.
		c.lastMessage = message
		c.activeView = ViewProcessing
		return nil
	}

	c.lastMessage = message
	c.activeView = ViewProcessing
	return nil
}

// Decide closes a diproses request with an approve/reject outcome and the
// reply mail body. An empty body is blocked before any network call.
func (c *Controller) Decide(ctx context.Context, requestID string, input client.DecisionInput) error {
	if input.BalasanEmail == "" {
		return &ValidationError{Message: "Balasan email tidak boleh kosong"}
	}
	if input.Status != "disetujui" && input.Status != "ditolak" {
		return &ValidationError{Message: "Status harus disetujui atau ditolak"}
	}

	current := c.findInState(requestID)
	if current != nil && current.Status != "diproses" {
		return &ValidationError{Message: "Permohonan belum diproses atau sudah selesai"}
	}

	message, err := c.api.SubmitDecision(ctx, requestID, input)
	if err != nil {
		return err
	}

	c.markRelatedNotificationRead(ctx, requestID)
	_ = c.Refresh(ctx)

	c.lastMessage = message
	c.activeView = ViewHistory
	return nil
}
