// Package tui is the interactive roster interface: a card gallery and a
// summary table over the same rendered state, a live search filter, and an
// embedded profile form for add and edit.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/roster/pkg/form"
	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

const (
	noticeTTL   = 5 * time.Second
	settleDelay = 300 * time.Millisecond
)

type tab int

const (
	tabGallery tab = iota
	tabTable
)

// stagedMsg delivers the slow half of a submit (validation + photo
// decode) back to Update, which commits it on the UI goroutine. The
// store and the renderer are only ever touched from Update.
type stagedMsg struct {
	staged *form.Staged
	err    error
}

type noticeExpiredMsg struct{ seq int }

type settleMsg struct{ id string }

// Model contains UI state.
type Model struct {
	ctx      context.Context
	ctrl     *form.Controller
	renderer *render.Renderer
	cfg      store.Config

	search    textinput.Model
	searching bool
	saving    bool
	tab       tab
	sel       int

	width  int
	height int

	notice    string
	noticeSeq int
	errText   string

	profileForm *huh.Form
	input       *profile.RawInput
}

// Run launches the Bubble Tea UI over the given persistence.
func Run(ctx context.Context, p store.Persistence, cfg store.Config) error {
	r := render.New()
	ctrl := form.NewController(p, r, photo.FileDecoder{}, nil)
	ctrl.RenderStored(ctx)

	m := New(ctx, ctrl, r, cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// New creates a UI model backed by the controller and renderer.
func New(ctx context.Context, ctrl *form.Controller, r *render.Renderer, cfg store.Config) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = searchPromptStyle.Render("/ ")
	search.CharLimit = 64

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		renderer: r,
		cfg:      cfg,
		search:   search,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = msg.Width - 4
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case settleMsg:
		m.renderer.Settle(msg.id)
		return m, nil

	case stagedMsg:
		return m.onStaged(msg)
	}

	if m.profileForm != nil {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.onKey(key)
	}
	return m, nil
}

func (m Model) onKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch key.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(key)
			m.renderer.ApplyFilter(m.search.Value())
			m.sel = m.clampSel(m.sel)
			return m, cmd
		}
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "tab":
		if m.tab == tabGallery {
			m.tab = tabTable
		} else {
			m.tab = tabGallery
		}
		return m, nil
	case "up", "k":
		m.sel = m.clampSel(m.sel - 1)
		return m, nil
	case "down", "j":
		m.sel = m.clampSel(m.sel + 1)
		return m, nil
	case "x", "esc":
		m.notice = ""
		m.errText = ""
		return m, nil
	case "a":
		if m.saving {
			return m, nil
		}
		m.errText = ""
		m.input = &profile.RawInput{}
		m.ctrl.Cancel()
		m.profileForm = form.BuildForm(m.input, m.cfg, m.ctrl.SubmitLabel())
		return m, m.profileForm.Init()
	case "e":
		if m.saving {
			return m, nil
		}
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		prefill, ok := m.ctrl.BeginEdit(m.ctx, id)
		if !ok {
			// Record already gone; nothing to edit.
			return m, nil
		}
		m.errText = ""
		m.input = &prefill
		m.profileForm = form.BuildForm(m.input, m.cfg, m.ctrl.SubmitLabel())
		return m, m.profileForm.Init()
	case "d":
		if m.saving {
			return m, nil
		}
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		if err := m.ctrl.Remove(m.ctx, id); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.sel = m.clampSel(m.sel)
		cmd := m.showNotice(fmt.Sprintf("Removed %s.", id))
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.profileForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.profileForm = f
	}

	switch m.profileForm.State {
	case huh.StateCompleted:
		m.profileForm = nil
		m.saving = true
		return m, m.stageCmd(*m.input)
	case huh.StateAborted:
		m.profileForm = nil
		m.ctrl.Cancel()
		return m, nil
	}
	return m, cmd
}

func (m Model) onStaged(msg stagedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		return m.onSubmitError(msg.err)
	}

	p, err := m.ctrl.Commit(m.ctx, msg.staged)
	if err != nil {
		return m.onSubmitError(err)
	}

	m.errText = ""
	m.sel = 0
	m.input = nil
	notice := m.showNotice(form.SuccessMessage(p))
	return m, tea.Batch(
		notice,
		tea.Tick(settleDelay, func(time.Time) tea.Msg { return settleMsg{id: p.ID} }),
	)
}

func (m Model) onSubmitError(err error) (tea.Model, tea.Cmd) {
	var ferrs profile.FieldErrors
	if errors.As(err, &ferrs) {
		m.errText = ferrs.Error()
	} else {
		m.errText = err.Error()
	}
	// The save was aborted; reopen the form with the same input so the
	// user can retry.
	if m.input != nil {
		m.profileForm = form.BuildForm(m.input, m.cfg, m.ctrl.SubmitLabel())
		return m, m.profileForm.Init()
	}
	return m, nil
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

// stageCmd runs validation and the photo decode off the UI goroutine.
// Stage reads no shared rendering state, so only the commit has to wait
// for Update.
func (m Model) stageCmd(in profile.RawInput) tea.Cmd {
	return func() tea.Msg {
		st, err := m.ctrl.Stage(m.ctx, in)
		return stagedMsg{staged: st, err: err}
	}
}

func (m Model) visibleCards() []*render.Element {
	els := make([]*render.Element, 0, len(m.renderer.Cards()))
	for _, el := range m.renderer.Cards() {
		if !el.Hidden {
			els = append(els, el)
		}
	}
	return els
}

func (m Model) selectedID() string {
	els := m.visibleCards()
	if len(els) == 0 || m.sel >= len(els) {
		return ""
	}
	return els[m.sel].Profile.ID
}

func (m Model) clampSel(sel int) int {
	max := len(m.visibleCards()) - 1
	if sel > max {
		sel = max
	}
	if sel < 0 {
		sel = 0
	}
	return sel
}

func (m Model) View() string {
	if m.profileForm != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.header(),
			m.profileForm.View(),
			m.statusBar(),
		)
	}

	var body string
	switch m.tab {
	case tabGallery:
		body = m.galleryView()
	case tabTable:
		body = m.renderer.Table()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.search.View(),
		m.fit(body),
		m.statusBar(),
	)
}

func (m Model) header() string {
	galleryTab := tabStyle
	tableTab := tabStyle
	if m.tab == tabGallery {
		galleryTab = activeTabStyle
	} else {
		tableTab = activeTabStyle
	}

	mode := ""
	if m.ctrl.Mode() == form.ModeEdit {
		mode = modeStyle.Render("editing " + m.ctrl.EditingID())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Roster"),
		galleryTab.Render("gallery"),
		tableTab.Render("table"),
		mode,
	)
}

func (m Model) galleryView() string {
	els := m.visibleCards()
	if len(els) == 0 {
		return helpStyle.Render("  no profiles")
	}
	cards := make([]string, 0, len(els))
	for i, el := range els {
		card := m.renderer.Card(el)
		if i == m.sel {
			card = selectedStyle.Render(card)
		}
		cards = append(cards, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// fit trims the body to the space between header, search, and status bar.
func (m Model) fit(body string) string {
	if m.height <= 0 {
		return body
	}
	avail := m.height - 4
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= avail {
		return body
	}
	return strings.Join(lines[:avail], "\n")
}

func (m Model) statusBar() string {
	switch {
	case m.errText != "":
		return errorStyle.Render(m.errText)
	case m.notice != "":
		return noticeStyle.Render(m.notice) + helpStyle.Render("  (x to dismiss)")
	}
	return helpStyle.Render("a add · e edit · d remove · / search · tab view · q quit")
}
