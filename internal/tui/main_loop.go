package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	notes  []models.Note
	status models.SyncStatus
	idx    int

	spinner    spinner.Model
	statusLine string
	errMsg     string

	adding    bool
	addInputs []textinput.Model
	addFocus  int
	addSaving bool

	confirming    bool
	confirmTarget models.Note
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	snap := services.Engine.Snapshot()

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		notes:    snap.Notes,
		status:   snap.Status,
		spinner:  s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.notes = msg.snap.Notes
		m.status = msg.snap.Status
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case addDoneMsg:
		m.addSaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка добавления: %v", msg.err)
			return m, nil
		}
		m.adding = false
		m.statusLine = "Запись добавлена!"
		m.errMsg = ""
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.statusLine = "Запись удалена"
		m.errMsg = ""
		return m, nil

	case syncDoneMsg:
		m.statusLine = "Синхронизация завершена"
		return m, nil

	case copiedMsg:
		m.statusLine = "Скопировано"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			return m.updateAdding(msg)
		}
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.confirming {
		return m.updateConfirming(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.newItem):
		m.startAdd()
		return m, nil

	case key.Matches(keyMsg, keys.sync):
		m.statusLine = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()

	case key.Matches(keyMsg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.statusLine = "Нет записей"
			return m, nil
		}
		m.confirmTarget = note
		m.confirming = true
		return m, nil

	case key.Matches(keyMsg, keys.copy):
		note, ok := m.current()
		if !ok {
			m.statusLine = "Нет записей"
			return m, nil
		}
		if err := clipboard.WriteAll(note.Description); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.statusLine = "Скопировано"
	}

	return m, nil
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// ── add form ──

func (m *mainLoopModel) startAdd() {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Текст заметки"
	description.Width = 40

	m.addInputs = []textinput.Model{title, description}
	m.addFocus = 0
	m.addSaving = false
	m.adding = true
	m.errMsg = ""
}

func (m mainLoopModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.adding = false
			m.addSaving = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus + 1) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "shift+tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "enter":
			if m.addSaving {
				return m, nil
			}

			title := strings.TrimSpace(m.addInputs[0].Value())
			description := strings.TrimSpace(m.addInputs[1].Value())
			if title == "" || description == "" {
				m.errMsg = "Заголовок и текст обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.addSaving = true
			return m, m.cmdAdd(title, description)
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

// ── delete confirmation ──

func (m mainLoopModel) updateConfirming(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		return m, m.cmdDelete(m.confirmTarget.ID)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirming = false
	}
	return m, nil
}

// ── commands ──

func (m mainLoopModel) cmdAdd(title, description string) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine

	return func() tea.Msg {
		err := engine.AddRecord(ctx, title, description)
		return addDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine

	return func() tea.Msg {
		err := engine.DeleteRecord(ctx, id)
		return deleteDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine

	return func() tea.Msg {
		engine.Sync(ctx)
		return syncDoneMsg{}
	}
}
