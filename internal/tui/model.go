// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	statusTTL       = 4 * time.Second
	listsPaneWidth  = 28
	minTasksWidth   = 40
	footerHeight    = 8
	defaultHeight   = 24
	defaultWidth    = 100
	shortHelpFooter = "a add · space done · p priority · d delete · y copy url · c completed · s sync · ? help · q quit"
)

type focus int

const (
	focusLists focus = iota
	focusTasks
)

type inputMode int

const (
	inputNone inputMode = iota
	inputTask
	inputList
)

type appModel struct {
	ctx          context.Context
	tasks        service.ClientTaskService
	sync         SyncController
	clock        clock.Clock
	info         models.AppBuildInfo
	pollInterval time.Duration

	focus         focus
	lists         listsPane
	taskList      tasksPane
	tagNames      map[uuid.UUID]string
	showCompleted bool

	inputMode inputMode
	input     textinput.Model

	spinner  spinner.Model
	spinning bool

	status    string
	statusSeq int

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	showHelp     bool

	width  int
	height int
}

func newAppModel(ctx context.Context, tasks service.ClientTaskService, sync SyncController, opts Options) appModel {
	in := textinput.New()
	in.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return appModel{
		ctx:           ctx,
		tasks:         tasks,
		sync:          sync,
		clock:         clock.OrReal(opts.Clock),
		info:          opts.BuildInfo,
		pollInterval:  pollInterval,
		focus:         focusTasks,
		tagNames:      map[uuid.UUID]string{},
		showCompleted: opts.ShowCompleted,
		input:         in,
		spinner:       sp,
		width:         defaultWidth,
		height:        defaultHeight,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.cmdPollTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case dataLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		cmd := m.applyData(msg)
		return m, cmd
	case mutationDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, m.cmdLoad()
		}
		cmd := tea.Batch(m.setStatus(msg.status), m.cmdLoad())
		return m, cmd
	case pollTickMsg:
		return m.updatePoll()
	case externalChangeMsg:
		return m, m.cmdLoad()
	case copiedMsg:
		cmd := m.setStatus("URL copied")
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		if !m.sync.Status().Syncing {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.inputMode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePoll advances the sync state machine. Poll never blocks: the
// network exchange runs on the orchestrator's worker goroutine.
func (m appModel) updatePoll() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.cmdPollTick()}

	if report := m.sync.Poll(m.ctx); report != nil {
		cmds = append(cmds, m.setStatus(reportMessage(*report)))
		if report.OK() {
			cmds = append(cmds, m.cmdLoad())
		}
	}

	if m.sync.Status().Syncing && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showConfirm {
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			return m, m.cmdDelete(m.confirm)
		}
		if key.Matches(msg, keys.no) {
			m.showConfirm = false
		}
		return m, nil
	}
	if m.showHelp {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.help) || key.Matches(msg, keys.quit) {
			m.showHelp = false
		}
		return m, nil
	}
	if m.inputMode != inputNone {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.help):
		m.showHelp = true
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.focus == focusLists {
			m.focus = focusTasks
		} else {
			m.focus = focusLists
		}
	case key.Matches(msg, keys.left):
		m.focus = focusLists
	case key.Matches(msg, keys.right):
		m.focus = focusTasks
	case key.Matches(msg, keys.up):
		return m.moveCursor(-1, false)
	case key.Matches(msg, keys.down):
		return m.moveCursor(1, false)
	case key.Matches(msg, keys.top):
		return m.moveCursor(-1, true)
	case key.Matches(msg, keys.bottom):
		return m.moveCursor(1, true)
	case key.Matches(msg, keys.enter):
		if m.focus == focusLists {
			m.focus = focusTasks
			return m, nil
		}
		return m, m.cmdOnSelectedTask(m.tasks.ToggleTask, toggledStatus)
	case key.Matches(msg, keys.add):
		if m.focus == focusLists {
			return m.startInput(inputList)
		}
		return m.startInput(inputTask)
	case key.Matches(msg, keys.toggle):
		if m.focus == focusTasks {
			return m, m.cmdOnSelectedTask(m.tasks.ToggleTask, toggledStatus)
		}
	case key.Matches(msg, keys.priority):
		if m.focus == focusTasks {
			return m, m.cmdOnSelectedTask(m.tasks.CyclePriority, priorityStatus)
		}
	case key.Matches(msg, keys.delete):
		return m.askDelete()
	case key.Matches(msg, keys.copyURL):
		return m.copySelectedURL()
	case key.Matches(msg, keys.showCompleted):
		m.showCompleted = !m.showCompleted
		status := "Hiding completed tasks"
		if m.showCompleted {
			status = "Showing completed tasks"
		}
		cmd := tea.Batch(m.setStatus(status), m.cmdLoad())
		return m, cmd
	case key.Matches(msg, keys.refresh):
		cmd := tea.Batch(m.setStatus("Refreshed"), m.cmdLoad())
		return m, cmd
	case key.Matches(msg, keys.sync):
		m.sync.RequestSync(false)
		cmd := m.setStatus("Sync requested")
		return m, cmd
	case key.Matches(msg, keys.fullSync):
		m.sync.RequestSync(true)
		cmd := m.setStatus("Full sync requested")
		return m, cmd
	}

	return m, nil
}

func (m appModel) moveCursor(delta int, jump bool) (tea.Model, tea.Cmd) {
	if m.focus == focusTasks {
		idx := m.taskList.idx + delta
		if jump {
			idx = delta * len(m.taskList.tasks)
		}
		m.taskList.moveTo(idx)
		return m, nil
	}

	idx := m.lists.idx + delta
	if jump {
		idx = delta * m.lists.len()
	}
	if !m.lists.moveTo(idx) {
		return m, nil
	}
	m.taskList = tasksPane{}
	return m, m.cmdLoad()
}

func (m appModel) startInput(mode inputMode) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Reset()
	switch mode {
	case inputTask:
		m.input.Prompt = "New task in " + m.lists.title() + ": "
		m.input.Placeholder = "pay rent next friday"
	case inputList:
		m.input.Prompt = "New list: "
		m.input.Placeholder = "Groceries"
	}
	cmd := m.input.Focus()
	return m, cmd
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		mode := m.inputMode
		m.inputMode = inputNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == inputList {
			return m, m.cmdCreateList(value)
		}
		return m, m.cmdCreateTask(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) askDelete() (tea.Model, tea.Cmd) {
	if m.focus == focusLists {
		list, ok := m.lists.selectedList()
		if !ok {
			return m, nil
		}
		if list.IsInbox {
			m.showErrorf("The inbox cannot be deleted.")
			return m, nil
		}
		m.confirm = confirmModel{target: deleteList, id: list.ID, message: list.Name}
		m.showConfirm = true
		return m, nil
	}

	task, ok := m.taskList.selected()
	if !ok {
		return m, nil
	}
	m.confirm = confirmModel{target: deleteTask, id: task.ID, message: task.Title}
	m.showConfirm = true
	return m, nil
}

func (m appModel) copySelectedURL() (tea.Model, tea.Cmd) {
	task, ok := m.taskList.selected()
	if !ok || m.focus != focusTasks {
		return m, nil
	}
	if task.URL == nil || *task.URL == "" {
		cmd := m.setStatus("This task has no URL")
		return m, cmd
	}
	return m, cmdCopyToClipboard(*task.URL)
}

// applyData installs a loaded snapshot. Tasks loaded for a list that is no
// longer selected are dropped and reloaded.
func (m *appModel) applyData(msg dataLoadedMsg) tea.Cmd {
	m.lists.setLists(msg.lists, msg.openCounts)

	m.tagNames = make(map[uuid.UUID]string, len(msg.tags))
	for _, t := range msg.tags {
		m.tagNames[t.ID] = t.Name
	}

	if !sameID(msg.listID, m.lists.selectedID()) {
		return m.cmdLoad()
	}
	m.taskList.setTasks(msg.tasks)
	return nil
}

func (m *appModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

// setStatus shows text next to the sync status until it expires or is
// replaced.
func (m *appModel) setStatus(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// ---- Commands ----

func (m appModel) cmdPollTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	filter := models.TaskFilter{
		ListID:           m.lists.selectedID(),
		IncludeCompleted: m.showCompleted,
	}

	return func() tea.Msg {
		lists, err := svc.GetLists(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		counts, err := svc.CountOpenTasks(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		tags, err := svc.GetTags(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		tasks, err := svc.ListTasks(ctx, filter)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{
			lists:      lists,
			openCounts: counts,
			tags:       tags,
			tasks:      tasks,
			listID:     filter.ListID,
		}
	}
}

func (m appModel) cmdCreateTask(input string) tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	title, due := utils.SplitDueDate(input, m.clock.Now())

	listID := uuid.Nil
	if id := m.lists.selectedID(); id != nil {
		listID = *id
	}

	return func() tea.Msg {
		task := models.NewTask(title, listID)
		task.DueDate = due
		if _, err := svc.CreateTask(ctx, task); err != nil {
			return mutationDoneMsg{err: err}
		}
		status := "Task added"
		if due != nil {
			status += ", due " + due.Format(time.DateOnly)
		}
		return mutationDoneMsg{status: status}
	}
}

func (m appModel) cmdCreateList(name string) tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	return func() tea.Msg {
		list, err := svc.CreateList(ctx, name)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: "List " + list.Name + " created"}
	}
}

// cmdOnSelectedTask runs op on the task under the cursor and reports the
// result through describe.
func (m appModel) cmdOnSelectedTask(op func(context.Context, uuid.UUID) (models.Task, error), describe func(models.Task) string) tea.Cmd {
	task, ok := m.taskList.selected()
	if !ok {
		return nil
	}

	ctx := m.ctx
	return func() tea.Msg {
		updated, err := op(ctx, task.ID)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: describe(updated)}
	}
}

func toggledStatus(t models.Task) string {
	if t.Completed {
		return "Completed: " + t.Title
	}
	return "Reopened: " + t.Title
}

func priorityStatus(t models.Task) string {
	return "Priority: " + t.Priority.Title()
}

func (m appModel) cmdDelete(target confirmModel) tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	return func() tea.Msg {
		if target.target == deleteList {
			moved, err := svc.DeleteList(ctx, target.id)
			if err != nil {
				return mutationDoneMsg{err: err}
			}
			return mutationDoneMsg{status: fmt.Sprintf("List deleted, %d task(s) moved to the inbox", moved)}
		}
		if err := svc.DeleteTask(ctx, target.id); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: "Task deleted"}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return mutationDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

// ---- View ----

func (m appModel) View() string {
	switch {
	case m.showError:
		return appStyle.Render(m.errorOverlay.View())
	case m.showConfirm:
		return appStyle.Render(m.confirm.View())
	case m.showHelp:
		return appStyle.Render(renderHelpWindow(m.info))
	}

	height := max(m.height-footerHeight, 5)
	tasksWidth := max(m.width-listsPaneWidth-10, minTasksWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.lists.View(listsPaneWidth, height, m.focus == focusLists),
		m.taskList.View(m.lists.title(), m.tagNames, m.clock.Now(), tasksWidth, height, m.focus == focusTasks),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.inputMode != inputNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(shortHelpFooter))

	return appStyle.Render(b.String())
}

func (m appModel) statusLine() string {
	st := m.sync.Status()

	line := st.String()
	if st.Syncing {
		line = m.spinner.View() + " " + line
	}
	if st.PendingChanges > 0 {
		line += fmt.Sprintf(" · %d local change(s)", st.PendingChanges)
	}
	if m.status != "" {
		line += " · " + m.status
	}
	return statusStyle.Render(line)
}

// reportMessage describes a finished sync attempt. Background attempts that
// moved nothing stay silent.
func reportMessage(r models.SyncReport) string {
	if !r.OK() {
		return "Sync failed: " + service.SyncErrorMessage(r.Err)
	}
	if r.Trigger != models.TriggerManual && r.Uploaded == 0 && r.Received == 0 {
		return ""
	}

	msg := fmt.Sprintf("Synced: %d up, %d down", r.Uploaded, r.Received)
	if r.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", r.Failed)
	}
	if len(r.Conflicts) > 0 {
		msg += fmt.Sprintf(", %d conflict(s)", len(r.Conflicts))
	}
	return msg
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
