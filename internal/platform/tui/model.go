package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/trine/internal/board"
	"github.com/dkotenko/trine/internal/config"
	"github.com/dkotenko/trine/internal/core"
	"github.com/dkotenko/trine/internal/game"
	"github.com/dkotenko/trine/internal/storage"
)

// Board cell dimensions in characters, borders included.
const (
	cellWidth  = 7
	cellHeight = 2
	hudHeight  = 3
)

// Model is the Bubble Tea model for the game screen. It owns a single game
// session and drives it with mapped key input; while a turn animation plays,
// further move input is dropped.
type Model struct {
	session *game.Session
	store   *storage.Store
	ui      config.UIConfig

	screen *core.Screen
	keys   KeyMap
	help   help.Model

	width    int
	height   int
	tooSmall bool

	grid      board.Grid
	outcome   board.Outcome
	moveCount int
	bestTile  int // highest tile across recorded games

	phase      AnimationPhase
	animations []TileAnimation
	animTicks  int
	pending    *game.TurnResult

	// persistSession enables saving the in-progress snapshot. The saved
	// session slot is single-row, so multi-user serving turns this off.
	persistSession bool
	resultSaved    bool
	quitting       bool
}

// NewModel creates a game model around an already-initialized session (the
// caller has either restored a snapshot or called Reset).
func NewModel(session *game.Session, store *storage.Store, ui config.UIConfig, width, height int, persistSession bool) Model {
	h := help.New()
	h.Width = width

	m := Model{
		session:        session,
		store:          store,
		ui:             ui,
		screen:         core.NewScreen(width, height),
		keys:           DefaultKeyMap(),
		help:           h,
		width:          width,
		height:         height,
		grid:           session.Grid(),
		outcome:        session.Outcome(),
		moveCount:      session.MoveCount(),
		persistSession: persistSession,
		resultSaved:    session.Outcome().Terminal(),
	}
	m.tooSmall = !m.fits(width, height)

	if store != nil {
		if best, err := store.BestTile(); err == nil {
			m.bestTile = best
		}
	}
	return m
}

// Init implements tea.Model. Ticks only run while an animation is active.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.tooSmall = !m.fits(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveInProgress()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}

	// Moves are dropped while an animation is in flight.
	if m.phase != PhaseNone {
		return m, nil
	}

	res, accepted := m.session.SubmitMove(dir)
	if !accepted {
		return m, nil
	}
	return m.acceptTurn(res)
}

// acceptTurn commits or animates an accepted turn.
func (m Model) acceptTurn(res game.TurnResult) (tea.Model, tea.Cmd) {
	if !m.ui.Animation {
		m.applyResult(res)
		return m, nil
	}

	m.pending = &res
	m.animations = slideAnimations(res)
	m.animTicks = 0
	m.phase = PhaseSlide
	return m, tickCmd(m.ui.TickRate)
}

// restart begins a fresh game.
func (m Model) restart() (tea.Model, tea.Cmd) {
	res := m.session.Reset()
	m.resultSaved = false
	m.pending = nil
	m.applyResult(res)

	if m.ui.Animation && len(res.Spawned) > 0 {
		m.animations = popAnimations(res)
		m.animTicks = 0
		m.phase = PhasePop
		return m, tickCmd(m.ui.TickRate)
	}

	m.phase = PhaseNone
	m.animations = nil
	return m, nil
}

// handleTick advances the animation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == PhaseNone {
		return m, nil
	}

	duration := slideTicks
	if m.phase == PhasePop {
		duration = popTicks
	}

	m.animTicks++
	progress := float64(m.animTicks) / float64(duration)
	if progress > 1 {
		progress = 1
	}
	for i := range m.animations {
		m.animations[i].Progress = progress
	}

	if m.animTicks < duration {
		return m, tickCmd(m.ui.TickRate)
	}

	// Slide done: commit the turn, then flash merges and the spawned tile.
	if m.phase == PhaseSlide && m.pending != nil {
		res := *m.pending
		m.pending = nil
		m.applyResult(res)

		if pops := popAnimations(res); len(pops) > 0 {
			m.animations = pops
			m.animTicks = 0
			m.phase = PhasePop
			return m, tickCmd(m.ui.TickRate)
		}
	}

	m.phase = PhaseNone
	m.animations = nil
	m.pending = nil
	return m, nil
}

// applyResult makes a turn's outcome the displayed state and persists it.
func (m *Model) applyResult(res game.TurnResult) {
	m.grid = res.Grid
	m.outcome = res.Outcome
	m.moveCount = res.MoveCount
	if max := res.Grid.MaxTile(); max > m.bestTile {
		m.bestTile = max
	}
	m.persistState()
}

// persistState records a finished game or saves the in-progress snapshot.
func (m *Model) persistState() {
	if m.store == nil {
		return
	}

	if m.outcome.Terminal() {
		if !m.resultSaved {
			//nolint:errcheck // Best-effort save
			m.store.SaveResult(m.outcome.String(), m.grid.MaxTile(), m.moveCount)
			m.resultSaved = true
		}
		if m.persistSession {
			//nolint:errcheck // Best-effort cleanup
			m.store.ClearSession()
		}
		return
	}

	m.saveInProgress()
}

// saveInProgress snapshots an ongoing game so it can be resumed later.
func (m *Model) saveInProgress() {
	if m.store == nil || !m.persistSession || m.outcome.Terminal() {
		return
	}
	if blob, err := game.EncodeSnapshot(m.session.Snapshot()); err == nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveSession(blob)
	}
}

// fits reports whether the board plus HUD and help line fit the terminal.
func (m Model) fits(width, height int) bool {
	size := m.session.Rules().BoardSize
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	return width >= boardW+2 && height >= hudHeight+boardH+2
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// render draws the full frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()

	if m.tooSmall {
		msg := "Window too small"
		m.screen.DrawText((m.width-len(msg))/2, m.height/2, msg)
		hint := "Please resize terminal"
		m.screen.DrawText((m.width-len(hint))/2, m.height/2+1, hint)
		return
	}

	size := m.grid.Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	boardX := core.Max((m.width-boardW)/2, 0)
	boardY := hudHeight

	m.renderHUD(boardX, boardW)
	m.renderGridLines(boardX, boardY, size)

	if m.phase == PhaseSlide {
		m.renderSlidingTiles(boardX, boardY)
	} else {
		m.renderTiles(boardX, boardY)
	}

	m.renderOverlay(boardX, boardY, boardW, boardH)
}

// renderHUD draws the title, move counter, best tile and target.
func (m Model) renderHUD(boardX, boardW int) {
	title := "T R I N E"
	m.screen.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightCyan)

	moves := fmt.Sprintf("Moves: %d", m.moveCount)
	m.screen.DrawText(boardX, 1, moves)

	best := fmt.Sprintf("Best: %d", m.bestTile)
	bestX := boardX + boardW - len(best)
	if bestX < boardX+len(moves)+2 {
		bestX = boardX + len(moves) + 2
	}
	m.screen.DrawText(bestX, 1, best)

	target := fmt.Sprintf("Target: %d", m.session.Rules().Target)
	m.screen.DrawTextColored(boardX+(boardW-len(target))/2, 2, target, core.ColorGray)
}

// renderGridLines draws the board borders and cell separators.
func (m Model) renderGridLines(boardX, boardY, size int) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			m.screen.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					m.screen.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					m.screen.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws the committed grid. During the pop phase, cells being
// flashed are drawn bright instead of in their ladder color.
func (m Model) renderTiles(boardX, boardY int) {
	minTile := m.session.Rules().MinTile

	popping := make(map[board.Cell]bool, len(m.animations))
	if m.phase == PhasePop {
		for _, a := range m.animations {
			popping[board.Cell{Row: a.ToRow, Col: a.ToCol}] = true
		}
	}

	size := m.grid.Size()
	for row := range size {
		for col := range size {
			val := m.grid.At(row, col)
			if val == 0 {
				continue
			}
			color := tileColor(val, minTile)
			if popping[board.Cell{Row: row, Col: col}] {
				color = core.ColorBrightWhite
			}
			m.drawTile(boardX+col*cellWidth, boardY+row*cellHeight, val, color)
		}
	}
}

// renderSlidingTiles draws every tile at its interpolated position.
func (m Model) renderSlidingTiles(boardX, boardY int) {
	minTile := m.session.Rules().MinTile
	for i := range m.animations {
		a := &m.animations[i]
		row, col := a.interpolate()
		px := boardX + int(math.Round(col*cellWidth))
		py := boardY + int(math.Round(row*cellHeight))
		m.drawTile(px, py, a.Value, tileColor(a.Value, minTile))
	}
}

// drawTile writes a tile value centered in the cell interior whose top-left
// border corner is at (px, py).
func (m Model) drawTile(px, py, value int, color core.Color) {
	s := strconv.Itoa(value)
	pad := (cellWidth - 1 - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	m.screen.DrawTextColored(px+1+pad, py+1, s, color)
}

// renderOverlay draws the terminal-state banner over the board.
func (m Model) renderOverlay(boardX, boardY, boardW, boardH int) {
	if !m.outcome.Terminal() || m.phase != PhaseNone {
		return
	}

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	var lines []string
	switch m.outcome {
	case board.Won:
		lines = []string{
			fmt.Sprintf("YOU WIN! Reached %d", m.grid.MaxTile()),
			fmt.Sprintf("in %d moves", m.moveCount),
			"Press R to play again",
		}
	case board.Stalemate:
		lines = []string{
			"NO MOVES LEFT",
			fmt.Sprintf("Best tile: %d", m.grid.MaxTile()),
			"Press R to restart",
		}
	}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	m.screen.FillRect(boxX, boxY, boxW, boxH, ' ')
	m.screen.DrawBox(boxX, boxY, boxW, boxH)
	for i, line := range lines {
		m.screen.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Run plays the game in the local terminal, blocking until the player quits.
func Run(session *game.Session, store *storage.Store, ui config.UIConfig, width, height int) error {
	m := NewModel(session, store, ui, width, height, true)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
