package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/mem"
)

// S - execute one instruction
// R - execute the cycle budget
// P - toggle free run, one budget per frame
// Backspace - reset and run the setup again

type UI struct {
	cpu    *cpu.CPU
	mem    *mem.Memory
	setup  func() error
	budget int
	disasm map[uint16]string

	running    bool
	lastCycles int
	lastErr    error
}

// New creates a monitor for c and m. setup resets the machine and installs
// the program; it is called once here and again on every reset.
func New(c *cpu.CPU, m *mem.Memory, budget int, setup func() error) (*UI, error) {
	ui := &UI{
		cpu:    c,
		mem:    m,
		setup:  setup,
		budget: budget,
	}
	if err := ui.reset(); err != nil {
		return nil, err
	}
	return ui, nil
}

func (ui *UI) reset() error {
	ui.running = false
	ui.lastCycles = 0
	ui.lastErr = nil
	if err := ui.setup(); err != nil {
		return err
	}
	ui.disasm = cpu.Disassemble(ui.mem, 0x0000, 0xffff)
	return nil
}

func (ui *UI) execute(budget int) {
	n, err := ui.cpu.Execute(budget, ui.mem)
	ui.lastCycles = n
	if err != nil {
		ui.lastErr = err
		ui.running = false
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := ui.reset(); err != nil {
			return err
		}
	}

	// the machine stays stopped after an error until it is reset
	if ui.lastErr != nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.running = !ui.running
	}

	switch {
	case ui.running:
		ui.execute(ui.budget)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		// one cycle is enough to start exactly one instruction
		ui.execute(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ui.execute(ui.budget)
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	c := ui.cpu

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", c.P)
	fmt.Fprintf(&infoStr, " PC: $%04X SP: $%04X\n", c.PC, c.SP)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", c.A, c.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", c.X, c.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", c.Y, c.Y)
	fmt.Fprintf(&infoStr, " CYCLES: %d (last %d, budget %d)\n", c.TotalCycles(), ui.lastCycles, ui.budget)
	if ui.running {
		infoStr.WriteString(" RUNNING\n")
	}
	if ui.lastErr != nil {
		fmt.Fprintf(&infoStr, " HALTED: %v\n", ui.lastErr)
	}
	infoStr.WriteString("\n")

	for off := -disasmLines; off <= disasmLines; off++ {
		addr := uint16(int(c.PC) + off)
		line, ok := ui.disasm[addr]
		if !ok {
			continue
		}
		marker := " "
		if off == 0 {
			marker = "*"
		}
		infoStr.WriteString(marker + line + "\n")
	}

	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), 0, 0)
}

const (
	screenScale  = 2
	screenWidth  = 320
	screenHeight = 240

	disasmLines = 8
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*screenScale, screenHeight*screenScale)
	ebiten.SetWindowTitle("m6502")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
