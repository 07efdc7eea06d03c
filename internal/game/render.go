package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jangam/internal/core"
)

// Glyphs for game entities.
const (
	shipNoseChar   = '▲'
	shipBodyChar   = '█'
	plainRockChar  = '▒'
	richRockChar   = '▓'
	minerChar      = '╬'
	minerBeamChar  = '║'
	pulseChar      = '|'
	burstChar      = '✹'
	speedBarFilled = '='
	speedBarEmpty  = ' '
)

// speedBarWidth is the HUD speed gauge width in cells.
const speedBarWidth = 10

// Render draws the current game state into the screen buffer.
func (st *State) Render(dst *core.Screen) {
	dst.Clear()

	st.stars.Render(dst, hudRows)

	for _, a := range st.asteroids {
		st.drawAsteroid(dst, a)
	}
	for _, m := range st.miners {
		st.drawMiner(dst, m)
	}
	for _, p := range st.pulses {
		if p.Alive {
			dst.SetColored(int(p.Pos.X), int(p.Pos.Y)+hudRows, pulseChar, core.ColorBrightRed)
		}
	}
	st.drawShip(dst)
	for _, b := range st.bursts {
		dst.SetColored(b.x, b.y+hudRows, burstChar, core.ColorBrightYellow)
	}

	st.drawHUD(dst)

	if st.paused {
		st.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if st.gameOver {
		st.drawCenteredMessage(dst, "SHIP DESTROYED",
			fmt.Sprintf("Score: %d  |  Press R to restart", st.Score()))
	}
}

// drawShip renders the ship with a nose marker on the top row.
func (st *State) drawShip(dst *core.Screen) {
	x := int(st.ship.Pos.X)
	y := int(st.ship.Pos.Y) + hudRows
	w := int(st.ship.W)
	h := int(st.ship.H)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := shipBodyChar
			if dy == 0 && dx == w/2 {
				ch = shipNoseChar
			}
			dst.SetColored(x+dx, y+dy, ch, core.ColorBrightCyan)
		}
	}
}

// drawAsteroid renders an asteroid block, colored by value class.
func (st *State) drawAsteroid(dst *core.Screen, a *Asteroid) {
	if !a.Alive {
		return
	}

	ch := plainRockChar
	color := core.ColorGray
	if a.Class == ClassPrecious {
		ch = richRockChar
		color = core.ColorBrightYellow
	}
	if a.Mined {
		color = core.ColorBrightGreen
	}

	x := int(a.Pos.X)
	y := int(a.Pos.Y) + hudRows
	for dy := 0; dy < int(a.H); dy++ {
		for dx := 0; dx < int(a.W); dx++ {
			dst.SetColored(x+dx, y+dy, ch, color)
		}
	}
}

// drawMiner renders a mining unit; attached units get a beam hint
// and their mining progress is implied by the HUD score ticking up.
func (st *State) drawMiner(dst *core.Screen, m *Miner) {
	if !m.Alive {
		return
	}

	color := core.ColorBrightCyan
	ch := minerChar
	if m.State == MinerAttached {
		color = core.ColorBrightGreen
		ch = minerBeamChar
	}

	x := int(m.Pos.X)
	y := int(m.Pos.Y) + hudRows
	for dy := 0; dy < int(m.H); dy++ {
		for dx := 0; dx < int(m.W); dx++ {
			dst.SetColored(x+dx, y+dy, ch, color)
		}
	}
}

// drawHUD renders the score, hull, and speed bar on the top row.
func (st *State) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", st.Score()), core.ColorBrightWhite)

	hull := strings.Repeat("♥", core.Max(st.ship.Hull, 0))
	dst.DrawTextColored(16, 0, "HULL "+hull, core.ColorBrightRed)

	// Speed bar mirrors the original's speedbar: magnitude only.
	speed := st.ship.Vel.X
	if speed < 0 {
		speed = -speed
	}
	filled := int(speed / st.rules.Ship.MaxSpeed * speedBarWidth)
	filled = core.Clamp(filled, 0, speedBarWidth)
	bar := strings.Repeat(string(speedBarFilled), filled) +
		strings.Repeat(string(speedBarEmpty), speedBarWidth-filled)
	dst.DrawTextColored(dst.Width()-speedBarWidth-9, 0, "SPEED ["+bar+"]", core.ColorBrightBlue)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (st *State) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
