package crossing

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	HopChar    = '◆'
	CarChar    = '█'
	CarFrontL  = '◀'
	CarFrontR  = '▶'
	GrassChar  = '·'
	RoadChar   = '-'
	FinishChar = '▒'
)

const (
	hudHeight    = 1
	maxCellWidth = 3
)

// view maps world coordinates to screen cells for one frame. The camera
// follows the player's logical row; forward is up.
type view struct {
	originX int
	cellW   int
	centerY int
	top     int
	bottom  int
	camRow  int
	cell    float64
	cols    int
}

func (g *Game) newView(dst *core.Screen) view {
	lvl := g.round.Level()
	cols := lvl.ColumnCount()
	cellW := maxCellWidth
	for cellW > 1 && cols*cellW > dst.Width() {
		cellW--
	}
	top := hudHeight
	return view{
		originX: (dst.Width() - cols*cellW) / 2,
		cellW:   cellW,
		centerY: top + (dst.Height()-top)/2,
		top:     top,
		bottom:  dst.Height(),
		camRow:  g.round.Player().Position().Row,
		cell:    lvl.CellSize(),
		cols:    cols,
	}
}

func (v view) screenY(row int) int {
	return v.centerY + row - v.camRow
}

func (v view) rowAt(y int) int {
	return v.camRow + y - v.centerY
}

func (v view) visible(y int) bool {
	return y >= v.top && y < v.bottom
}

// screenX returns the fractional screen column of world x.
func (v view) screenX(x float64) float64 {
	col := x/v.cell + float64(v.cols-1)/2
	return float64(v.originX) + col*float64(v.cellW) + float64(v.cellW)/2
}

func (v view) worldRow(z float64) int {
	return int(math.Round(z / v.cell))
}

// Render draws the lanes, cars, player, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		msg := "Loading..."
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorBrightRed)
		return
	}

	v := g.newView(dst)
	g.drawLanes(dst, v)
	g.drawCars(dst, v)
	g.drawPlayer(dst, v)
	g.drawHUD(dst)
	g.drawOverlay(dst, v)
}

func (g *Game) drawLanes(dst *core.Screen, v view) {
	lvl := g.round.Level()
	for y := v.top; y < v.bottom; y++ {
		row := v.rowAt(y)
		if row < 0 || row >= lvl.RowCount() {
			continue
		}
		for c := 0; c < v.cols; c++ {
			x0 := v.originX + c*v.cellW
			switch {
			case row == lvl.FinishRow():
				dst.DrawHLine(x0, y, v.cellW, FinishChar, core.ColorBrightYellow)
			case lvl.Lane(row).Kind == LaneRoad:
				if c%2 == 0 {
					dst.SetCell(x0+v.cellW/2, y, RoadChar, core.ColorDarkGray)
				}
			default:
				dst.SetCell(x0+v.cellW/2, y, GrassChar, core.ColorGreen)
			}
		}
	}
}

func (g *Game) drawCars(dst *core.Screen, v view) {
	minX := v.originX
	maxX := v.originX + v.cols*v.cellW - 1
	for _, o := range g.round.Spawner().Obstacles() {
		box := o.Body.Bounds()
		y := v.screenY(v.worldRow(box.Center.Z))
		if !v.visible(y) {
			continue
		}
		x0 := int(math.Floor(v.screenX(box.MinX())))
		x1 := int(math.Ceil(v.screenX(box.MaxX()))) - 1
		if x1 < x0 {
			x1 = x0
		}
		color := core.ColorRed
		front, frontX := CarFrontR, x1
		if o.Direction < 0 {
			color = core.ColorYellow
			front, frontX = CarFrontL, x0
		}
		for x := x0; x <= x1; x++ {
			if x < minX || x > maxX {
				continue
			}
			ch := CarChar
			if x == frontX {
				ch = front
			}
			dst.SetCell(x, y, ch, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.round.Player()
	pos := p.Node.Position
	y := v.screenY(v.worldRow(pos.Z))
	if !v.visible(y) {
		return
	}
	x := int(math.Floor(v.screenX(pos.X)))
	if p.Airborne() {
		dst.SetCell(x, y, HopChar, core.ColorBrightCyan)
		return
	}
	dst.SetCell(x, y, PlayerChar, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.round
	row, finish := r.Player().Position().Row, r.Level().FinishRow()
	hud := fmt.Sprintf(" Score: %d  Best: %d  Row: %d  Finish: %d %s  %s",
		r.Score(), g.best, row, finish, finishArrow(row, finish), r.Phase())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// finishArrow points from row toward the finish on screen. Higher rows are
// drawn lower.
func finishArrow(row, finish int) string {
	switch {
	case finish > row:
		return "↓"
	case finish < row:
		return "↑"
	}
	return ""
}

// alphaColor approximates an opacity with the terminal's grey ramp.
func alphaColor(a float64) (core.Color, bool) {
	switch {
	case a >= 0.66:
		return core.ColorBrightWhite, true
	case a >= 0.33:
		return core.ColorGray, true
	case a > 0:
		return core.ColorDarkGray, true
	}
	return core.ColorDefault, false
}

func (g *Game) drawOverlay(dst *core.Screen, v view) {
	if c, ok := alphaColor(g.overlay.TutorialAlpha()); ok {
		p := g.round.Player().Position()
		hint := fmt.Sprintf("%s, finish is %s", TutorialText, finishArrow(p.Row, g.round.Level().FinishRow()))
		dst.DrawTextCentered(v.bottom-2, hint, c)
	}
	if c, ok := alphaColor(g.overlay.GameOverAlpha()); ok {
		drawMessageBox(dst, GameOverText, RestartText, c)
	}
	drawCurtain(dst, g.overlay.CurtainAlpha())
}

// drawMessageBox draws a two-line message box in the center of the screen.
func drawMessageBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	rect := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, c)
	dst.DrawTextCentered(rect.Y+1, title, c)
	dst.DrawTextCentered(rect.Y+3, subtitle, c)
}

// drawCurtain blanks a dithered share of the screen equal to alpha.
func drawCurtain(dst *core.Screen, alpha float64) {
	if alpha <= 0 {
		return
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			threshold := float64((x*7+y*13)%16) / 16
			if threshold < alpha {
				dst.SetCell(x, y, ' ', core.ColorDefault)
			}
		}
	}
}
