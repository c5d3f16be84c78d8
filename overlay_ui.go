package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/wallrun/game"
)

// overlay shows a centered panel while the player is dead or the credits
// are up. It is hidden during play.
type overlay struct {
	ui    *ebitenui.UI
	title *widget.Text
	hint  *widget.Text
	mode  game.Mode
}

func newOverlay(width, height int, onQuit func()) *overlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	o := &overlay{mode: game.ModePlay}
	o.title = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	o.hint = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Quit", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onQuit != nil {
				onQuit()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/3, height/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(o.title)
	panel.AddChild(o.hint)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	o.ui = &ebitenui.UI{Container: root}
	return o
}

// Sync updates the labels for the current mode.
func (o *overlay) Sync(mode game.Mode) {
	o.mode = mode
	switch mode {
	case game.ModeDeath:
		o.title.Label = "You died"
		o.hint.Label = "respawning..."
	case game.ModeCredits:
		o.title.Label = "Thanks for playing"
		o.hint.Label = "press jump to exit"
	}
}

func (o *overlay) Visible() bool {
	return o.mode != game.ModePlay
}

func (o *overlay) Update() {
	if o.Visible() {
		o.ui.Update()
	}
}

func (o *overlay) Draw(screen *ebiten.Image) {
	if o.Visible() {
		o.ui.Draw(screen)
	}
}
