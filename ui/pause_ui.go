package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/yardwalk/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the ebitenui menu shown over the dimmed scene while paused.
type PauseUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	OnQuit func()

	sensitivityLabel *widget.Label
	volumeLabel      *widget.Label
	invertButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewPauseUI builds the pause menu for the scene's world.
func NewPauseUI(e *ecs.ECS, onQuit func()) *PauseUI {
	pui := &PauseUI{ecs: e, OnQuit: onQuit}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (pui *PauseUI) buildUI() {
	// Transparent root; DrawPause dims the scene underneath.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(pui.button("Resume", 160, func() {
		systems.SetPaused(pui.ecs, false)
	}))
	pui.sensitivityLabel = pui.addStepper(panel, "Sensitivity", systems.SensitivityLabel(), func(steps int) {
		systems.AdjustSensitivity(pui.ecs, steps)
	})
	pui.volumeLabel = pui.addStepper(panel, "Volume", systems.VolumeLabel(), func(steps int) {
		systems.AdjustVolume(pui.ecs, steps)
	})

	pui.invertButton = pui.button(invertLabel(), 160, func() {
		systems.ToggleInvertY(pui.ecs)
		pui.UpdateUI()
	})
	panel.AddChild(pui.invertButton)

	panel.AddChild(pui.button("Quit", 160, func() {
		if pui.OnQuit != nil {
			pui.OnQuit()
		}
	}))

	rootContainer.AddChild(panel)
	pui.UI = &ebitenui.UI{Container: rootContainer}
}

// addStepper adds a "name  -  value  +" row and returns the value label.
func (pui *PauseUI) addStepper(panel *widget.Container, name, value string, step func(steps int)) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(pui.button("-", 24, func() {
		step(-1)
		pui.UpdateUI()
	}))

	label := widget.NewLabel(
		widget.LabelOpts.Text(value, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 200, 255},
		}),
	)
	row.AddChild(label)

	row.AddChild(pui.button("+", 24, func() {
		step(1)
		pui.UpdateUI()
	}))
	panel.AddChild(row)
	return label
}

func (pui *PauseUI) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func invertLabel() string {
	if systems.InvertY() {
		return "Invert Y: on"
	}
	return "Invert Y: off"
}

// UpdateUI refreshes labels from the live settings.
func (pui *PauseUI) UpdateUI() {
	if pui.sensitivityLabel != nil {
		pui.sensitivityLabel.Label = systems.SensitivityLabel()
	}
	if pui.volumeLabel != nil {
		pui.volumeLabel.Label = systems.VolumeLabel()
	}
	if pui.invertButton != nil {
		if textWidget := pui.invertButton.Text(); textWidget != nil {
			textWidget.Label = invertLabel()
		}
	}
}

// Update calls the UI's Update method
func (pui *PauseUI) Update() {
	pui.UI.Update()
	// Widgets are validated after the first update.
	if !pui.initialized {
		pui.initialized = true
		pui.UpdateUI()
	}
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
