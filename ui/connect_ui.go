package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectUI is the ebitenui main menu: player name, server address,
// connect/offline buttons and a volume setting.
type ConnectUI struct {
	UI *ebitenui.UI

	OnConnect     func(name, address string)
	OnPlayOffline func(name string)
	OnVolume      func(delta float64)

	nameInput    *widget.TextInput
	addressInput *widget.TextInput
	statusLabel  *widget.Label
	volumeLabel  *widget.Label
	connectBtn   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewConnectUI builds the menu, prefilled with the saved name/address.
func NewConnectUI(savedName, savedAddress string, volume float64) *ConnectUI {
	ui := &ConnectUI{}
	ui.loadFonts()
	ui.buildUI(savedName, savedAddress, volume)
	return ui
}

func (ui *ConnectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *ConnectUI) buildUI(savedName, savedAddress string, volume float64) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("FOOD FIGHT", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.nameInput = ui.textInput("your name", savedName, 200)
	contentContainer.AddChild(ui.labeledRow("Name:     ", ui.nameInput))

	ui.addressInput = ui.textInput("localhost:7373", savedAddress, 200)
	contentContainer.AddChild(ui.labeledRow("Server:   ", ui.addressInput))

	contentContainer.AddChild(ui.buildVolumeRow(volume))

	ui.connectBtn = ui.button("Connect", color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnConnect != nil {
			ui.OnConnect(ui.playerName(), ui.address())
		}
	})
	contentContainer.AddChild(ui.connectBtn)

	offlineBtn := ui.button("Play Offline", color.RGBA{60, 60, 90, 255}, func() {
		if ui.OnPlayOffline != nil {
			ui.OnPlayOffline(ui.playerName())
		}
	})
	contentContainer.AddChild(offlineBtn)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) buildVolumeRow(volume float64) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Volume:  ", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	row.AddChild(ui.button("-", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnVolume != nil {
			ui.OnVolume(-0.1)
		}
	}))

	ui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeText(volume), &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(ui.volumeLabel)

	row.AddChild(ui.button("+", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnVolume != nil {
			ui.OnVolume(0.1)
		}
	}))

	return row
}

func (ui *ConnectUI) labeledRow(label string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(input)
	return row
}

func (ui *ConnectUI) textInput(placeholder, initial string, width int) *widget.TextInput {
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	if initial != "" {
		input.SetText(initial)
	}
	return input
}

func (ui *ConnectUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{base.R + 20, base.G + 20, base.B + 20, 255}
	pressed := color.RGBA{base.R - 10, base.G - 10, base.B - 10, 255}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(pressed),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{180, 200, 180, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ConnectUI) playerName() string {
	name := ui.nameInput.GetText()
	if name == "" {
		name = "Player"
	}
	return name
}

func (ui *ConnectUI) address() string {
	addr := ui.addressInput.GetText()
	if addr == "" {
		addr = "localhost:7373"
	}
	return addr
}

// SetStatus updates the status line under the buttons.
func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// SetConnecting disables the connect button while a dial is in flight.
func (ui *ConnectUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

// SetVolume updates the displayed volume.
func (ui *ConnectUI) SetVolume(volume float64) {
	if ui.volumeLabel != nil {
		ui.volumeLabel.Label = volumeText(volume)
	}
}

// Update advances the widget tree; call once per frame.
func (ui *ConnectUI) Update() {
	ui.UI.Update()
}

func volumeText(volume float64) string {
	return fmt.Sprintf("%d%%", int(volume*100+0.5))
}
