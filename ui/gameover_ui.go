package ui

import (
	"fmt"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var endTitles = map[cfg.RunStatusID]string{
	cfg.RunDead:     "YOU DIED",
	cfg.RunTimedOut: "TIME'S UP",
	cfg.RunWon:      "YOU WIN",
}

// GameOverUI is the overlay shown once a run has ended.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart  func()
	OnContinue func()

	titleLabel  *widget.Label
	scoreLabel  *widget.Label
	detailLabel *widget.Label
	continueBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onRestart, onContinue func()) (*GameOverUI, error) {
	ui := &GameOverUI{
		OnRestart:  onRestart,
		OnContinue: onContinue,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *GameOverUI) loadFonts() error {
	var err error
	if ui.titleFace, err = fonts.NewUIFace(cfg.GameOver.TitleSize); err != nil {
		return err
	}
	ui.normalFace, err = fonts.NewUIFace(cfg.GameOver.TextSize)
	return err
}

func (ui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	)
	panel.AddChild(ui.titleLabel)

	ui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	)
	panel.AddChild(ui.scoreLabel)

	ui.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	)
	panel.AddChild(ui.detailLabel)

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	restartBtn := ui.newButton("Restart (R)", func() {
		if ui.OnRestart != nil {
			ui.OnRestart()
		}
	})
	container.AddChild(restartBtn)

	ui.continueBtn = ui.newButton("Continue (C)", func() {
		if ui.OnContinue != nil {
			ui.OnContinue()
		}
	})
	container.AddChild(ui.continueBtn)

	return container
}

func (ui *GameOverUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.GameOver.ButtonWidth, cfg.GameOver.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.GameOver.ButtonIdle),
			Hover:    image.NewNineSliceColor(cfg.GameOver.ButtonHover),
			Pressed:  image.NewNineSliceColor(cfg.GameOver.ButtonPressed),
			Disabled: image.NewNineSliceColor(cfg.GameOver.PanelColor),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.GameOver.TextColor,
			Disabled: cfg.GameOver.ButtonIdle,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetReport refreshes the labels from the final state of the run. Continue is
// only offered after a loss.
func (ui *GameOverUI) SetReport(r components.Report) {
	ui.titleLabel.Label = endTitles[r.Status]
	ui.scoreLabel.Label = fmt.Sprintf("Score: %d", r.Score)
	ui.detailLabel.Label = fmt.Sprintf("Level %d   Deaths: %d", r.LevelIndex+1, r.Deaths)
	ui.continueBtn.GetWidget().Disabled = !r.Status.CanContinue()
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
