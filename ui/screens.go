package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ScreensUI holds the ebitenui panels shown around a round: the start
// panel, the two result popups and the mute button. Each panel is its own
// UI so that only the visible ones receive input.
type ScreensUI struct {
	ecs *ecs.ECS

	// Callbacks
	OnPlay    func()
	OnRestart func()
	OnMute    func()

	start    *ebitenui.UI
	winner   *ebitenui.UI
	gameOver *ebitenui.UI
	mute     *ebitenui.UI

	// Widget references for updates
	startBest     *widget.Label
	winnerScore   *widget.Label
	winnerBest    *widget.Label
	gameOverScore *widget.Label
	gameOverBest  *widget.Label
	muteButton    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewScreensUI builds every panel. The callbacks run from inside Update.
func NewScreensUI(e *ecs.ECS, onPlay, onRestart, onMute func()) *ScreensUI {
	s := &ScreensUI{
		ecs:       e,
		OnPlay:    onPlay,
		OnRestart: onRestart,
		OnMute:    onMute,
	}

	s.loadFonts()
	s.start = s.buildStartPanel()
	s.winner, s.winnerScore, s.winnerBest = s.buildResultPopup("YOU WIN!", cfg.BrightGreen)
	s.gameOver, s.gameOverScore, s.gameOverBest = s.buildResultPopup("GAME OVER", cfg.LightRed)
	s.mute = s.buildMuteButton()

	return s
}

func (s *ScreensUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	s.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	s.normalFace = &text.GoTextFace{Source: fontSource, Size: 28}
	s.smallFace = &text.GoTextFace{Source: fontSource, Size: 20}
}

func (s *ScreensUI) buildStartPanel() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	panel := s.newPanel(func(args *widget.WidgetMouseButtonPressedEventArgs) {
		s.play()
	})

	panel.AddChild(s.newLabel(cfg.C.Title, &s.titleFace, cfg.White))
	panel.AddChild(s.newLabel("Dodge the storm, catch the stars", &s.smallFace, cfg.White))

	s.startBest = s.newLabel("Best: 0", &s.normalFace, cfg.Yellow)
	panel.AddChild(s.startBest)

	panel.AddChild(s.newButton("PLAY", s.startButtonImage(), s.play))
	panel.AddChild(s.newLabel("Enter / Space / tap to start", &s.smallFace, color.RGBA{200, 200, 220, 255}))

	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (s *ScreensUI) buildResultPopup(title string, titleColor color.RGBA) (*ebitenui.UI, *widget.Label, *widget.Label) {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := s.newPanel(nil)

	panel.AddChild(s.newLabel(title, &s.titleFace, titleColor))
	score := s.newLabel("Score: 0", &s.normalFace, cfg.White)
	panel.AddChild(score)
	best := s.newLabel("Best: 0", &s.normalFace, cfg.Yellow)
	panel.AddChild(best)

	panel.AddChild(s.newButton("RESTART", s.startButtonImage(), func() {
		if s.OnRestart != nil {
			s.OnRestart()
		}
	}))

	root.AddChild(panel)
	return &ebitenui.UI{Container: root}, score, best
}

func (s *ScreensUI) buildMuteButton() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(12)),
	)))

	s.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 44),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(s.buttonImage()),
		widget.ButtonOpts.Text(muteLabel(false), &s.smallFace, s.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.OnMute != nil {
				s.OnMute()
			}
		}),
	)
	root.AddChild(s.muteButton)
	return &ebitenui.UI{Container: root}
}

// newPanel creates the centred vertical box used by every screen. onPress,
// if set, fires for a press anywhere on the panel.
func (s *ScreensUI) newPanel(onPress widget.WidgetMouseButtonPressedHandlerFunc) *widget.Container {
	widgetOpts := []widget.WidgetOpt{
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}),
		widget.WidgetOpts.MinSize(380, 0),
	}
	if onPress != nil {
		widgetOpts = append(widgetOpts, widget.WidgetOpts.MouseButtonPressedHandler(onPress))
	}

	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 40, 90, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(widgetOpts...),
	)
}

func (s *ScreensUI) newLabel(label string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{Idle: clr}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	)
}

func (s *ScreensUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 56),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &s.normalFace, s.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (s *ScreensUI) play() {
	if s.OnPlay != nil {
		s.OnPlay()
	}
}

func (s *ScreensUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 220}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 230}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 230}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 200}),
	}
}

func (s *ScreensUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{255, 150, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{255, 180, 80, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{220, 120, 20, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{120, 90, 60, 255}),
	}
}

func (s *ScreensUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "Sound: Off"
	}
	return "Sound: On"
}

// active returns the panels that should currently receive input and be drawn.
func (s *ScreensUI) active() []*ebitenui.UI {
	panels := []*ebitenui.UI{s.mute}

	round := systems.GetRound(s.ecs)
	if round == nil {
		return panels
	}
	switch {
	case systems.StartPanelVisible(s.ecs):
		panels = append(panels, s.start)
	case round.State == cfg.RoundWinner:
		panels = append(panels, s.winner)
	case round.State == cfg.RoundGameOver:
		panels = append(panels, s.gameOver)
	}
	return panels
}

// Update refreshes labels from the HUD mirror and forwards input to the
// visible panels.
func (s *ScreensUI) Update() {
	if hud := systems.GetHUD(s.ecs); hud != nil {
		best := fmt.Sprintf("Best: %d", hud.Best)
		s.startBest.Label = best
		s.winnerBest.Label = best
		s.gameOverBest.Label = best

		final := fmt.Sprintf("Score: %d", hud.Final)
		s.winnerScore.Label = final
		s.gameOverScore.Label = final
	}
	if textWidget := s.muteButton.Text(); textWidget != nil {
		textWidget.Label = muteLabel(systems.IsMuted(s.ecs))
	}

	for _, panel := range s.active() {
		panel.Update()
	}
}

// Draw renders the visible panels at screen resolution.
func (s *ScreensUI) Draw(screen *ebiten.Image) {
	for _, panel := range s.active() {
		panel.Draw(screen)
	}
}
