package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/model"
)

// Card text sizing
const (
	CardTitleTextSize   float32 = 15
	CardInsightTextSize float32 = 12
	CardCheckTextSize   float32 = 20
	CardTitleBaseline   float32 = 10
	CardInsightBaseline float32 = 36
	// Below this drawn height the card is too squashed for readable text.
	CardTextCutoffHeight float32 = 30
)

// EntryCard is a checklist card whose presentation follows the live
// compression values computed for its entry by the engine.
type EntryCard struct {
	widget.BaseWidget

	entry        *model.ChecklistEntry
	localization *Localization

	render compression.RenderValues

	// UI components
	background  *canvas.Rectangle
	titleText   *canvas.Text
	insightText *canvas.Text
	checkText   *canvas.Text

	gestureHandler *GestureHandler
	checkAnim      *fyne.Animation
	animTint       color.Color // non-nil while the check animation overrides the fill

	// Callbacks
	onShowInsight func(*model.ChecklistEntry)
}

// NewEntryCard creates a new card widget for one checklist entry
func NewEntryCard(entry *model.ChecklistEntry, localization *Localization) *EntryCard {
	if entry == nil {
		log.Printf("Warning: NewEntryCard called with nil entry")
		entry = &model.ChecklistEntry{ID: "dummy", Title: "Dummy Entry"}
	}

	ec := &EntryCard{
		entry:        entry,
		localization: localization,
		render: compression.RenderValues{
			Height:           CardHeight,
			Scale:            1,
			SecondaryOpacity: 1,
		},
	}
	ec.gestureHandler = NewGestureHandler(func(gesture GestureType) {
		if gesture == GestureLongPress || gesture == GestureTap {
			ec.showInsight()
		}
	})
	ec.ExtendBaseWidget(ec)
	ec.createUI()
	return ec
}

// SetShowInsightCallback sets the callback invoked on tap or long press
func (ec *EntryCard) SetShowInsightCallback(callback func(*model.ChecklistEntry)) {
	ec.onShowInsight = callback
}

// ID returns the underlying entry's identifier
func (ec *EntryCard) ID() string {
	return ec.entry.ID
}

// Entry returns the underlying entry
func (ec *EntryCard) Entry() *model.ChecklistEntry {
	return ec.entry
}

// UpdateEntry replaces the card's entry data and refreshes the display
func (ec *EntryCard) UpdateEntry(entry *model.ChecklistEntry) {
	if entry == nil {
		log.Printf("Warning: UpdateEntry called with nil entry for card %s", ec.entry.ID)
		return
	}
	ec.entry = entry
	ec.Refresh()
}

// ApplyCompression feeds the latest per-frame render values into the card.
// Called on every scroll tick; must stay cheap.
func (ec *EntryCard) ApplyCompression(rv compression.RenderValues) {
	ec.render = rv
	ec.Refresh()
}

// PlayCheckAnimation eases the card background into the completed tint.
// The animation is presentational only and never blocks the next layout pass.
func (ec *EntryCard) PlayCheckAnimation() {
	if ec.checkAnim != nil {
		ec.checkAnim.Stop()
	}

	start := ec.baseFillColor()
	ec.checkAnim = canvas.NewColorRGBAAnimation(start, CardDoneColor, CheckAnimationDuration, func(c color.Color) {
		ec.animTint = c
		ec.background.FillColor = c
		canvas.Refresh(ec.background)
	})
	ec.checkAnim.Curve = fyne.AnimationEaseInOut
	ec.checkAnim.Start()
}

// Tapped shows the entry's insight on desktop clicks
func (ec *EntryCard) Tapped(*fyne.PointEvent) {
	ec.showInsight()
}

// TouchDown handles touch down events
func (ec *EntryCard) TouchDown(event *mobile.TouchEvent) {
	ec.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (ec *EntryCard) TouchUp(event *mobile.TouchEvent) {
	ec.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (ec *EntryCard) TouchCancel(event *mobile.TouchEvent) {
	ec.gestureHandler.TouchCancel(event)
}

func (ec *EntryCard) showInsight() {
	if ec.onShowInsight != nil {
		ec.onShowInsight(ec.entry)
	}
}

// createUI creates the UI components
func (ec *EntryCard) createUI() {
	ec.background = canvas.NewRectangle(ec.baseFillColor())
	ec.background.CornerRadius = 8

	ec.titleText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ec.titleText.TextSize = CardTitleTextSize
	ec.titleText.TextStyle = fyne.TextStyle{Bold: true}

	ec.insightText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ec.insightText.TextSize = CardInsightTextSize

	ec.checkText = canvas.NewText(IconCheck, color.White)
	ec.checkText.TextSize = CardCheckTextSize
	ec.checkText.TextStyle = fyne.TextStyle{Bold: true}
	ec.checkText.Hide()
}

// baseFillColor is the card fill before compression tinting
func (ec *EntryCard) baseFillColor() color.RGBA {
	if fyne.CurrentApp() != nil &&
		fyne.CurrentApp().Settings().ThemeVariant() == theme.VariantDark {
		return CardBaseColorDark
	}
	return CardBaseColorLight
}

// fillColor resolves the current card fill: animation override first, then
// the checked color, then the tint interpolation driven by compression.
func (ec *EntryCard) fillColor() color.Color {
	if ec.animTint != nil {
		return ec.animTint
	}
	if ec.entry.Checked {
		return CardDoneColor
	}
	return lerpColor(ec.baseFillColor(), CardDoneColor, ec.render.Tint)
}

// CreateRenderer creates the widget renderer
func (ec *EntryCard) CreateRenderer() fyne.WidgetRenderer {
	return &entryCardRenderer{card: ec}
}

// entryCardRenderer renders the entry card widget
type entryCardRenderer struct {
	card *EntryCard
}

// MinSize reserves the card's current slot in the list. Under the
// height-shrink strategy the slot collapses with the card; the other
// strategies keep the slot fixed and restyle the drawn card instead.
func (r *entryCardRenderer) MinSize() fyne.Size {
	height := r.card.render.Height
	if height < MinCompressedHeight {
		height = MinCompressedHeight
	}
	return fyne.NewSize(CardMinWidth, height+CardSpacing)
}

// Layout arranges the card visuals for the current render values
func (r *entryCardRenderer) Layout(size fyne.Size) {
	rv := r.card.render

	drawW := (size.Width - 2*CardCornerInset) * rv.Scale
	if drawW < 0 {
		drawW = 0
	}
	drawH := rv.Height * rv.Scale
	if drawH < 0 {
		drawH = 0
	}

	x := (size.Width - drawW) / 2
	y := rv.OffsetY + (rv.Height-drawH)/2

	r.card.background.Move(fyne.NewPos(x, y))
	r.card.background.Resize(fyne.NewSize(drawW, drawH))

	if drawH < CardTextCutoffHeight {
		r.card.titleText.Hide()
		r.card.insightText.Hide()
	} else {
		r.card.titleText.Show()
		r.card.insightText.Show()
		r.card.titleText.Move(fyne.NewPos(x+CardPadding, y+CardTitleBaseline))
		r.card.insightText.Move(fyne.NewPos(x+CardPadding, y+CardInsightBaseline))
	}

	checkSize := r.card.checkText.MinSize()
	r.card.checkText.Move(fyne.NewPos(
		x+drawW-checkSize.Width-CardPadding,
		y+(drawH-checkSize.Height)/2,
	))
}

// Refresh updates the card visuals from entry state and render values
func (r *entryCardRenderer) Refresh() {
	ec := r.card

	ec.background.FillColor = ec.fillColor()

	ec.titleText.Text = ec.entry.GetDisplayTitle()
	ec.titleText.Color = ec.foregroundColor()

	ec.insightText.Text = ec.entry.GetDisplayInsight()
	ec.insightText.Color = ec.insightColor()

	if ec.entry.Checked {
		ec.checkText.Show()
	} else {
		ec.checkText.Hide()
	}

	r.Layout(ec.Size())

	canvas.Refresh(ec.background)
	canvas.Refresh(ec.titleText)
	canvas.Refresh(ec.insightText)
	canvas.Refresh(ec.checkText)
}

// Objects returns the rendered canvas objects
func (r *entryCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.card.background,
		r.card.titleText,
		r.card.insightText,
		r.card.checkText,
	}
}

// Destroy cleans up the renderer
func (r *entryCardRenderer) Destroy() {
	if r.card.checkAnim != nil {
		r.card.checkAnim.Stop()
	}
}

func (ec *EntryCard) foregroundColor() color.Color {
	if ec.entry.Checked || ec.render.Tint > 0.5 {
		return color.White
	}
	return theme.Color(theme.ColorNameForeground)
}

// insightColor fades the secondary text out as the card compresses
func (ec *EntryCard) insightColor() color.Color {
	alpha := ec.render.SecondaryOpacity
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	base := color.RGBA{R: 128, G: 128, B: 136, A: 255}
	if ec.entry.Checked {
		base = color.RGBA{R: 235, G: 245, B: 238, A: 255}
	}
	base.A = uint8(alpha * 255)
	return base
}
