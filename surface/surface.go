// Package surface defines the display mount points the storefront
// composers write into. Every caller tolerates a nil surface: a missing
// mount point makes the corresponding population a no-op, never an error.
package surface

// Surface is a text mount point that can be shown or hidden.
type Surface interface {
	SetText(text string)
	Show()
	Hide()
}

// Image is a mount point displaying a single asset.
type Image interface {
	SetImage(src, alt string)
}

// Button is an actionable mount point with transient visual feedback.
type Button interface {
	SetLabel(label string)
	SetOpacity(opacity float64)
}

// Lines is a mount point that grows by appending lines of text.
type Lines interface {
	AppendLine(line string)
}

// Thumb is a gallery thumbnail: an image with an active highlight.
type Thumb interface {
	Image
	SetActive(active bool)
}

// Label is an in-memory Surface used by tests and the page renderer.
type Label struct {
	Text    string
	Visible bool
}

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.Text = text }

// Show marks the label visible.
func (l *Label) Show() { l.Visible = true }

// Hide marks the label hidden.
func (l *Label) Hide() { l.Visible = false }

// Picture is an in-memory Image with an active-highlight flag for
// gallery thumbnails.
type Picture struct {
	Src    string
	Alt    string
	Active bool
}

// SetImage replaces the displayed asset.
func (p *Picture) SetImage(src, alt string) {
	p.Src = src
	p.Alt = alt
}

// SetActive toggles the thumbnail highlight.
func (p *Picture) SetActive(active bool) {
	p.Active = active
}

// PushButton is an in-memory Button.
type PushButton struct {
	Label   string
	Opacity float64
}

// SetLabel replaces the button label.
func (b *PushButton) SetLabel(label string) { b.Label = label }

// SetOpacity sets the button opacity.
func (b *PushButton) SetOpacity(opacity float64) { b.Opacity = opacity }

// Block is an in-memory Lines implementation.
type Block struct {
	Content []string
}

// AppendLine appends one line to the block.
func (b *Block) AppendLine(line string) {
	b.Content = append(b.Content, line)
}
