package render

import (
	"fmt"
	"image/color"

	"go-tactical-defense/pkg/pathnet"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PathRenderer pre-renders the path network into a background image.
type PathRenderer struct {
	network  *pathnet.Network
	colors   MapColors
	fillImg  *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	fontFace font.Face
	mapImage *ebiten.Image
}

func NewPathRenderer(network *pathnet.Network, colors MapColors, face font.Face, screenWidth, screenHeight int) *PathRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &PathRenderer{
		network:  network,
		colors:   colors,
		fillImg:  fillImg,
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
		fontFace: face,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the cached background.
func (r *PathRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	// Edges first so the fill covers their inner half.
	for _, p := range r.network.Paths() {
		r.strokePath(r.mapImage, p, r.colors.PathWidth+2*r.colors.EdgeWidth, r.colors.PathEdgeColor)
	}
	for _, p := range r.network.Paths() {
		r.strokePath(r.mapImage, p, r.colors.PathWidth, r.colors.PathColor)
	}

	for i, p := range r.network.Paths() {
		entry, _ := p.Waypoint(0)
		exit, _ := p.Waypoint(p.LastIndex())
		radius := r.colors.PathWidth / 2
		vector.DrawFilledCircle(r.mapImage, float32(entry.X), float32(entry.Y), radius, r.colors.EntryColor, true)
		vector.DrawFilledCircle(r.mapImage, float32(exit.X), float32(exit.Y), radius, r.colors.ExitColor, true)
		if r.fontFace != nil {
			label := fmt.Sprintf("%d", i+1)
			b := text.BoundString(r.fontFace, label)
			text.Draw(r.mapImage, label, r.fontFace, int(entry.X)-b.Dx()/2, int(entry.Y)+b.Dy()/2, r.colors.LabelColor)
		}
	}
}

// Draw blits the cached background.
func (r *PathRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *PathRenderer) strokePath(target *ebiten.Image, p pathnet.Path, width float32, c color.RGBA) {
	path := vector.Path{}
	for i, pt := range p.Waypoints() {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
	}

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	tint(r.vs, c)
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// FillPolygon draws a filled convex or concave polygon with a white source image.
func FillPolygon(target *ebiten.Image, points [][2]float32, c color.Color) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, c)
	target.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

var white *ebiten.Image

func whiteImage() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(1, 1)
		white.Fill(color.White)
	}
	return white
}

func tint(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
