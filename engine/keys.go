package engine

import (
	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/input"
	"github.com/lixenwraith/term7/render"
	"github.com/lixenwraith/term7/texture"
)

// apply routes one intent
// Held controls act on both phases, everything else on press only
func (g *Game) apply(in input.Intent) error {
	switch in.Type {
	case input.IntentMoveForward, input.IntentMoveBackward, input.IntentTurnLeft, input.IntentTurnRight:
		g.hold(in)
		return nil
	}

	if in.Phase != input.PhasePress {
		return nil
	}

	cam := g.camera
	switch in.Type {
	case input.IntentQuit:
		g.quit = true

	case input.IntentResize:
		g.screen.Clear()
		g.screen.Sync()

	case input.IntentNudgeBack:
		cam.Nudge(-constants.NudgeDistance)
	case input.IntentNudgeForward:
		cam.Nudge(constants.NudgeDistance)
	case input.IntentZoomIn:
		cam.Zoom(constants.ZoomFactor)
	case input.IntentZoomOut:
		cam.Zoom(1 / constants.ZoomFactor)
	case input.IntentResetView:
		cam.Reset()

	case input.IntentTogglePerspective:
		g.renderer.Perspective = !g.renderer.Perspective

	case input.IntentNextBackend:
		g.nextBackend()

	case input.IntentFewerMipmaps:
		g.mipmaps = texture.ClampLevels(g.mipmaps - 1)
		return g.rebuild()
	case input.IntentMoreMipmaps:
		g.mipmaps = texture.ClampLevels(g.mipmaps + 1)
		return g.rebuild()
	case input.IntentFewerColors:
		g.colors = texture.ClampColors(g.colors - 1)
		return g.rebuild()
	case input.IntentMoreColors:
		g.colors = texture.ClampColors(g.colors + 1)
		return g.rebuild()
	case input.IntentNextMap:
		m := g.catalog.Next()
		g.colors = m.Colors
		g.mipmaps = render.DefaultMipmaps(g.Backend())
		return g.rebuild()

	case input.IntentToggleSound:
		if g.sound != nil {
			g.sound.SetEnabled(!g.sound.Enabled())
		}
	}
	return nil
}

func (g *Game) hold(in input.Intent) {
	acc := g.camera.Move
	reverse := false
	switch in.Type {
	case input.IntentMoveBackward:
		reverse = true
	case input.IntentTurnLeft:
		acc = g.camera.Turn
		reverse = true
	case input.IntentTurnRight:
		acc = g.camera.Turn
	}

	if in.Phase == input.PhasePress {
		acc.Press(reverse)
	} else {
		acc.Release()
	}
}
