//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/Norgate-AV/wwb/internal/wm"
)

// Monitors retrieves the full pixel bounds of all active displays using
// XRandR. Bounds are the raw CRTC geometry, not the work area: a fullscreen
// window is meant to cover panels and docks too.
func (c *Connection) Monitors() ([]wm.Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []wm.Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		device := fmt.Sprintf("CRTC%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			device = string(outputInfo.Name)
		}

		monitors = append(monitors, wm.Monitor{
			Device: device,
			Bounds: wm.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	return monitors, nil
}

// windowCenter returns the window's center point in root coordinates.
func (c *Connection) windowCenter(win xproto.Window) (x, y int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, err
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(translate.DstX) + int(geom.Width)/2, int(translate.DstY) + int(geom.Height)/2, nil
}

// monitorFor picks the monitor containing the point, or the nearest one when
// the point lies outside every monitor (a window dragged half off-screen).
func monitorFor(monitors []wm.Monitor, x, y int) (wm.Monitor, error) {
	if len(monitors) == 0 {
		return wm.Monitor{}, fmt.Errorf("no active monitors")
	}

	for _, mon := range monitors {
		if containsPoint(mon.Bounds, x, y) {
			return mon, nil
		}
	}

	nearest := monitors[0]
	best := distanceToRect(nearest.Bounds, x, y)

	for _, mon := range monitors[1:] {
		if d := distanceToRect(mon.Bounds, x, y); d < best {
			nearest = mon
			best = d
		}
	}

	return nearest, nil
}

func containsPoint(r wm.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// distanceToRect returns the squared distance from a point to the nearest
// edge of the rectangle; zero when the point is inside.
func distanceToRect(r wm.Rect, x, y int) int {
	dx := 0
	if x < r.X {
		dx = r.X - x
	} else if x >= r.X+r.Width {
		dx = x - (r.X + r.Width - 1)
	}

	dy := 0
	if y < r.Y {
		dy = r.Y - y
	} else if y >= r.Y+r.Height {
		dy = y - (r.Y + r.Height - 1)
	}

	return dx*dx + dy*dy
}
