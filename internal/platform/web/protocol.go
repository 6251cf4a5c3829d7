package web

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

// Message types exchanged over the WebSocket.
const (
	MsgFlap    = "flap"
	MsgRestart = "restart"
	MsgWelcome = "welcome"
	MsgFrame   = "frame"
)

// ClientMessage is any message sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`
}

// Welcome is the first message of every connection.
type Welcome struct {
	Type   string  `json:"type"`
	Player string  `json:"player"`
	TickHz int     `json:"tickHz"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Best   int     `json:"best"`
}

// Frame carries everything the page needs to draw one tick.
type Frame struct {
	Type   string   `json:"type"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Status string   `json:"status"`
	Score  int      `json:"score"`
	Ticks  int      `json:"ticks"`
	Ops    []RectOp `json:"ops"`
}

// RectOp is one filled rectangle in surface units.
type RectOp struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Color string  `json:"color"`
}

// ScoreJSON is one row of the /api/scores response.
type ScoreJSON struct {
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	Ticks     int       `json:"ticks"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

func scoresJSON(entries []storage.ScoreEntry) []ScoreJSON {
	out := make([]ScoreJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, ScoreJSON{
			Player:    e.Player,
			Score:     e.Score,
			Ticks:     e.Ticks,
			Mode:      e.Mode,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

// DecodeClient parses a message from the browser.
func DecodeClient(b []byte) (ClientMessage, error) {
	if len(b) == 0 {
		return ClientMessage{}, fmt.Errorf("web: empty message")
	}
	var m ClientMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return ClientMessage{}, fmt.Errorf("web: bad message: %w", err)
	}
	if m.Type == "" {
		return ClientMessage{}, fmt.Errorf("web: message without type")
	}
	return m, nil
}

// DrawList is a Surface that records fill operations for the browser.
type DrawList struct {
	width  float64
	height float64
	ops    []RectOp
}

// NewDrawList creates an empty draw list for a w by h surface.
func NewDrawList(w, h float64) *DrawList {
	return &DrawList{width: w, height: h, ops: make([]RectOp, 0, 16)}
}

func (d *DrawList) Ready() bool {
	return d.width > 0 && d.height > 0
}

func (d *DrawList) Size() (float64, float64) {
	return d.width, d.height
}

func (d *DrawList) Clear() {
	d.ops = d.ops[:0]
}

func (d *DrawList) FillRect(x, y, w, h float64, c core.Color) {
	d.ops = append(d.ops, RectOp{X: x, Y: y, W: w, H: h, Color: c.String()})
}

// Ops returns a copy of the recorded operations.
func (d *DrawList) Ops() []RectOp {
	out := make([]RectOp, len(d.ops))
	copy(out, d.ops)
	return out
}
