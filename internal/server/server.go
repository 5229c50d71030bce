package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/sims/sand"

	"golang.org/x/net/websocket"
)

const (
	// broadcastDivisor sends one delta every N ticks.
	broadcastDivisor = 2
	// fullFrameEvery forces a keyframe after this many broadcasts so a
	// client that missed deltas converges.
	fullFrameEvery = 150
	// clientQueue bounds the per-client send backlog; slow readers drop
	// frames rather than stalling the loop.
	clientQueue = 64
)

// Server owns the sand world and fans simulation frames out to websocket
// clients. The world is only ever touched with mu held; the tick loop and
// every client goroutine serialise through it.
type Server struct {
	mu    sync.Mutex
	world *sand.World

	tps int

	clientsMu sync.Mutex
	clients   map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// New wraps a world in a Server ticking at the given rate.
func New(world *sand.World, tps int) *Server {
	if tps <= 0 {
		tps = 60
	}
	return &Server{
		world:   world,
		tps:     tps,
		clients: map[*client]struct{}{},
	}
}

// Run drives the simulation loop until stop is closed. It blocks and is
// normally started as a goroutine.
func (s *Server) Run(stop <-chan struct{}) {
	fs := core.NewFixedStep(s.tps)
	dt := fs.Dt()

	frame := 0
	broadcasts := 0
	for {
		select {
		case <-stop:
			return
		default:
		}
		if !fs.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		s.mu.Lock()
		s.world.Tick(dt)

		frame++
		var payload []byte
		if frame%broadcastDivisor == 0 {
			broadcasts++
			if broadcasts%fullFrameEvery == 0 {
				payload = s.marshalFullStateLocked()
			} else {
				added, removed := s.world.Delta()
				if len(added) > 0 || len(removed) > 0 {
					payload = marshal(DeltaUpdate{Type: TypeDeltaUpdate, Added: added, Removed: removed})
				}
			}
		}
		s.mu.Unlock()

		if payload != nil {
			s.broadcast(payload)
		}
	}
}

// Handler returns the websocket endpoint.
func (s *Server) Handler() http.Handler {
	return websocket.Handler(s.handleWS)
}

func (s *Server) handleWS(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, clientQueue)}

	s.clientsMu.Lock()
	s.clients[c] = struct{}{}
	s.clientsMu.Unlock()

	go func() {
		for payload := range c.send {
			if err := websocket.Message.Send(conn, string(payload)); err != nil {
				return
			}
		}
	}()

	// Greet with the catalogue, templates and a keyframe.
	c.enqueue(marshal(materialsMessage()))
	c.enqueue(marshal(structuresMessage()))
	s.mu.Lock()
	c.enqueue(s.marshalFullStateLocked())
	s.mu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, c)
		s.clientsMu.Unlock()
		c.close()
	}()

	for {
		var raw string
		if err := websocket.Message.Receive(conn, &raw); err != nil {
			return
		}
		s.handleMessage(c, []byte(raw))
	}
}

func (s *Server) handleMessage(c *client, raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.enqueue(marshal(ErrorMessage{Type: TypeError, Message: "malformed message"}))
		return
	}

	switch msg.Type {
	case TypePaint:
		if !msg.Material.Valid() {
			c.enqueue(marshal(ErrorMessage{Type: TypeError, Message: "unknown material"}))
			return
		}
		s.mu.Lock()
		s.world.Paint(msg.X, msg.Y, msg.BrushSize, msg.Material)
		s.mu.Unlock()
	case TypeClear:
		s.mu.Lock()
		s.world.Clear()
		s.mu.Unlock()
	case TypeGetParticle:
		s.mu.Lock()
		info, ok := s.world.Probe(msg.X, msg.Y)
		s.mu.Unlock()
		reply := ParticleInfo{Type: TypeParticleInfo, X: msg.X, Y: msg.Y}
		if ok && info.Kind != sand.Empty {
			kind := info.Kind
			temp := info.Temp
			burning := info.Burning
			reply.Material = &kind
			reply.Temp = &temp
			reply.Burning = &burning
			if info.HasLife {
				life := info.Life
				reply.Life = &life
			}
		}
		c.enqueue(marshal(reply))
	case TypePlaceStructure:
		s.mu.Lock()
		err := s.world.PlaceStructure(msg.StructureName, msg.X, msg.Y)
		s.mu.Unlock()
		reply := StructurePlaced{Type: TypeStructurePlaced, Success: err == nil, StructureName: msg.StructureName}
		if err != nil {
			reply.Error = err.Error()
		}
		c.enqueue(marshal(reply))
	default:
		c.enqueue(marshal(ErrorMessage{Type: TypeError, Message: "unknown message type"}))
	}
}

func (s *Server) marshalFullStateLocked() []byte {
	size := s.world.Size()
	return marshal(SimulationState{
		Type:      TypeSimulationState,
		Width:     size.W,
		Height:    size.H,
		Particles: s.world.Snapshot(),
	})
}

func (s *Server) broadcast(payload []byte) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for c := range s.clients {
		c.enqueue(payload)
	}
}

func (c *client) enqueue(payload []byte) {
	if payload == nil {
		return
	}
	select {
	case c.send <- payload:
	default:
		// Backlogged client: drop the frame, the next keyframe resyncs it.
	}
}

func marshal(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("marshal %T: %v", v, err)
		return nil
	}
	return payload
}
