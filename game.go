// Impostor
//
// One device is passed around the table. Each player flips their card in
// turn: everyone sees the secret word except the impostor, who sees nothing
// or, with clues enabled, a vague hint. Once everyone has looked, players
// take turns saying a related word and try to work out who is bluffing.
//
// Features:
// - WebSockets per game ID: /path/:gameid and /path/:gameid/ws
// - Any number of devices may watch the same game; all see the same screen
// - Each game owns one impostor.Session; transitions are applied one at a
//   time by the game's hub goroutine
// - Rejected actions are reported only to the device that sent them
// - Only the current player's card is ever sent, and only once revealed
// - Games auto-reaped after configurable idle and abandoned timeouts
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current game, backed by go-qrcode

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/impostor/games/impostor"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
)

var errUnknownAction = errors.New("unknown action")

// Messages coming from clients
type ClientMessage struct {
	Type        string              `json:"type"`                   // "start", "names", "reveal", "next", "restart", "new_players", "new_categories"
	PlayerCount int                 `json:"player_count,omitempty"` // start
	Categories  []impostor.Category `json:"categories,omitempty"`   // start / new_categories
	Mode        impostor.Mode       `json:"mode,omitempty"`         // start
	Names       []string            `json:"names,omitempty"`        // names
}

// CatalogMessage is sent on connect so the client can draw the setup screen.
type CatalogMessage struct {
	Type    string          `json:"type"` // "catalog"
	Catalog catalogResponse `json:"catalog"`
}

// StateMessage is what every device renders. It never carries the secret
// word or the impostor's seat; those only reach the screen through Card.
type StateMessage struct {
	Type          string              `json:"type"` // "state"
	Phase         impostor.Phase      `json:"phase"`
	PlayerCount   int                 `json:"player_count"`
	PlayerNames   []string            `json:"player_names"`
	DefaultNames  []string            `json:"default_names,omitempty"` // naming
	Categories    []impostor.Category `json:"categories"`
	Mode          impostor.Mode       `json:"mode"`
	CurrentPlayer int                 `json:"current_player"`
	CurrentName   string              `json:"current_name,omitempty"`
	CardRevealed  bool                `json:"card_revealed"`
	Card          *impostor.Card      `json:"card,omitempty"`
}

// ErrorMessage is sent only to the client whose action was rejected.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newStateMessage(st impostor.State) StateMessage {
	msg := StateMessage{
		Type:          "state",
		Phase:         st.Phase,
		PlayerCount:   st.PlayerCount,
		PlayerNames:   st.PlayerNames,
		Categories:    st.SelectedCategories,
		Mode:          st.GameMode,
		CurrentPlayer: st.CurrentPlayerIndex,
		CurrentName:   st.CurrentPlayerName(),
		CardRevealed:  st.CardRevealed,
	}

	if st.Phase == impostor.PhaseNaming {
		msg.DefaultNames = impostor.DefaultNames(st.PlayerCount)
	}

	if card, ok := st.Card(); ok {
		msg.Card = &card
	}

	return msg
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	deviceID string
}

type actionRequest struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	session *impostor.Session
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	actions  chan actionRequest
	done     chan struct{}
	once     sync.Once

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
	emptySince time.Time // zero while any client is connected
}

func newHub(gameID string, session *impostor.Session) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		session:    session,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		actions:    make(chan actionRequest),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
		emptySince: now,
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.emptySince = time.Time{}
			h.clients[c] = true

			h.sendLocked(c, CatalogMessage{
				Type:    "catalog",
				Catalog: newCatalogResponse(h.session.Catalog()),
			})
			h.sendLocked(c, newStateMessage(h.session.State()))
			count := len(h.clients)
			h.mu.Unlock()

			logf(cfg, "GAMES: Device %s joined %s (%d connected)", shortID(c.deviceID), h.id, count)

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			if len(h.clients) == 0 {
				h.emptySince = h.lastActive
			}
			count := len(h.clients)
			h.mu.Unlock()

			logf(cfg, "GAMES: Device %s left %s (%d connected)", shortID(c.deviceID), h.id, count)

		case req := <-h.actions:
			h.handleAction(cfg, req)

		case <-h.done:
			return
		}
	}
}

// apply maps one client action onto the session.
func (h *Hub) apply(msg ClientMessage) (impostor.State, error) {
	switch msg.Type {
	case "start":
		if err := impostor.ValidatePlayerCount(msg.PlayerCount); err != nil {
			return h.session.State(), err
		}
		mode := msg.Mode
		if mode == "" {
			mode = impostor.ModeBasic
		}
		return h.session.StartGame(msg.PlayerCount, msg.Categories, mode)
	case "names":
		return h.session.SubmitNames(impostor.NormalizeNames(msg.Names))
	case "reveal":
		return h.session.RevealCard()
	case "next":
		return h.session.AdvancePlayer()
	case "restart":
		return h.session.RestartSameLineup()
	case "new_players":
		return h.session.RestartWithNewPlayers()
	case "new_categories":
		return h.session.RestartWithNewCategories(msg.Categories)
	default:
		return h.session.State(), errUnknownAction
	}
}

func (h *Hub) handleAction(cfg *Config, req actionRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	before := h.session.State()

	st, err := h.apply(req.msg)
	if err != nil {
		logf(cfg, "GAMES: Rejected %q in %s: %v", req.msg.Type, h.id, err)

		h.sendLocked(req.client, ErrorMessage{
			Type:    "error",
			Code:    errorCode(err),
			Message: err.Error(),
		})
		return
	}

	if st.Phase != before.Phase || st.SecretWord != before.SecretWord {
		logf(cfg, "GAMES: %s moved from %s to %s (%d players, %d categories, %s)",
			h.id, before.Phase, st.Phase, st.PlayerCount, len(st.SelectedCategories), st.GameMode)
	}

	h.broadcastLocked(newStateMessage(st))
}

// sendLocked assumes h.mu is already held. Clients that cannot keep up are
// dropped.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

func (h *Hub) connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// closeAll disconnects all clients of this hub and stops its loop.
func (h *Hub) closeAll() {
	h.once.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const deviceCookieName = "impostor_device"

func getOrSetDeviceID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(deviceCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     deviceCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated game.
type GameManager struct {
	mu      sync.Mutex
	hubs    map[string]*Hub
	catalog *impostor.Catalog

	idleTimeout    time.Duration
	abandonTimeout time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func newGameManager(cfg *Config, catalog *impostor.Catalog) *GameManager {
	gm := &GameManager{
		hubs:           make(map[string]*Hub),
		catalog:        catalog,
		idleTimeout:    cfg.sessionTimeout,
		abandonTimeout: cfg.deviceTimeout,
		stop:           make(chan struct{}),
	}
	if interval := gm.reapInterval(); interval > 0 {
		go gm.reaperLoop(cfg, interval)
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) (*Hub, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub, nil
	}

	rng, err := gameRand(cfg, gameID)
	if err != nil {
		return nil, err
	}

	hub := newHub(gameID, impostor.NewSession(gm.catalog, rng))
	gm.hubs[gameID] = hub
	go hub.run(cfg)

	logf(cfg, "GAMES: Started %s", gameID)

	return hub, nil
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

func (gm *GameManager) reapInterval() time.Duration {
	interval := gm.idleTimeout
	if gm.abandonTimeout > 0 && (interval == 0 || gm.abandonTimeout < interval) {
		interval = gm.abandonTimeout
	}
	return interval / 2
}

// expired reports whether a hub has been idle longer than idleTimeout, or
// has had no devices connected for longer than abandonTimeout.
func (gm *GameManager) expired(h *Hub, now time.Time) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if gm.idleTimeout > 0 && now.Sub(h.lastActive) > gm.idleTimeout {
		return true
	}

	return gm.abandonTimeout > 0 && len(h.clients) == 0 &&
		!h.emptySince.IsZero() && now.Sub(h.emptySince) > gm.abandonTimeout
}

func (gm *GameManager) reap(cfg *Config, now time.Time) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		if gm.expired(hub, now) {
			delete(gm.hubs, id)
			go hub.closeAll()

			logf(cfg, "GAMES: Ended idle game %s", id)
		}
	}
}

// reaperLoop periodically removes expired hubs until the manager is closed.
func (gm *GameManager) reaperLoop(cfg *Config, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			gm.reap(cfg, now)
		case <-gm.stop:
			return
		}
	}
}

// Close stops the reaper and ends every game.
func (gm *GameManager) Close() {
	gm.stopOnce.Do(func() {
		close(gm.stop)
	})

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hub.closeAll()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		deviceID := getOrSetDeviceID(w, r)
		if deviceID == "" {
			http.Error(w, "unable to assign device id", http.StatusInternalServerError)
			return
		}

		hub, err := gm.getHub(cfg, gameID)
		if err != nil {
			http.Error(w, "unable to start game", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: Upgrade for %s from %s failed: %v", gameID, realIP(r), err)
			return
		}

		// The server's read and write timeouts must not apply to the socket.
		_ = conn.NetConn().SetDeadline(time.Time{})
		conn.SetReadLimit(maxMessageSize)

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			deviceID: deviceID,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		select {
		case h.actions <- actionRequest{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
		path := strings.TrimSuffix(r.URL.Path, "/qr")

		url := scheme + "://" + r.Host + path

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

func getIndexHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile("assets/impostor/index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetDeviceID(w, r)

		if _, err := w.Write(data); err != nil {
			errs <- err
		}
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s for %s", path, gameID, realIP(r))
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerImpostorGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerImpostorGame(cfg *Config, path string, catalog *impostor.Catalog, mux *httprouter.Router, errs chan<- error) *GameManager {
	gm := newGameManager(cfg, catalog)

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg))

	return gm
}
