package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/gorilla/websocket"

	"arcade/audio"
)

// sessionPath matches a shared cabinet link such as /3f2b...-...; the page
// itself reads the id back from location
var sessionPath = regexp.MustCompile(`^/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     sameOrigin,
}

// sameOrigin accepts requests without an Origin header (tests, tools) and
// browser pages served by this host
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}

func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// SetupRoutes mounts the cabinet page, the game list, synthesized sound
// clips and the websocket endpoint. A nil synth uses the default rate.
func SetupRoutes(hub *Hub, clientDir string, synth *audio.Synth) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", servePage(clientDir))
	mux.HandleFunc("/api/games", serveGames)
	mux.Handle("/sfx/", NewSFXHandler(synth))
	mux.HandleFunc("/ws", serveWS(hub))
	return mux
}

// servePage serves the static client; / and session links get index.html
func servePage(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		if r.URL.Path == "/" || sessionPath.MatchString(r.URL.Path) {
			http.ServeFile(w, r, index)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func serveGames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListGames()); err != nil {
		log.Printf("games: encode: %v", err)
	}
}

func serveWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr := remoteHost(r)
		if !hub.seats.take(addr) {
			http.Error(w, "arcade is full", http.StatusServiceUnavailable)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.seats.give(addr)
			log.Printf("ws: upgrade from %s: %v", addr, err)
			return
		}

		c := NewClient(hub, conn, addr)
		hub.register <- c
		go c.WritePump()
		go c.ReadPump()
	}
}
