package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"arcade/audio"
)

// defaultClientDir looks for the page next to the binary, then in the
// source checkout
func defaultClientDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "client")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return "../client"
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	clientDir := flag.String("client", "", "Directory holding the cabinet page (default: ../client)")
	flag.Parse()
	if *clientDir == "" {
		*clientDir = defaultClientDir()
	}

	hub := NewHub()
	go hub.Run()

	srv := &http.Server{
		Addr:    *addr,
		Handler: SetupRoutes(hub, *clientDir, audio.NewSynth(audio.SampleRate)),
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("arcade: %d cabinets on %s, page from %s", len(ListGames()), *addr, *clientDir)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	s := <-sig
	log.Printf("arcade: %v, powering off %d cabinets", s, hub.sessions.Count())
	hub.Shutdown()
	srv.Close()
}
