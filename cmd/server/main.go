package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/sketchwell/sketchwell/engine-go/internal/config"
	"github.com/sketchwell/sketchwell/engine-go/internal/document"
	"github.com/sketchwell/sketchwell/engine-go/internal/editor"
	mw "github.com/sketchwell/sketchwell/engine-go/internal/middleware"
	"github.com/sketchwell/sketchwell/engine-go/internal/session"
	"github.com/sketchwell/sketchwell/engine-go/internal/typeid"
)

const maxImportSize = 8 << 20

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	hub := session.NewHub(func() *editor.Editor {
		return editor.New(editor.Options{
			HistoryLimit:    cfg.HistoryLimit,
			GridSize:        float64(cfg.GridSize),
			SystemClipboard: cfg.SystemClipboard,
		})
	})
	go hub.Run()

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Document lifecycle
	r.HandleFunc("/documents", func(w http.ResponseWriter, r *http.Request) {
		room := hub.CreateDocument()
		writeJSON(w, http.StatusCreated, map[string]string{"docId": room.DocID()})
	}).Methods("POST", "OPTIONS")

	r.HandleFunc("/documents/{docId}/export", func(w http.ResponseWriter, r *http.Request) {
		room, ok := hub.Room(mux.Vars(r)["docId"])
		if !ok {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		data, err := room.Export()
		if err != nil {
			slog.Error("export document", "error", err, "doc", room.DocID())
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}).Methods("GET")

	r.HandleFunc("/documents/{docId}/import", func(w http.ResponseWriter, r *http.Request) {
		room, ok := hub.Room(mux.Vars(r)["docId"])
		if !ok {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		if err := room.Import(data); err != nil {
			var verr *document.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"field":  verr.Field,
					"reason": verr.Reason,
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"reason": err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}).Methods("POST", "OPTIONS")

	// WebSocket endpoint
	r.HandleFunc("/ws/documents/{docId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, cfg)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, cfg *config.Config) {
	docID := mux.Vars(r)["docId"]
	if _, ok := hub.Room(docID); !ok {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(cfg.AllowedOrigins),
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	sessionID := typeid.NewSessionID()
	client := session.NewClient(hub, conn, docID, sessionID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

// originPatterns strips schemes so the configured origins match the
// host-based patterns websocket.Accept expects.
func originPatterns(allowed string) []string {
	var patterns []string
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		o = strings.TrimPrefix(o, "http://")
		o = strings.TrimPrefix(o, "https://")
		if o != "" {
			patterns = append(patterns, o)
		}
	}
	return patterns
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
