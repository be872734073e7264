// Package web serves the forgec playground: a single page that compiles
// card rules text as you type, over a WebSocket round trip.
package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/forgec/internal/card"
	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/forge"
)

//go:embed static
var staticFiles embed.FS

// CompileRequest is the JSON body of a compile request, over HTTP or the
// WebSocket.
type CompileRequest struct {
	Name     string `json:"name"`
	ManaCost string `json:"manaCost"`
	Type     string `json:"type"`
	PT       string `json:"pt"`
	Loyalty  string `json:"loyalty"`
	Text     string `json:"text"`
}

// CompileResponse carries the rendered script and drop diagnostics.
type CompileResponse struct {
	Script  string `json:"script"`
	Dropped int    `json:"dropped"`
}

// Server is the forgec playground server.
type Server struct {
	comp *compiler.Compiler
	mux  *http.ServeMux
}

// NewServer creates a playground server around the given compiler.
func NewServer(comp *compiler.Compiler) *Server {
	s := &Server{comp: comp, mux: http.NewServeMux()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("POST /api/compile", s.handleCompile)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) compile(req CompileRequest) CompileResponse {
	c := card.Card{
		Name:     req.Name,
		ManaCost: req.ManaCost,
		Type:     req.Type,
		PT:       req.PT,
		Loyalty:  req.Loyalty,
		Text:     card.DecodeEntities(req.Text),
	}
	if c.Name == "" {
		c.Name = "Unnamed Card"
	}
	script := s.comp.Compile(c.Text)
	return CompileResponse{Script: forge.Render(c, script), Dropped: script.Dropped}
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.compile(req))
}

// handleWebSocket compiles every request message it receives and writes the
// response back, until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local playground, any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			return
		}

		var req CompileRequest
		if err := json.Unmarshal(data, &req); err != nil {
			wsConn.Close(websocket.StatusPolicyViolation, "expected compile request")
			return
		}

		out, _ := json.Marshal(s.compile(req))
		if err := wsConn.Write(ctx, websocket.MessageText, out); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
