package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/ledanim/stream"
)

// Api serves the web client and lets it switch tracks. Requests never touch
// the animation directly; they stage commands for the next tick.
type Api struct {
	controller *stream.Controller
	commands   *stream.CommandQueue
	static     string
}

// NewApi creates an Api for controller. Files under static are served at /.
func NewApi(controller *stream.Controller, commands *stream.CommandQueue, static string) *Api {
	a := new(Api)
	a.controller = controller
	a.commands = commands
	a.static = static
	return a
}

// Handler returns the HTTP routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tracks", a.handleTracks)
	mux.HandleFunc("POST /tracks/{name}/select", a.handleSelect)
	mux.HandleFunc("POST /restart", a.handleRestart)
	if a.static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.static)))
	}
	return mux
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

func (a *Api) handleTracks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.controller.Status()); err != nil {
		log.Printf("Encode status: %v", err)
	}
}

func (a *Api) handleSelect(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	known := false
	for _, track := range a.controller.Status().Tracks {
		if track == name {
			known = true
			break
		}
	}
	if !known {
		http.Error(w, "unknown track", http.StatusNotFound)
		return
	}

	a.commands.Push(stream.SelectCommand{Name: name})
	w.WriteHeader(http.StatusAccepted)
}

func (a *Api) handleRestart(w http.ResponseWriter, r *http.Request) {
	a.commands.Push(stream.RestartCommand{})
	w.WriteHeader(http.StatusAccepted)
}
