package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed fpldata
var fpldata embed.FS

// LeagueID is the mini-league the fixture data describes.
const LeagueID = 469324

// FakeFPLServer serves canned FPL API responses for tests. The default mode
// covers a mid-season gameweek; preseason mode covers the state before the
// first deadline where league members only appear under new_entries.
type FakeFPLServer struct {
	s         *httptest.Server
	preseason bool
}

func NewFakeFPLServer() *FakeFPLServer {
	return newFakeFPLServer(false)
}

func NewFakeFPLServerPreseason() *FakeFPLServer {
	return newFakeFPLServer(true)
}

func newFakeFPLServer(preseason bool) *FakeFPLServer {
	f := &FakeFPLServer{preseason: preseason}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/bootstrap-static/", f.bootstrapHandler)
		r.Get("/event/{gw}/live/", f.liveHandler)
		r.Get("/leagues-classic/{leagueID}/standings/", f.standingsHandler)
		r.Route("/entry/{entryID}", func(r chi.Router) {
			r.Get("/event/{gw}/picks/", f.picksHandler)
			r.Get("/transfers/", f.transfersHandler)
			r.Get("/history/", f.historyHandler)
		})
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

func (f *FakeFPLServer) bootstrapHandler(w http.ResponseWriter, r *http.Request) {
	if f.preseason {
		serveFPLFile(w, "bootstrap_preseason.json")
	} else {
		serveFPLFile(w, "bootstrap.json")
	}
}

func (f *FakeFPLServer) liveHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "gw") == "2" {
		serveFPLFile(w, "live.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"elements": []}`))
	}
}

func (f *FakeFPLServer) standingsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != fmt.Sprintf("%d", LeagueID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if f.preseason {
		serveFPLFile(w, "standings_preseason.json")
	} else {
		serveFPLFile(w, "standings.json")
	}
}

func (f *FakeFPLServer) picksHandler(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if chi.URLParam(r, "gw") != "2" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFPLFile(w, fmt.Sprintf("picks_%s.json", entryID))
}

func (f *FakeFPLServer) transfersHandler(w http.ResponseWriter, r *http.Request) {
	serveFPLFile(w, fmt.Sprintf("transfers_%s.json", chi.URLParam(r, "entryID")))
}

func (f *FakeFPLServer) historyHandler(w http.ResponseWriter, r *http.Request) {
	serveFPLFile(w, fmt.Sprintf("history_%s.json", chi.URLParam(r, "entryID")))
}

func serveFPLFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
