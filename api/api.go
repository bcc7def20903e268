package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/path-calc/api/model"
	"github.com/a-bouts/path-calc/geom"
)

// Notifier receives a one line summary of every computed target.
type Notifier interface {
	Enabled() bool
	Send(message string) error
}

type Server struct {
	engine        geom.Engine
	notifier      Notifier
	stats         *stats
	notifications sync.WaitGroup
}

func NewServer(e geom.Engine, n Notifier) *Server {
	return &Server{
		engine:   e,
		notifier: n,
		stats:    newStats(),
	}
}

// Router returns the http handler of the server with request logging.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/path/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/path/api/v1").Subrouter()
	apiV1.HandleFunc("/collinear", s.collinear).Methods(http.MethodPost)
	apiV1.HandleFunc("/arc", s.arc).Methods(http.MethodPost)
	apiV1.HandleFunc("/curvature", s.curvature).Methods(http.MethodPost)
	apiV1.HandleFunc("/settings", s.settings).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.CombinedLoggingHandler(os.Stdout, cors(router))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, requestLogger(r, "healthz"), http.StatusOK, health{Status: "Ok"})
}

func (s *Server) settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, requestLogger(r, "settings"), http.StatusOK, s.engine.Settings())
}

func (s *Server) collinear(w http.ResponseWriter, req *http.Request) {
	requestLogger := requestLogger(req, "collinear")

	var c model.Collinear
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		badRequest(w, requestLogger, err)
		return
	}

	s.respond(w, requestLogger, "collinear", c.Pose.Geom(), c.Distance, geom.Straight{}, nil)
}

func (s *Server) arc(w http.ResponseWriter, req *http.Request) {
	requestLogger := requestLogger(req, "arc")

	var a model.Arc
	if err := json.NewDecoder(req.Body).Decode(&a); err != nil {
		badRequest(w, requestLogger, err)
		return
	}

	var warnings []string
	radius := s.engine.Settings().DefaultRadius
	if a.Radius != nil {
		var err error
		if radius, err = s.engine.CheckRadius(*a.Radius); err != nil {
			requestLogger.Warnf("Radius %g: %s", *a.Radius, err)
			warnings = append(warnings, err.Error())
		}
	}

	s.respond(w, requestLogger, "arc", a.Pose.Geom(), a.Dlead, geom.Arc{Radius: radius}, warnings)
}

func (s *Server) curvature(w http.ResponseWriter, req *http.Request) {
	requestLogger := requestLogger(req, "curvature")

	var c model.Curvature
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		badRequest(w, requestLogger, err)
		return
	}

	s.respond(w, requestLogger, "curvature", c.Pose.Geom(), c.Dlead, geom.Curve{Curvature: c.Curvature}, nil)
}

func (s *Server) respond(w http.ResponseWriter, requestLogger *log.Entry, action string, pose geom.Pose, distance float64, m geom.Motion, warnings []string) {
	target := s.engine.Target(pose, distance, m)
	res := model.Result{
		Motion:   m.String(),
		Target:   target,
		Measure:  s.engine.Measure(pose, distance, m, target),
		Warnings: warnings,
	}
	s.stats.inc(action)

	requestLogger.Infof("%s from (%g, %g, %.4f) by %g : %s", m, pose.X, pose.Y, pose.Theta, distance, target)
	s.notify(requestLogger, fmt.Sprintf("%s by %g -> %s", m, distance, target))

	writeJSON(w, requestLogger, http.StatusOK, res)
}

// notify sends msg in the background so the response is not held by the chat server.
func (s *Server) notify(requestLogger *log.Entry, msg string) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}
	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		if err := s.notifier.Send(msg); err != nil {
			requestLogger.Errorf("Notify failed : %s", err)
		}
	}()
}

// Wait blocks until pending notifications are sent.
func (s *Server) Wait() {
	s.notifications.Wait()
}

func badRequest(w http.ResponseWriter, requestLogger *log.Entry, err error) {
	requestLogger.Warnf("Bad request : %s", err)
	writeJSON(w, requestLogger, http.StatusBadRequest, model.Error{Error: err.Error()})
}

// writeJSON encodes v before writing anything, values such as an infinite
// coordinate are answered with 422.
func writeJSON(w http.ResponseWriter, requestLogger *log.Entry, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		requestLogger.Errorf("Encode response : %s", err)
		buf.Reset()
		json.NewEncoder(&buf).Encode(model.Error{Error: err.Error()})
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		requestLogger.Warnf("Write response : %s", err)
	}
}

func requestLogger(req *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func getIp(r *http.Request) (string, error) {
	// proxy headers first, X-Real-Ip wins
	if ip := r.Header.Get("X-REAL-IP"); net.ParseIP(ip) != nil {
		return ip, nil
	}
	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(ip) != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip in %q", r.RemoteAddr)
}
