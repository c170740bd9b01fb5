package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pngstash/config"
	"pngstash/models"
	"pngstash/pngmeta"
)

type Server struct {
	config *config.Config
}

func (srv *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /inject", srv.injectHandler)
	mux.HandleFunc("POST /extract", srv.extractHandler)
	mux.HandleFunc("POST /inspect", srv.inspectHandler)
	return mux
}

func (srv *Server) ListenToRequests(port string) error {
	server := &http.Server{
		Addr:         srv.config.ServerAddr + ":" + port,
		Handler:      srv.routes(),
		ReadTimeout:  time.Second * time.Duration(srv.config.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(srv.config.WriteTimeout),
	}
	logger.Info("listening", "addr", server.Addr)
	fmt.Println("Listening", "addr", server.Addr)
	return server.ListenAndServe()
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", cfg.ServerPort, "port to host api")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	srv := &Server{config: cfg}
	if err := srv.ListenToRequests(strconv.Itoa(*port)); err != nil {
		return fail("serve", cfg.ServerAddr, err)
	}
	return exitOK
}

func pingHandler(w http.ResponseWriter, req *http.Request) {
	if _, err := w.Write([]byte("pong")); err != nil {
		logger.Error("server ping", "error", err)
	}
}

// statusFor maps pngmeta errors onto http statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pngmeta.ErrPayloadNotFound):
		return http.StatusNotFound
	case errors.Is(err, pngmeta.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pngmeta.ErrNotPNG),
		errors.Is(err, pngmeta.ErrMalformedChunk),
		errors.Is(err, pngmeta.ErrTruncatedChain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, stage string, err error) {
	status := statusFor(err)
	logger.Warn("request failed", "stage", stage, "status", status, "error", err)
	http.Error(w, stage+": "+describe(err), status)
}

func (srv *Server) readBody(w http.ResponseWriter, req *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, req.Body, srv.config.MaxBodyBytes))
}

func readFormFile(req *http.Request, field string) ([]byte, error) {
	f, _, err := req.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("form field %q: %w", field, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (srv *Server) injectHandler(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, srv.config.MaxBodyBytes)
	if err := req.ParseMultipartForm(srv.config.MaxBodyBytes); err != nil {
		writeError(w, "parse form", err)
		return
	}
	carrier, err := readFormFile(req, "carrier")
	if err != nil {
		writeError(w, "read carrier", err)
		return
	}
	payload, err := readFormFile(req, "payload")
	if err != nil {
		writeError(w, "read payload", err)
		return
	}
	out, err := pngmeta.Inject(carrier, payload)
	if err != nil {
		writeError(w, "inject", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	if _, err := w.Write(out); err != nil {
		logger.Error("inject handler", "error", err)
		return
	}
	record(&models.Operation{
		Kind:        models.OpInject,
		Source:      req.RemoteAddr,
		PayloadSize: int64(len(payload)),
		OutputSize:  int64(len(out)),
	})
}

func (srv *Server) extractHandler(w http.ResponseWriter, req *http.Request) {
	carrier, err := srv.readBody(w, req)
	if err != nil {
		writeError(w, "read carrier", err)
		return
	}
	payload, err := pngmeta.Extract(carrier)
	if err != nil {
		writeError(w, "extract", err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := w.Write(payload); err != nil {
		logger.Error("extract handler", "error", err)
		return
	}
	record(&models.Operation{
		Kind:        models.OpExtract,
		Source:      req.RemoteAddr,
		PayloadSize: int64(len(payload)),
		OutputSize:  int64(len(payload)),
	})
}

func (srv *Server) inspectHandler(w http.ResponseWriter, req *http.Request) {
	data, err := srv.readBody(w, req)
	if err != nil {
		writeError(w, "read input", err)
		return
	}
	report, err := pngmeta.Inspect(data)
	if err != nil {
		writeError(w, "inspect", err)
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		logger.Error("inspect handler", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(payload); err != nil {
		logger.Error("inspect handler", "error", err)
	}
}
