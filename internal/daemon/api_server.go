package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"carmatch/internal/api"
	"carmatch/internal/catalog"
	"carmatch/internal/config"
	"carmatch/internal/logging"
	"carmatch/internal/match"
)

type apiServer struct {
	bind           string
	defaultProfile string
	logger         *slog.Logger
	daemon         *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	srv := &apiServer{
		bind:           bind,
		defaultProfile: cfg.Matching.DefaultProfile,
		logger:         logger,
		daemon:         d,
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", authMiddleware(token, srv.handleSearch))
	mux.HandleFunc("/api/stats", authMiddleware(token, srv.handleStats))
	mux.HandleFunc("/api/profiles", authMiddleware(token, srv.handleProfiles))
	mux.HandleFunc("/api/eurotax/", authMiddleware(token, srv.handleEurotax))
	mux.HandleFunc("/api/mapping", authMiddleware(token, srv.handleMapping))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()
	code := strings.TrimSpace(query.Get("code"))
	if code == "" {
		s.writeError(w, http.StatusBadRequest, "code query parameter is required")
		return
	}
	profileName := strings.TrimSpace(query.Get("profile"))
	if profileName == "" {
		profileName = s.defaultProfile
	}

	requestID := uuid.NewString()
	logger := s.log().With(
		logging.String(logging.FieldRequestID, requestID),
		logging.String("code", code),
		logging.String(logging.FieldProfile, profileName))

	started := time.Now()
	result, err := s.daemon.SearchService().Search(r.Context(), code, profileName)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrUnknownProfile):
			s.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrNotLoaded):
			s.writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			logger.Error("search failed", logging.Error(err))
			s.writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	logger.Info("search completed",
		logging.Bool("found", result.Found),
		logging.Int("candidates", result.CandidateCount),
		logging.String("decision", result.Decision),
		logging.Duration("elapsed", time.Since(started)))
	w.Header().Set("X-Request-Id", requestID)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *apiServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status()
	payload := api.StatsResponse{
		Running:       status.Running,
		CatalogLoaded: status.CatalogLoaded,
		Records:       status.Records,
		Makes:         status.Makes,
		OEMCodes:      status.OEMCodes,
		RefreshCount:  status.RefreshCount,
	}
	if !status.BuiltAt.IsZero() {
		payload.BuiltAt = status.BuiltAt.UTC().Format(time.RFC3339)
	}
	if !status.LastRefresh.IsZero() {
		payload.LastRefresh = status.LastRefresh.UTC().Format(time.RFC3339)
	}
	if status.LastError != nil {
		payload.LastError = status.LastError.Error()
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *apiServer) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.daemon.SearchService().Profiles())
}

func (s *apiServer) handleEurotax(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	natcode := strings.TrimPrefix(r.URL.Path, "/api/eurotax/")
	if natcode == "" || strings.Contains(natcode, "/") {
		s.writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	view, err := s.daemon.SearchService().Lookup(natcode)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrVehicleNotFound):
			s.writeError(w, http.StatusNotFound, "vehicle not found")
		case errors.Is(err, catalog.ErrNotLoaded):
			s.writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *apiServer) handleMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.MappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := s.daemon.SearchService().SubmitMapping(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrSubmissionsDisabled):
			s.writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, api.ErrInvalidMapping):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.log().Error("mapping submission failed", logging.Error(err))
			s.writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "api-server"))
	}
	return logging.NewNop()
}
