package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/scene"
	"github.com/matzehuels/menulayout/pkg/store"
)

type sceneResponse struct {
	ID     string         `json:"id"`
	Layout scene.Document `json:"layout"`
}

type neighborResponse struct {
	Token     int    `json:"token"`
	Direction string `json:"direction"`
	Neighbor  int    `json:"neighbor"`
}

type hitResponse struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Token int `json:"token"`
}

type keyRequest struct {
	Key string `json:"key"`
}

type keyResponse struct {
	Selected  int `json:"selected"`
	Activated int `json:"activated"`
}

type mouseRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type mouseResponse struct {
	Selected int `json:"selected"`
	Hit      int `json:"hit"`
}

var contentTypes = map[string]string{
	pipeline.FormatJSON:      "application/json",
	pipeline.FormatDOT:       "text/vnd.graphviz",
	pipeline.FormatSVG:       "image/svg+xml",
	pipeline.FormatWireframe: "image/svg+xml",
	pipeline.FormatPNG:       "image/png",
	pipeline.FormatText:      "text/plain; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sourceFormat picks the scene encoding from ?format= or the Content-Type.
func sourceFormat(r *http.Request) (scene.Format, error) {
	switch f := r.URL.Query().Get("format"); f {
	case "":
	case string(scene.FormatTOML), string(scene.FormatYAML):
		return scene.Format(f), nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q", f)
	}
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "yaml") {
		return scene.FormatYAML, nil
	}
	return scene.FormatTOML, nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	format, err := sourceFormat(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxSceneBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene (limit %d bytes)", s.cfg.MaxSceneBytes))
		return
	}

	sc, err := pipeline.Parse(pipeline.Options{Source: body, SourceFormat: format})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := sc.Build(manager.WithLogger(s.logger))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := store.New(body, format, m.Selected(), s.cfg.TTL)
	if err := s.store.Set(r.Context(), rec); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "store scene"))
		return
	}
	s.remember(rec.ID, m)

	s.logger.Info("scene created", "id", rec.ID, "widgets", m.Len(), "format", format)
	writeJSON(w, http.StatusCreated, sceneResponse{ID: rec.ID, Layout: scene.Export(m)})
}

// withScene runs fn with the locked manager and current record of the
// scene named in the URL. Every successful lookup extends the record's
// TTL. The manager is rebuilt from the record when this instance has none,
// and its selection follows the record.
func (s *Server) withScene(w http.ResponseWriter, r *http.Request, fn func(m *manager.Manager, rec *store.Record) error) {
	id := chi.URLParam(r, "id")
	e := s.acquire(id)
	defer e.mu.Unlock()

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "load scene %s", id))
		return
	}
	if rec == nil {
		s.forget(id)
		s.writeError(w, r, errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", id))
		return
	}
	rec.Touch(s.cfg.TTL)
	if err := s.store.Set(r.Context(), rec); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "refresh scene %s", id))
		return
	}

	if e.m == nil {
		m, err := s.rebuild(rec)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		e.m = m
		s.logger.Debug("scene rebuilt from store", "id", id)
	}
	if e.m.Selected() != rec.Selected {
		e.m.SetSelected(rec.Selected)
	}

	if err := fn(e.m, rec); err != nil {
		s.writeError(w, r, err)
	}
}

func (s *Server) rebuild(rec *store.Record) (*manager.Manager, error) {
	sc, err := pipeline.Parse(pipeline.Options{Source: []byte(rec.Source), SourceFormat: rec.Format})
	if err != nil {
		return nil, err
	}
	m, err := sc.Build(manager.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	m.SetSelected(rec.Selected)
	return m, nil
}

// saveSelection persists the manager's selection and extends the TTL.
func (s *Server) saveSelection(ctx context.Context, m *manager.Manager, rec *store.Record) error {
	rec.Selected = m.Selected()
	rec.Touch(s.cfg.TTL)
	if err := s.store.Set(ctx, rec); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store scene %s", rec.ID)
	}
	return nil
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		writeJSON(w, http.StatusOK, sceneResponse{ID: rec.ID, Layout: scene.Export(m)})
		return nil
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		if err := s.store.Delete(r.Context(), rec.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "delete scene %s", rec.ID)
		}
		s.forget(rec.ID)
		s.logger.Info("scene deleted", "id", rec.ID)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) handleNeighbor(w http.ResponseWriter, r *http.Request) {
	token, err := strconv.Atoi(chi.URLParam(r, "token"))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "token must be an integer"))
		return
	}
	dir, err := nav.ParseDirection(chi.URLParam(r, "dir"))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid direction"))
		return
	}

	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		if _, ok := m.Find(token); !ok {
			return errors.New(errors.ErrCodeUnknownToken, "token %d is not registered", token)
		}
		writeJSON(w, http.StatusOK, neighborResponse{
			Token:     token,
			Direction: dir.String(),
			Neighbor:  m.Neighbor(token, dir),
		})
		return nil
	})
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "x and y must be integers"))
		return
	}

	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		writeJSON(w, http.StatusOK, hitResponse{X: x, Y: y, Token: m.HitTest(x, y)})
		return nil
	})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	key, err := manager.ParseKey(req.Key)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid key"))
		return
	}

	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		activated := m.HandleKeyboard(key)
		if err := s.saveSelection(r.Context(), m, rec); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, keyResponse{Selected: m.Selected(), Activated: activated})
		return nil
	})
}

func (s *Server) handleMouse(w http.ResponseWriter, r *http.Request) {
	var req mouseRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		hit := m.HandleMouse(req.X, req.Y)
		if err := s.saveSelection(r.Context(), m, rec); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, mouseResponse{Selected: m.Selected(), Hit: hit})
		return nil
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	var scale float64
	if v := r.URL.Query().Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number"))
			return
		}
		if err := pipeline.ValidateScale(f); err != nil {
			s.writeError(w, r, err)
			return
		}
		scale = f
	}

	s.withScene(w, r, func(m *manager.Manager, rec *store.Record) error {
		selected := m.Selected()
		res, err := s.runner.Execute(r.Context(), pipeline.Options{
			Source:       []byte(rec.Source),
			SourceFormat: rec.Format,
			Selected:     &selected,
			Formats:      []string{format},
			Scale:        scale,
			HideInactive: r.URL.Query().Get("hide_inactive") == "true",
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		_, _ = io.Copy(w, bytes.NewReader(res.Artifacts[format]))
		return nil
	})
}
