package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sonicdash/sonic/internal/server/httpx"
	"github.com/sonicdash/sonic/internal/store"
	"github.com/sonicdash/sonic/internal/theme"
	"github.com/sonicdash/sonic/internal/themeswitch"
)

var (
	errProfileRequired = errors.New("profile is required")
	errUnknownProfile  = errors.New("unknown profile")
)

type resolvedRegionView struct {
	Region  theme.Region `json:"region"`
	Kind    theme.Kind   `json:"kind"`
	Color   string       `json:"color,omitempty"`
	Image   string       `json:"image,omitempty"`
	URL     string       `json:"url,omitempty"`
	CSS     string       `json:"css"`
	Default bool         `json:"default"`
}

type resolvedThemeView struct {
	Profile          string               `json:"profile"`
	Found            bool                 `json:"found"`
	Regions          []resolvedRegionView `json:"regions"`
	CustomProperties string               `json:"custom_properties"`
}

type themeProfileView struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	Empty  bool   `json:"empty"`
}

type themeProfilesResponse struct {
	SelectedProfile string             `json:"selected_profile"`
	Profiles        []themeProfileView `json:"profiles"`
}

// loadTheme returns the snapshot used for rendering. Storage problems are
// logged and rendered as defaults.
func (s *stateStore) loadTheme(ctx context.Context) theme.Config {
	cfg, _, err := s.db.LoadThemeConfig(ctx)
	if err != nil {
		slog.Warn("load theme config, rendering defaults", "error", err)
		return theme.Config{}
	}
	return cfg
}

func (s *stateStore) saveThemeHandler(w http.ResponseWriter, r *http.Request) {
	var req themeswitch.Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		msg := err.Error()
		if errors.Is(err, httpx.ErrEmptyBody) {
			msg = "No data received"
		}
		writeSwitchError(w, http.StatusBadRequest, msg)
		return
	}
	replacement, err := decodeReplacementProfile(req.Data)
	if err != nil {
		writeSwitchError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, _, err := s.applyThemeSwitch(r.Context(), req.Profile, replacement)
	switch {
	case errors.Is(err, errProfileRequired), errors.Is(err, errUnknownProfile):
		writeSwitchError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("save theme", "profile", req.Profile, "error", err)
		writeSwitchError(w, http.StatusInternalServerError, err.Error())
		return
	}

	to := req.Profile
	detail := map[string]string{"from": from, "to": to}
	if replacement != nil {
		detail["replaced"] = "true"
	}
	s.recordOperation(r.Context(), store.Operation{
		Message: fmt.Sprintf("Theme switched to %s", to),
		Source:  "Theme",
		Type:    store.OperationThemeSwitched,
		Detail:  detail,
	})
	slog.Info("theme switched", "from", from, "to", to, "replaced", replacement != nil)
	httpx.WriteJSON(w, http.StatusOK, themeswitch.Response{Success: true})
}

func writeSwitchError(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, themeswitch.Response{Success: false, Error: msg})
}

// decodeReplacementProfile returns nil when data is absent, null or an empty
// object.
func decodeReplacementProfile(data json.RawMessage) (*theme.Profile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("data must be a profile object: %w", err)
	}
	if len(probe) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	var p theme.Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("data must be a profile object: %w", err)
	}
	return &p, nil
}

// applyThemeSwitch selects profileID in the stored snapshot, replacing the
// profile first when replacement is set. It returns the previously selected
// profile and the stored snapshot.
func (s *stateStore) applyThemeSwitch(ctx context.Context, profileID string, replacement *theme.Profile) (string, theme.Config, error) {
	if profileID == "" {
		return "", theme.Config{}, errProfileRequired
	}
	var from string
	cfg, err := s.db.UpdateThemeConfig(ctx, func(cfg *theme.Config) error {
		from = cfg.SelectedProfile
		if replacement != nil {
			if cfg.Profiles == nil {
				cfg.Profiles = map[string]theme.Profile{}
			}
			cfg.Profiles[profileID] = replacement.Clone()
		} else if _, ok := cfg.Profile(profileID); !ok {
			return fmt.Errorf("%w %q", errUnknownProfile, profileID)
		}
		cfg.SelectedProfile = profileID
		return nil
	})
	if err != nil {
		return "", theme.Config{}, err
	}
	return from, cfg, nil
}

func (s *stateStore) resolvedThemeHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadTheme(r.Context())
	profileID := r.URL.Query().Get("profile")
	if profileID == "" {
		profileID = cfg.SelectedProfile
	}
	httpx.WriteJSON(w, http.StatusOK, s.resolvedView(theme.ResolveProfile(&cfg, profileID)))
}

func (s *stateStore) resolvedView(res theme.Resolved) resolvedThemeView {
	out := resolvedThemeView{
		Profile:          res.Profile,
		Found:            res.Found,
		CustomProperties: theme.CustomProperties(res, s.assets),
	}
	for _, v := range res.All() {
		view := resolvedRegionView{
			Region:  v.Region,
			Kind:    v.Kind,
			Color:   v.Color,
			Image:   v.Image,
			CSS:     v.CSSValue(s.assets),
			Default: v.Default,
		}
		if v.IsImage() {
			view.URL = s.assets.AssetURL(v.Image)
		}
		out.Regions = append(out.Regions, view)
	}
	return out
}

func (s *stateStore) themeProfilesHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadTheme(r.Context())
	res := themeProfilesResponse{SelectedProfile: cfg.SelectedProfile, Profiles: []themeProfileView{}}
	for _, id := range cfg.ProfileIDs() {
		p, _ := cfg.Profile(id)
		res.Profiles = append(res.Profiles, themeProfileView{
			ID:     id,
			Active: id == cfg.SelectedProfile,
			Empty:  p.IsEmpty(),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
