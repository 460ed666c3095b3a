// Package themeswitch drives a profile switch against a running dashboard:
// one persistence request per selection, reload on success, surfaced error
// and unchanged selection on failure.
package themeswitch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds the Submitting state.
const DefaultTimeout = 10 * time.Second

const DefaultEndpoint = "/save_theme"

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

var (
	ErrUnknownProfile = errors.New("profile is not one of the available options")
	ErrSwitchInFlight = errors.New("a profile switch is already in progress")
)

// Request is the persistence endpoint payload.
type Request struct {
	Profile string          `json:"profile"`
	Data    json.RawMessage `json:"data"`
}

// Response is the persistence endpoint result.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SwitchError carries the failure detail reported by the endpoint or the
// transport.
type SwitchError struct {
	Profile string
	Status  int
	Detail  string
	Err     error
}

func (e *SwitchError) Error() string {
	detail := e.Detail
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if detail == "" {
		detail = "unknown error"
	}
	return fmt.Sprintf("switch to profile %q failed: %s", e.Profile, detail)
}

func (e *SwitchError) Unwrap() error { return e.Err }

type Options struct {
	// BaseURL of the dashboard server, e.g. http://localhost:5001.
	BaseURL string
	// Endpoint path of the persistence endpoint. Defaults to /save_theme.
	Endpoint string
	Client   *http.Client
	Timeout  time.Duration
	// Reload runs after an acknowledged switch. The new look must come from
	// the server's resolution, so Reload should re-fetch rather than patch.
	Reload func(ctx context.Context, profile string) error
	// Notify receives every failure, with the detail, before SelectProfile
	// returns it.
	Notify func(err error)
}

type Controller struct {
	opts Options

	mu      sync.Mutex
	state   State
	active  string
	options []string
}

func New(opts Options) *Controller {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(opts.Endpoint) == "" {
		opts.Endpoint = DefaultEndpoint
	}
	opts.BaseURL = strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	return &Controller{opts: opts, state: StateIdle}
}

// Init registers the selectable profile ids and the currently active one. It
// is the explicit once-per-load initialisation; calling it again replaces the
// option set.
func (c *Controller) Init(options []string, active string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = slices.Clone(options)
	c.active = active
	c.state = StateIdle
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SelectProfile persists profileID as the selected profile. Re-selecting the
// active profile is a no-op; a selection made while another is in flight or
// reloading is ignored and reported as ErrSwitchInFlight. An acknowledged
// switch makes profileID active, and the controller is Idle again once Reload
// returns.
func (c *Controller) SelectProfile(ctx context.Context, profileID string) error {
	c.mu.Lock()
	switch {
	case c.state == StateSubmitting || c.state == StateSuccess:
		c.mu.Unlock()
		return ErrSwitchInFlight
	case profileID == c.active:
		c.mu.Unlock()
		return nil
	case !slices.Contains(c.options, profileID):
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownProfile, profileID)
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	slog.Debug("theme switch submitting", "profile", profileID)
	err := c.submit(ctx, profileID)

	c.mu.Lock()
	if err != nil {
		c.state = StateIdle
		c.mu.Unlock()
		slog.Warn("theme switch failed", "profile", profileID, "error", err)
		if c.opts.Notify != nil {
			c.opts.Notify(err)
		}
		return err
	}
	c.state = StateSuccess
	c.active = profileID
	c.mu.Unlock()
	defer c.setState(StateIdle)

	slog.Info("theme switch acknowledged", "profile", profileID)
	if c.opts.Reload == nil {
		return nil
	}
	if err := c.opts.Reload(ctx, profileID); err != nil {
		return fmt.Errorf("reload after switch: %w", err)
	}
	return nil
}

func (c *Controller) setState(st State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = st
}

func (c *Controller) submit(ctx context.Context, profileID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	body, err := json.Marshal(Request{Profile: profileID, Data: json.RawMessage(`{}`)})
	if err != nil {
		return &SwitchError{Profile: profileID, Err: fmt.Errorf("marshal switch request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+c.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &SwitchError{Profile: profileID, Err: fmt.Errorf("create switch request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.opts.Client.Do(req)
	if err != nil {
		return &SwitchError{Profile: profileID, Err: fmt.Errorf("send switch request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return &SwitchError{Profile: profileID, Status: resp.StatusCode, Err: fmt.Errorf("read switch response: %w", err)}
	}
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		detail := strings.TrimSpace(string(raw))
		if len(detail) > 512 {
			detail = detail[:512]
		}
		if detail == "" {
			detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &SwitchError{Profile: profileID, Status: resp.StatusCode, Detail: detail, Err: fmt.Errorf("decode switch response: %w", err)}
	}
	if !out.Success {
		detail := strings.TrimSpace(out.Error)
		if detail == "" {
			detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &SwitchError{Profile: profileID, Status: resp.StatusCode, Detail: detail}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SwitchError{Profile: profileID, Status: resp.StatusCode, Detail: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	return nil
}
