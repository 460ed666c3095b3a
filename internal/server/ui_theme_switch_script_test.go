package server

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dop251/goja"
)

const themeSwitchFakeDOM = `
var window = this;
var calls = [];
var nextResponse = { status: 200, body: '{"success":true}' };
var pending = null;

window.fetch = function (url, init) {
  calls.push({ url: url, method: init.method, contentType: init.headers['Content-Type'], body: init.body });
  if (nextResponse === 'pending') {
    return new Promise(function (resolve) { pending = resolve; });
  }
  if (nextResponse === 'network') {
    return Promise.reject(new TypeError('Failed to fetch'));
  }
  return Promise.resolve(fakeResponse(nextResponse.status, nextResponse.body));
};

function fakeResponse(status, body) {
  return {
    status: status,
    ok: status >= 200 && status < 300,
    text: function () { return Promise.resolve(body); },
  };
}

function fakeOption(profile) {
  return {
    attrs: { 'data-theme-profile': profile },
    listeners: [],
    getAttribute: function (name) { return Object.prototype.hasOwnProperty.call(this.attrs, name) ? this.attrs[name] : null; },
    setAttribute: function (name, value) { this.attrs[name] = String(value); },
    addEventListener: function (type, fn) { this.listeners.push({ type: type, fn: fn }); },
    click: function () {
      const ev = { preventDefault: function () {} };
      this.listeners.forEach(function (l) { if (l.type === 'click') l.fn(ev); });
    },
  };
}

var options = { p1: fakeOption('p1'), p2: fakeOption('p2') };
var root = {
  querySelectorAll: function (selector) {
    return selector === '[data-theme-profile]' ? [options.p1, options.p2] : [];
  },
};
`

type themeSwitchHarness struct {
	t       *testing.T
	vm      *goja.Runtime
	alerts  []string
	reloads int
}

func newThemeSwitchHarness(t *testing.T) *themeSwitchHarness {
	t.Helper()
	h := &themeSwitchHarness{t: t, vm: goja.New()}
	h.run(themeSwitchJS)
	h.run(themeSwitchFakeDOM)
	alert := func(call goja.FunctionCall) goja.Value {
		h.alerts = append(h.alerts, call.Argument(0).String())
		return goja.Undefined()
	}
	reload := func(goja.FunctionCall) goja.Value {
		h.reloads++
		return goja.Undefined()
	}
	window := h.vm.Get("window").ToObject(h.vm)
	if err := window.Set("alert", alert); err != nil {
		t.Fatalf("bind alert: %v", err)
	}
	location := h.vm.NewObject()
	if err := location.Set("reload", reload); err != nil {
		t.Fatalf("bind reload: %v", err)
	}
	if err := window.Set("location", location); err != nil {
		t.Fatalf("bind location: %v", err)
	}
	return h
}

// run executes src; pending promise jobs are drained before it returns.
func (h *themeSwitchHarness) run(src string) goja.Value {
	h.t.Helper()
	v, err := h.vm.RunString(src)
	if err != nil {
		h.t.Fatalf("run script: %v\n%s", err, src)
	}
	return v
}

func (h *themeSwitchHarness) evalInt(expr string) int64 {
	h.t.Helper()
	return h.run(expr).ToInteger()
}

func (h *themeSwitchHarness) evalString(expr string) string {
	h.t.Helper()
	return h.run(expr).String()
}

func TestThemeSwitchScriptSuccessReloads(t *testing.T) {
	h := newThemeSwitchHarness(t)
	h.run(`initThemeSwitch(root, { endpoint: '/save_theme', active: 'p1' });`)
	h.run(`options.p2.click();`)

	if n := h.evalInt(`calls.length`); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
	if got := h.evalString(`calls[0].url + ' ' + calls[0].method + ' ' + calls[0].contentType`); got != "/save_theme POST application/json" {
		t.Fatalf("unexpected request %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(h.evalString(`calls[0].body`)), &body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if body["profile"] != "p2" || !ok || len(data) != 0 {
		t.Fatalf("unexpected request body %v", body)
	}
	if h.reloads != 1 || len(h.alerts) != 0 {
		t.Fatalf("expected one reload and no alert, reloads=%d alerts=%v", h.reloads, h.alerts)
	}
}

func TestThemeSwitchScriptFailureAlerts(t *testing.T) {
	h := newThemeSwitchHarness(t)
	h.run(`initThemeSwitch(root, { active: 'p1' });`)
	h.run(`nextResponse = { status: 500, body: '{"success":false,"error":"disk full"}' }; options.p2.click();`)

	if len(h.alerts) != 1 || !strings.Contains(h.alerts[0], "disk full") {
		t.Fatalf("expected one alert with detail, got %v", h.alerts)
	}
	if h.reloads != 0 {
		t.Fatalf("failure must not reload")
	}
	if got := h.evalString(`options.p2.getAttribute('aria-busy')`); got != "false" {
		t.Fatalf("expected option to leave busy state, got %q", got)
	}
	if got := h.evalString(`root.__sonicThemeSwitch.state.active`); got != "p1" {
		t.Fatalf("active profile must stay p1, got %q", got)
	}

	h.run(`nextResponse = { status: 200, body: '{"success":true}' }; options.p2.click();`)
	if n := h.evalInt(`calls.length`); n != 2 || h.reloads != 1 {
		t.Fatalf("a later selection should go through, calls=%d reloads=%d", n, h.reloads)
	}
}

func TestThemeSwitchScriptFailureDetails(t *testing.T) {
	cases := map[string]string{
		`nextResponse = { status: 502, body: 'upstream down' };`:     "upstream down",
		`nextResponse = { status: 200, body: '{"success":false}' };`: "HTTP 200",
		`nextResponse = { status: 404, body: '' };`:                  "HTTP 404",
		`nextResponse = 'network';`:                                  "Failed to fetch",
	}
	for setup, want := range cases {
		h := newThemeSwitchHarness(t)
		h.run(`initThemeSwitch(root, { active: 'p1' });`)
		h.run(setup + ` options.p2.click();`)
		if len(h.alerts) != 1 || !strings.Contains(h.alerts[0], want) {
			t.Fatalf("%s: expected alert containing %q, got %v", setup, want, h.alerts)
		}
		if h.reloads != 0 {
			t.Fatalf("%s: failure must not reload", setup)
		}
	}
}

func TestThemeSwitchScriptIgnoresActiveAndInFlight(t *testing.T) {
	h := newThemeSwitchHarness(t)
	h.run(`initThemeSwitch(root, { active: 'p1' });`)

	h.run(`options.p1.click();`)
	if n := h.evalInt(`calls.length`); n != 0 {
		t.Fatalf("clicking the active profile must not send, got %d requests", n)
	}

	h.run(`nextResponse = 'pending'; options.p2.click(); options.p2.click();`)
	if n := h.evalInt(`calls.length`); n != 1 {
		t.Fatalf("second click while in flight must be ignored, got %d requests", n)
	}
	if got := h.evalString(`options.p2.getAttribute('aria-busy')`); got != "true" {
		t.Fatalf("expected busy marker while in flight, got %q", got)
	}
	h.run(`pending(fakeResponse(200, '{"success":true}'));`)
	if h.reloads != 1 {
		t.Fatalf("expected reload once the request resolves, got %d", h.reloads)
	}
}

func TestThemeSwitchScriptInitIsIdempotent(t *testing.T) {
	h := newThemeSwitchHarness(t)
	h.run(`var first = initThemeSwitch(root, { active: 'p1' }); var second = initThemeSwitch(root, { active: 'p2' });`)
	if !h.run(`first === second`).ToBoolean() {
		t.Fatalf("second init should return the existing controller")
	}
	if n := h.evalInt(`options.p1.listeners.length + options.p2.listeners.length`); n != 2 {
		t.Fatalf("expected exactly one handler per option, got %d", n)
	}
	h.run(`options.p2.click();`)
	if n := h.evalInt(`calls.length`); n != 1 {
		t.Fatalf("expected one request, got %d", n)
	}
}

func TestThemeSwitchScriptReloadErrorIsNotAFailure(t *testing.T) {
	h := newThemeSwitchHarness(t)
	h.run(`
var reloadAttempts = 0;
var reloadErr = '';
var api = initThemeSwitch(root, {
  active: 'p1',
  reload: function () { reloadAttempts++; throw new Error('reload blocked'); },
});
api.select('p2').then(null, function (err) { reloadErr = err.message; });
`)
	if n := h.evalInt(`calls.length`); n != 1 {
		t.Fatalf("expected one request, got %d", n)
	}
	if n := h.evalInt(`reloadAttempts`); n != 1 {
		t.Fatalf("expected one reload attempt, got %d", n)
	}
	if len(h.alerts) != 0 {
		t.Fatalf("a persisted switch must not alert, got %v", h.alerts)
	}
	if got := h.evalString(`reloadErr`); got != "reload blocked" {
		t.Fatalf("expected reload error to reach the caller, got %q", got)
	}
	if got := h.evalString(`api.state.active`); got != "p2" {
		t.Fatalf("expected p2 active after persisted switch, got %q", got)
	}

	h.run(`options.p2.click();`)
	if len(h.alerts) != 0 {
		t.Fatalf("click after a failed reload must not alert, got %v", h.alerts)
	}
}
